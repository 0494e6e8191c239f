package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-portal/internal/application/dto"
	"github.com/jhoicas/stock-portal/internal/application/restock"
	"github.com/jhoicas/stock-portal/internal/domain"
)

// RestockHandler dispara el webhook de reposición.
type RestockHandler struct {
	uc *restock.TriggerUseCase
}

// NewRestockHandler construye el handler.
func NewRestockHandler(uc *restock.TriggerUseCase) *RestockHandler {
	return &RestockHandler{uc: uc}
}

// Trigger godoc
// @Summary      Disparar webhook de reposición
// @Description  Envía al webhook los productos del alcance pedido. Un solo intento;
//
//	el resultado (success, message) viaja en el cuerpo.
//
// @Tags         restock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockTriggerRequest  false  "scope: critical (por defecto) | low_stock"
// @Success      200  {object}  dto.RestockTriggerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/restock/trigger [post]
func (h *RestockHandler) Trigger(c *fiber.Ctx) error {
	var in dto.RestockTriggerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	out, err := h.uc.Trigger(c.Context(), in.Scope)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
