package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-portal/internal/application/dto"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
)

// StockHandler expone la tabla canónica, los paneles de alerta y el reporte PDF.
type StockHandler struct {
	loader            *appstock.LoadStockUseCase
	report            *appstock.ReportUseCase
	criticalThreshold int
}

// NewStockHandler construye el handler.
func NewStockHandler(loader *appstock.LoadStockUseCase, report *appstock.ReportUseCase, criticalThreshold int) *StockHandler {
	if criticalThreshold <= 0 {
		criticalThreshold = appstock.DefaultCriticalThreshold
	}
	return &StockHandler{loader: loader, report: report, criticalThreshold: criticalThreshold}
}

// List godoc
// @Summary      Tabla canónica del inventario
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.StockTableDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	res := h.loader.Load(c.Context())
	if !res.OK() {
		return noData(c, res.Message)
	}
	return c.JSON(dto.StockTableDTO{
		RefreshID: res.RefreshID,
		LoadedAt:  res.LoadedAt,
		Columns:   res.Table.Columns,
		Total:     len(res.Table.Rows),
		Items:     res.Table.Rows,
	})
}

// Critical godoc
// @Summary      Productos en nivel crítico
// @Tags         stock
// @Produce      json
// @Param        threshold  query  int  false  "Umbral inclusivo de unidades (por defecto 10)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/critical [get]
func (h *StockHandler) Critical(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", h.criticalThreshold)
	if threshold < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold no puede ser negativo"})
	}
	res := h.loader.Load(c.Context())
	if !res.OK() {
		return noData(c, res.Message)
	}
	items := dto.ToStockItemDTOs(appstock.CriticalItems(res.Table, threshold))
	return c.JSON(fiber.Map{
		"refresh_id": res.RefreshID,
		"threshold":  threshold,
		"total":      len(items),
		"items":      items,
	})
}

// LowStock godoc
// @Summary      Productos bajo su nivel de reposición
// @Tags         stock
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/low-stock [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	res := h.loader.Load(c.Context())
	if !res.OK() {
		return noData(c, res.Message)
	}
	items := dto.ToStockItemDTOs(appstock.LowStockItems(res.Table))
	return c.JSON(fiber.Map{
		"refresh_id": res.RefreshID,
		"total":      len(items),
		"items":      items,
	})
}

// Report godoc
// @Summary      Reporte PDF del inventario
// @Tags         stock
// @Produce      application/pdf
// @Success      200
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, msg, err := h.report.Download(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if pdfBytes == nil {
		return noData(c, msg)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// noData la carga no produjo filas: la presentación muestra el mensaje y no sigue.
func noData(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NO_DATA", Message: msg})
}
