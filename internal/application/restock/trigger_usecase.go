package restock

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-portal/internal/application/dto"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// Alcances del disparo: qué subconjunto de la tabla se envía.
const (
	ScopeCritical = "critical"
	ScopeLowStock = "low_stock"
)

// MsgNothingToRestock ningún producto cae en el alcance pedido; no se llama al webhook.
const MsgNothingToRestock = "No items to restock"

// TriggerUseCase carga la hoja, elige el subconjunto según el alcance y llama al Notifier.
type TriggerUseCase struct {
	loader            *appstock.LoadStockUseCase
	notifier          *Notifier
	webhookURL        string
	criticalThreshold int
}

// NewTriggerUseCase construye el caso de uso.
func NewTriggerUseCase(loader *appstock.LoadStockUseCase, notifier *Notifier, webhookURL string, criticalThreshold int) *TriggerUseCase {
	if criticalThreshold <= 0 {
		criticalThreshold = appstock.DefaultCriticalThreshold
	}
	return &TriggerUseCase{
		loader:            loader,
		notifier:          notifier,
		webhookURL:        webhookURL,
		criticalThreshold: criticalThreshold,
	}
}

// Trigger ejecuta el disparo. Solo devuelve error (domain.ErrInvalidInput) para un alcance
// desconocido; cualquier otro fallo viaja en la respuesta como Success=false.
func (uc *TriggerUseCase) Trigger(ctx context.Context, scope string) (dto.RestockTriggerResponse, error) {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		scope = ScopeCritical
	}
	if scope != ScopeCritical && scope != ScopeLowStock {
		return dto.RestockTriggerResponse{}, fmt.Errorf("%w: alcance %q", domain.ErrInvalidInput, scope)
	}

	res := uc.loader.Load(ctx)
	if !res.OK() {
		return dto.RestockTriggerResponse{Success: false, Message: res.Message}, nil
	}

	var records []entity.StockRecord
	if scope == ScopeLowStock {
		records = appstock.LowStockItems(res.Table)
	} else {
		records = appstock.CriticalItems(res.Table, uc.criticalThreshold)
	}
	if len(records) == 0 {
		return dto.RestockTriggerResponse{Success: false, Message: MsgNothingToRestock}, nil
	}

	items := make([]map[string]any, 0, len(records))
	for _, r := range records {
		items = append(items, r.ToMap())
	}
	ok, msg := uc.notifier.TriggerRestock(ctx, uc.webhookURL, items)
	return dto.RestockTriggerResponse{Success: ok, Message: msg, Count: len(items)}, nil
}
