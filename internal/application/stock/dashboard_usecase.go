package stock

import (
	"context"

	"github.com/jhoicas/stock-portal/internal/application/dto"
)

// DashboardUseCase arma el resumen del dashboard sobre una carga fresca de la hoja.
type DashboardUseCase struct {
	loader            *LoadStockUseCase
	criticalThreshold int
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa el piso crítico (10).
func NewDashboardUseCase(loader *LoadStockUseCase, threshold int) *DashboardUseCase {
	if threshold <= 0 {
		threshold = DefaultCriticalThreshold
	}
	return &DashboardUseCase{loader: loader, criticalThreshold: threshold}
}

// CriticalThreshold umbral configurado para el panel crítico.
func (uc *DashboardUseCase) CriticalThreshold() int { return uc.criticalThreshold }

// GetSummary carga la hoja y calcula métricas y paneles. Si la carga falla devuelve
// nil y el mensaje para el usuario.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, string) {
	res := uc.loader.Load(ctx)
	if !res.OK() {
		return nil, res.Message
	}

	return &dto.DashboardSummaryDTO{
		RefreshID:         res.RefreshID,
		LoadedAt:          res.LoadedAt,
		Metrics:           Metrics(res.Table),
		CriticalThreshold: uc.criticalThreshold,
		CriticalItems:     dto.ToStockItemDTOs(CriticalItems(res.Table, uc.criticalThreshold)),
		LowStockItems:     dto.ToStockItemDTOs(LowStockItems(res.Table)),
	}, ""
}
