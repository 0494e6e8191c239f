package stock

import (
	"context"
	"time"

	"github.com/jhoicas/stock-portal/internal/application/dto"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// SheetSource puerto de salida hacia la hoja de cálculo remota.
// El adaptador (gsheet.Client) devuelve domain.ErrConfig o domain.ErrFetch.
type SheetSource interface {
	FetchTable(ctx context.Context) (*entity.RawTable, error)
}

// StockReport datos que necesita el generador del reporte imprimible.
type StockReport struct {
	Title       string
	RefreshID   string
	GeneratedAt time.Time
	Metrics     dto.StockMetricsDTO
	Items       []dto.StockItemDTO
}

// ReportGenerator puerto de salida para el PDF del inventario.
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, report StockReport) ([]byte, error)
}
