package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-portal/internal/application/dto"
)

// ReportUseCase genera el PDF del inventario a partir de una carga fresca.
type ReportUseCase struct {
	loader    *LoadStockUseCase
	generator ReportGenerator
	title     string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(loader *LoadStockUseCase, generator ReportGenerator, title string) *ReportUseCase {
	return &ReportUseCase{loader: loader, generator: generator, title: title}
}

// Download devuelve (pdf, nombre de archivo, mensaje, error).
// Si la carga no trae datos, pdf es nil y mensaje explica por qué; error queda para
// fallos del generador.
func (uc *ReportUseCase) Download(ctx context.Context) ([]byte, string, string, error) {
	res := uc.loader.Load(ctx)
	if !res.OK() {
		return nil, "", res.Message, nil
	}

	pdfBytes, err := uc.generator.GenerateStockReport(ctx, StockReport{
		Title:       uc.title,
		RefreshID:   res.RefreshID,
		GeneratedAt: res.LoadedAt,
		Metrics:     Metrics(res.Table),
		Items:       dto.ToStockItemDTOs(res.Table.Rows),
	})
	if err != nil {
		return nil, "", "", fmt.Errorf("reporte: generar PDF: %w", err)
	}
	filename := fmt.Sprintf("inventario-%s.pdf", res.LoadedAt.Format("20060102-1504"))
	return pdfBytes, filename, "", nil
}
