package dto

import "time"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Reúne los KPIs del inventario y los dos paneles de alerta de una misma carga.
type DashboardSummaryDTO struct {
	RefreshID string    `json:"refresh_id"`
	LoadedAt  time.Time `json:"loaded_at"`

	Metrics StockMetricsDTO `json:"metrics"`

	// Panel crítico: stock <= CriticalThreshold (por defecto 10 unidades)
	CriticalThreshold int            `json:"critical_threshold"`
	CriticalItems     []StockItemDTO `json:"critical_items"`

	// Panel de reposición: stock por debajo de su propio Restock Level
	LowStockItems []StockItemDTO `json:"low_stock_items"`
}

// StockMetricsDTO tarjetas del dashboard.
type StockMetricsDTO struct {
	TotalProducts   int   `json:"total_products"`
	LowStockCount   int   `json:"low_stock_count"`
	TotalStockUnits int64 `json:"total_stock_units"`
}
