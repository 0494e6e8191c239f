package stock

import (
	"github.com/jhoicas/stock-portal/internal/application/dto"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// DefaultCriticalThreshold umbral del panel de alertas críticas.
const DefaultCriticalThreshold = entity.CriticalFloor

// CriticalItems registros con stock <= threshold. Tabla vacía → lista vacía.
func CriticalItems(table *entity.StockTable, threshold int) []entity.StockRecord {
	return table.Filter(func(r entity.StockRecord) bool {
		return r.AvailableStock <= threshold
	})
}

// LowStockItems registros por debajo de su propio nivel de reposición.
func LowStockItems(table *entity.StockTable) []entity.StockRecord {
	return table.Filter(entity.StockRecord.IsLowStock)
}

// Metrics calcula las tarjetas del dashboard: total de productos, cuántos están
// bajo su nivel de reposición y unidades totales en stock.
func Metrics(table *entity.StockTable) dto.StockMetricsDTO {
	var m dto.StockMetricsDTO
	if table.IsEmpty() {
		return m
	}
	m.TotalProducts = len(table.Rows)
	for _, r := range table.Rows {
		m.TotalStockUnits += int64(r.AvailableStock)
		if r.IsLowStock() {
			m.LowStockCount++
		}
	}
	return m
}
