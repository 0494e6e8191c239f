package dto

import (
	"time"

	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// StockTableDTO respuesta de GET /api/stock: la tabla canónica completa.
// Items usa la forma plana del registro (claves canónicas + columnas del retailer).
type StockTableDTO struct {
	RefreshID string               `json:"refresh_id"`
	LoadedAt  time.Time            `json:"loaded_at"`
	Columns   []string             `json:"columns"`
	Total     int                  `json:"total"`
	Items     []entity.StockRecord `json:"items"`
}

// StockItemDTO proyección de detalle usada por los paneles de alerta.
type StockItemDTO struct {
	ProductName    string `json:"product_name"`
	SKU            string `json:"sku"`
	AvailableStock int    `json:"available_stock"`
	RestockLevel   int    `json:"restock_level"`
	Status         string `json:"status"`
	LowStock       bool   `json:"low_stock"`
}

// ToStockItemDTO proyecta un registro a la vista de detalle.
func ToStockItemDTO(r entity.StockRecord) StockItemDTO {
	return StockItemDTO{
		ProductName:    r.ProductName,
		SKU:            r.SKU,
		AvailableStock: r.AvailableStock,
		RestockLevel:   r.RestockLevel,
		Status:         string(r.Status()),
		LowStock:       r.IsLowStock(),
	}
}

// ToStockItemDTOs proyecta una lista; nunca devuelve nil.
func ToStockItemDTOs(records []entity.StockRecord) []StockItemDTO {
	out := make([]StockItemDTO, 0, len(records))
	for _, r := range records {
		out = append(out, ToStockItemDTO(r))
	}
	return out
}

// RestockTriggerRequest body de POST /api/restock/trigger.
type RestockTriggerRequest struct {
	Scope string `json:"scope"` // "critical" (por defecto) | "low_stock"
}

// RestockTriggerResponse resultado del disparo del webhook.
type RestockTriggerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
