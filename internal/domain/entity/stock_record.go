package entity

import "encoding/json"

// Nombres canónicos de columna. Son también las claves del JSON que consume el webhook.
const (
	ColumnProductName    = "Product Name"
	ColumnSKU            = "SKU"
	ColumnAvailableStock = "Available Stock"
	ColumnRestockLevel   = "Restock Level"
	ColumnStatus         = "Status"
)

// StockStatus clasificación derivada de un registro.
type StockStatus string

const (
	StatusCritical StockStatus = "Critical"
	StatusLowStock StockStatus = "Low Stock"
	StatusInStock  StockStatus = "In Stock"
)

const (
	// CriticalFloor piso absoluto: a este nivel o menos el producto es crítico sin importar su umbral.
	CriticalFloor = 10
	// DefaultRestockLevel umbral aplicado cuando la hoja no trae columna de reposición.
	DefaultRestockLevel = 10
)

// ClassifyStatus aplica la regla de tres vías sobre stock disponible y nivel de reposición.
func ClassifyStatus(available, restockLevel int) StockStatus {
	switch {
	case available <= CriticalFloor:
		return StatusCritical
	case available < restockLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// StockRecord una fila de la tabla canónica. Es inmutable una vez construida:
// el estado no se almacena, se recalcula con Status().
type StockRecord struct {
	ProductName    string
	SKU            string
	AvailableStock int
	RestockLevel   int

	// Extra columnas propias del retailer, copiadas tal cual (header → valor crudo).
	Extra map[string]string

	hasProductName bool
	hasSKU         bool
}

// NewStockRecord construye un registro. hasName/hasSKU indican si la hoja traía esas columnas.
func NewStockRecord(name string, hasName bool, sku string, hasSKU bool, available, restock int, extra map[string]string) StockRecord {
	if extra == nil {
		extra = map[string]string{}
	}
	return StockRecord{
		ProductName:    name,
		SKU:            sku,
		AvailableStock: available,
		RestockLevel:   restock,
		Extra:          extra,
		hasProductName: hasName,
		hasSKU:         hasSKU,
	}
}

// Status devuelve la clasificación actual del registro.
func (r StockRecord) Status() StockStatus {
	return ClassifyStatus(r.AvailableStock, r.RestockLevel)
}

// IsLowStock indica si el stock está por debajo de su propio nivel de reposición.
// Es el predicado que usa la capa de presentación para resaltar filas.
func (r StockRecord) IsLowStock() bool {
	return r.AvailableStock < r.RestockLevel
}

// HasProductName indica si la hoja de origen traía columna de nombre.
func (r StockRecord) HasProductName() bool { return r.hasProductName }

// HasSKU indica si la hoja de origen traía columna de SKU.
func (r StockRecord) HasSKU() bool { return r.hasSKU }

// ToMap aplana el registro con las claves canónicas más las columnas extra.
// Es la forma que viaja en el payload del webhook.
func (r StockRecord) ToMap() map[string]any {
	m := make(map[string]any, len(r.Extra)+5)
	for k, v := range r.Extra {
		m[k] = v
	}
	if r.hasProductName {
		m[ColumnProductName] = r.ProductName
	}
	if r.hasSKU {
		m[ColumnSKU] = r.SKU
	}
	m[ColumnAvailableStock] = r.AvailableStock
	m[ColumnRestockLevel] = r.RestockLevel
	m[ColumnStatus] = string(r.Status())
	return m
}

// MarshalJSON serializa el registro en su forma plana.
func (r StockRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}
