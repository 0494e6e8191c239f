package entity

// RawTable datos tabulares tal como llegan de la exportación CSV: primera fila = headers.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// StockTable tabla canónica reconstruida en cada carga. Nadie la modifica después de crearla.
type StockTable struct {
	// Columns orden de columnas para presentación: canónicas y extra en el orden de la hoja,
	// Restock Level al final si fue sintetizada y Status siempre última.
	Columns []string
	Rows    []StockRecord
}

// EmptyStockTable tabla vacía; es la señal uniforme de error recuperable.
func EmptyStockTable() *StockTable {
	return &StockTable{Columns: []string{}, Rows: []StockRecord{}}
}

// IsEmpty true si la tabla es nil o no tiene filas.
func (t *StockTable) IsEmpty() bool {
	return t == nil || len(t.Rows) == 0
}

// HasColumn indica si la tabla expone la columna indicada.
func (t *StockTable) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter devuelve los registros que cumplen el predicado, en el orden original.
func (t *StockTable) Filter(keep func(StockRecord) bool) []StockRecord {
	out := []StockRecord{}
	if t == nil {
		return out
	}
	for _, r := range t.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
