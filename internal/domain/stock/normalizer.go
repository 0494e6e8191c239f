// Package stock contiene la normalización de la hoja de inventario a la tabla canónica
// (servicio de dominio puro, sin red).
package stock

import (
	"fmt"

	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// Normalize transforma la tabla cruda en la tabla canónica:
//  1. descarta filas con la primera o segunda celda vacía (filas en blanco al final de la hoja)
//  2. reconcilia headers contra las reglas de alias
//  3. exige la columna de stock (domain.ErrSchema si no aparece)
//  4. sintetiza Restock Level = 10 si no hay columna de reposición
//  5. convierte stock y reposición a enteros no negativos
//
// El estado de cada fila no se guarda; StockRecord.Status() lo deriva.
func Normalize(raw entity.RawTable, rules ColumnRules) (*entity.StockTable, error) {
	if len(raw.Headers) == 0 {
		return nil, fmt.Errorf("%w: la hoja no tiene encabezados", domain.ErrSchema)
	}

	claimed := resolveColumns(raw.Headers, rules)
	idxOf := map[string]int{}
	for idx, canonical := range claimed {
		idxOf[canonical] = idx
	}

	stockIdx, ok := idxOf[entity.ColumnAvailableStock]
	if !ok {
		return nil, domain.ErrSchema
	}
	restockIdx, hasRestock := idxOf[entity.ColumnRestockLevel]
	nameIdx, hasName := idxOf[entity.ColumnProductName]
	skuIdx, hasSKU := idxOf[entity.ColumnSKU]

	columns, passthrough := layoutColumns(raw.Headers, claimed, hasRestock)

	rows := make([]entity.StockRecord, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		if isBlank(row, 0) || (len(raw.Headers) > 1 && isBlank(row, 1)) {
			continue
		}

		restock := entity.DefaultRestockLevel
		if hasRestock {
			restock = ParseQuantity(cell(row, restockIdx))
		}
		var name, sku string
		if hasName {
			name = cell(row, nameIdx)
		}
		if hasSKU {
			sku = cell(row, skuIdx)
		}
		extra := make(map[string]string, len(passthrough))
		for _, pc := range passthrough {
			extra[pc.name] = cell(row, pc.idx)
		}

		rows = append(rows, entity.NewStockRecord(
			name, hasName, sku, hasSKU,
			ParseQuantity(cell(row, stockIdx)), restock, extra,
		))
	}

	return &entity.StockTable{Columns: columns, Rows: rows}, nil
}

// passthroughColumn columna de origen copiada sin interpretar, con su nombre de salida.
type passthroughColumn struct {
	idx  int
	name string
}

// layoutColumns calcula el orden de columnas y las columnas que se copian sin interpretar.
// Un header repetido o que choca con un nombre canónico se conserva renombrado con
// sufijo numérico ("Notes.1", "Status.1"), igual que al leer el CSV con pandas.
func layoutColumns(headers []string, claimed map[int]string, hasRestock bool) ([]string, []passthroughColumn) {
	seen := map[string]bool{
		entity.ColumnProductName:    true,
		entity.ColumnSKU:            true,
		entity.ColumnAvailableStock: true,
		entity.ColumnRestockLevel:   true,
		entity.ColumnStatus:         true,
	}
	// Los headers literales de la hoja reservan su nombre antes de renombrar duplicados.
	literal := map[string]bool{}
	for i, h := range headers {
		if _, ok := claimed[i]; !ok {
			literal[h] = true
		}
	}

	columns := make([]string, 0, len(headers)+2)
	passthrough := make([]passthroughColumn, 0, len(headers))
	for i, h := range headers {
		if canonical, ok := claimed[i]; ok {
			columns = append(columns, canonical)
			continue
		}
		name := h
		if seen[name] {
			name = mangle(h, seen, literal)
		}
		seen[name] = true
		columns = append(columns, name)
		passthrough = append(passthrough, passthroughColumn{idx: i, name: name})
	}
	if !hasRestock {
		columns = append(columns, entity.ColumnRestockLevel)
	}
	columns = append(columns, entity.ColumnStatus)
	return columns, passthrough
}

// mangle primer "<h>.<n>" libre, sin pisar otro header literal de la hoja.
func mangle(h string, seen, literal map[string]bool) string {
	for n := 1; ; n++ {
		cand := fmt.Sprintf("%s.%d", h, n)
		if !seen[cand] && !literal[cand] {
			return cand
		}
	}
}
