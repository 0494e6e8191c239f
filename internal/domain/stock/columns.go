package stock

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// ColumnRule asocia un campo canónico con sus alias conocidos, en orden de prioridad.
type ColumnRule struct {
	Canonical string
	Aliases   []string
}

// ColumnRules tabla de reglas evaluada de arriba hacia abajo.
type ColumnRules []ColumnRule

// DefaultColumnRules alias vistos en las hojas de los retailers.
// El orden importa: la primera regla reclama su columna antes que las siguientes
// y dentro de una regla gana el primer alias presente.
func DefaultColumnRules() ColumnRules {
	return ColumnRules{
		{
			Canonical: entity.ColumnAvailableStock,
			Aliases:   []string{"stock", "qty", "quantity", "inventory", "available", "on hand", "available stock(sync with shopify)"},
		},
		{
			Canonical: entity.ColumnRestockLevel,
			Aliases:   []string{"restock level", "threshold", "min stock", "reorder point", "minimum"},
		},
		{
			Canonical: entity.ColumnProductName,
			Aliases:   []string{"product name", "name", "title", "item name"},
		},
		{
			Canonical: entity.ColumnSKU,
			Aliases:   []string{"sku", "id", "item no", "item number", "barcode"},
		},
	}
}

// WithExtraAliases devuelve una copia con alias adicionales al final de cada regla
// (menor prioridad que los declarados).
func (rules ColumnRules) WithExtraAliases(extra map[string][]string) ColumnRules {
	out := make(ColumnRules, len(rules))
	for i, r := range rules {
		aliases := append([]string{}, r.Aliases...)
		aliases = append(aliases, extra[r.Canonical]...)
		out[i] = ColumnRule{Canonical: r.Canonical, Aliases: aliases}
	}
	return out
}

// ParseExtraAliases interpreta "Available Stock=units|count;SKU=code".
// Solo acepta campos canónicos conocidos.
func ParseExtraAliases(raw string) (map[string][]string, error) {
	out := map[string][]string{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return out, nil
	}
	known := map[string]string{}
	for _, r := range DefaultColumnRules() {
		known[headerKey(r.Canonical)] = r.Canonical
	}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, list, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: alias sin '=': %q", domain.ErrConfig, entry)
		}
		canonical, ok := known[headerKey(name)]
		if !ok {
			return nil, fmt.Errorf("%w: campo canónico desconocido %q", domain.ErrConfig, name)
		}
		for _, a := range strings.Split(list, "|") {
			if a = strings.TrimSpace(a); a != "" {
				out[canonical] = append(out[canonical], a)
			}
		}
	}
	return out, nil
}

// headerKey clave de comparación: sin espacios en los extremos y con case folding.
func headerKey(h string) string {
	return cases.Fold().String(strings.TrimSpace(h))
}

// resolveColumns devuelve, por índice de columna de origen, el nombre canónico que reclama.
// Las columnas no reclamadas no aparecen en el mapa.
func resolveColumns(headers []string, rules ColumnRules) map[int]string {
	lookup := make(map[string]int, len(headers))
	for i, h := range headers {
		k := headerKey(h)
		if _, dup := lookup[k]; !dup {
			lookup[k] = i
		}
	}

	claimed := map[int]string{}
	for _, rule := range rules {
		// El nombre canónico literal también sirve, con la menor prioridad.
		candidates := append(append([]string{}, rule.Aliases...), rule.Canonical)
		for _, alias := range candidates {
			idx, ok := lookup[headerKey(alias)]
			if !ok {
				continue
			}
			if _, taken := claimed[idx]; taken {
				continue
			}
			claimed[idx] = rule.Canonical
			break
		}
	}
	return claimed
}
