package stock

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxQuantity = decimal.NewFromInt(math.MaxInt32)

// ParseQuantity convierte una celda a entero no negativo.
// Texto no numérico o vacío vale 0; los decimales se truncan; los negativos se llevan a 0
// y lo que supera math.MaxInt32 se acota a ese valor.
func ParseQuantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	// Las hojas formatean miles con coma: "1,200".
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if d.IsNegative() {
		return 0
	}
	if d.GreaterThanOrEqual(maxQuantity) {
		return math.MaxInt32
	}
	return int(d.IntPart())
}

func isBlank(row []string, idx int) bool {
	return idx >= len(row) || strings.TrimSpace(row[idx]) == ""
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
