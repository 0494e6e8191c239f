package stock_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
	"github.com/jhoicas/stock-portal/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func normalize(t *testing.T, headers []string, rows ...[]string) *entity.StockTable {
	t.Helper()
	table, err := stock.Normalize(entity.RawTable{Headers: headers, Rows: rows}, stock.DefaultColumnRules())
	require.NoError(t, err)
	require.NotNil(t, table)
	return table
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso de referencia
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_EjemploQtyMinStockName(t *testing.T) {
	table := normalize(t, []string{"Qty", "Min Stock", "Name"}, []string{"5", "10", "Widget"})

	require.Len(t, table.Rows, 1)
	r := table.Rows[0]
	assert.Equal(t, 5, r.AvailableStock)
	assert.Equal(t, 10, r.RestockLevel)
	assert.Equal(t, "Widget", r.ProductName)
	assert.Equal(t, entity.StatusCritical, r.Status())
	assert.False(t, r.HasSKU(), "la hoja no trae SKU")
	assert.Empty(t, r.Extra)

	assert.Equal(t, []string{
		entity.ColumnAvailableStock, entity.ColumnRestockLevel, entity.ColumnProductName, entity.ColumnStatus,
	}, table.Columns)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de headers
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_HeadersSinDistinguirMayusculasNiEspacios(t *testing.T) {
	table := normalize(t,
		[]string{"  PRODUCT name ", " sku", "On Hand  ", "REORDER POINT"},
		[]string{"Taza", "T-1", "40", "20"},
	)

	r := table.Rows[0]
	assert.Equal(t, "Taza", r.ProductName)
	assert.Equal(t, "T-1", r.SKU)
	assert.Equal(t, 40, r.AvailableStock)
	assert.Equal(t, 20, r.RestockLevel)
	assert.Equal(t, entity.StatusInStock, r.Status())
}

func TestNormalize_PrioridadDeAliasDeterminista(t *testing.T) {
	// "qty" está declarado antes que "inventory": gana aunque aparezca después en la hoja.
	table := normalize(t,
		[]string{"Name", "Inventory", "Qty"},
		[]string{"Lápiz", "100", "3"},
	)

	r := table.Rows[0]
	assert.Equal(t, 3, r.AvailableStock)
	assert.Equal(t, "100", r.Extra["Inventory"], "el alias perdedor se conserva sin renombrar")
	assert.Equal(t, []string{
		entity.ColumnProductName, "Inventory", entity.ColumnAvailableStock, entity.ColumnRestockLevel, entity.ColumnStatus,
	}, table.Columns)
}

func TestNormalize_ColumnasNoReconocidasSobreviven(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Stock", "Supplier", "Warehouse Bin"},
		[]string{"A-1", "50", "ACME", "B12"},
		[]string{"A-2", "7", "", "C03"},
	)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, map[string]string{"Supplier": "ACME", "Warehouse Bin": "B12"}, table.Rows[0].Extra)
	assert.Equal(t, map[string]string{"Supplier": "", "Warehouse Bin": "C03"}, table.Rows[1].Extra)
	assert.True(t, table.HasColumn("Supplier"))
	assert.False(t, table.HasColumn("Stock"), "la columna reconocida se renombra una sola vez")
	assert.True(t, table.HasColumn(entity.ColumnAvailableStock))
}

func TestNormalize_NombreCanonicalLiteralEsReconocido(t *testing.T) {
	table := normalize(t, []string{"SKU", "Available Stock"}, []string{"A-1", "25"})
	assert.Equal(t, 25, table.Rows[0].AvailableStock)
}

func TestNormalize_ColumnaStatusDeLaHojaSeRenombra(t *testing.T) {
	table := normalize(t, []string{"SKU", "Qty", "Status"}, []string{"A-1", "2", "OK"})

	r := table.Rows[0]
	assert.Equal(t, "OK", r.Extra["Status.1"])
	assert.NotContains(t, r.Extra, "Status")
	assert.Equal(t, "Critical", r.ToMap()[entity.ColumnStatus])
	assert.Equal(t, []string{"SKU", "Available Stock", "Status.1", "Restock Level", "Status"}, table.Columns)
}

func TestNormalize_HeadersDuplicadosSeConservanConSufijo(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty", "Notes", "Notes"},
		[]string{"A", "50", "first", "second"},
	)

	assert.Equal(t, map[string]string{"Notes": "first", "Notes.1": "second"}, table.Rows[0].Extra)
	assert.Equal(t, []string{"SKU", "Available Stock", "Notes", "Notes.1", "Restock Level", "Status"}, table.Columns)
}

func TestNormalize_HeaderCanonicoNoReclamadoSeConserva(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Stock", "Available Stock"},
		[]string{"A", "3", "7"},
	)

	r := table.Rows[0]
	assert.Equal(t, 3, r.AvailableStock, "gana el alias de mayor prioridad")
	assert.Equal(t, "7", r.Extra["Available Stock.1"])
	assert.Equal(t, "7", r.ToMap()["Available Stock.1"])
}

func TestNormalize_SufijoNoPisaHeaderLiteral(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty", "Notes", "Notes.1", "Notes"},
		[]string{"A", "5", "a", "b", "c"},
	)

	assert.Equal(t, map[string]string{"Notes": "a", "Notes.1": "b", "Notes.2": "c"}, table.Rows[0].Extra)
}

func TestNormalize_AliasExtraConfigurables(t *testing.T) {
	extra, err := stock.ParseExtraAliases("Available Stock=units | existencias; sku=codigo")
	require.NoError(t, err)

	rules := stock.DefaultColumnRules().WithExtraAliases(extra)
	table, err := stock.Normalize(entity.RawTable{
		Headers: []string{"Codigo", "Existencias"},
		Rows:    [][]string{{"X-9", "33"}},
	}, rules)
	require.NoError(t, err)

	r := table.Rows[0]
	assert.Equal(t, "X-9", r.SKU)
	assert.Equal(t, 33, r.AvailableStock)
}

func TestParseExtraAliases_CampoDesconocido(t *testing.T) {
	_, err := stock.ParseExtraAliases("Price=precio")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfig))

	_, err = stock.ParseExtraAliases("sin separador")
	assert.True(t, errors.Is(err, domain.ErrConfig))
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos requeridos y por defecto
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_SinColumnaDeStock_ErrSchema(t *testing.T) {
	table, err := stock.Normalize(entity.RawTable{
		Headers: []string{"Name", "Supplier"},
		Rows:    [][]string{{"Widget", "ACME"}},
	}, stock.DefaultColumnRules())

	assert.Nil(t, table)
	assert.True(t, errors.Is(err, domain.ErrSchema))
}

func TestNormalize_SinEncabezados_ErrSchema(t *testing.T) {
	_, err := stock.Normalize(entity.RawTable{}, stock.DefaultColumnRules())
	assert.True(t, errors.Is(err, domain.ErrSchema))
}

func TestNormalize_SinColumnaDeReposicion_UsaDiez(t *testing.T) {
	table := normalize(t,
		[]string{"Name", "Stock"},
		[]string{"A", "5"}, []string{"B", "50"}, []string{"C", "0"},
	)

	for _, r := range table.Rows {
		assert.Equal(t, entity.DefaultRestockLevel, r.RestockLevel)
	}
	assert.Equal(t, entity.ColumnRestockLevel, table.Columns[len(table.Columns)-2])
}

// ──────────────────────────────────────────────────────────────────────────────
// Limpieza y coerción
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_DescartaFilasEnBlanco(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty", "Notes"},
		[]string{"A-1", "20", "ok"},
		[]string{"", "20", "sin sku"},
		[]string{"A-3", "  ", "sin qty"},
		[]string{"A-4"},
		[]string{},
		[]string{"A-5", "15"},
	)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "A-1", table.Rows[0].SKU)
	assert.Equal(t, "A-5", table.Rows[1].SKU)
	assert.Equal(t, "", table.Rows[1].Extra["Notes"], "fila corta: la celda faltante queda vacía")
}

func TestNormalize_ValoresNoNumericosValenCero(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty", "Threshold"},
		[]string{"A-1", "n/a", "abc"},
		[]string{"A-2", "12.9", "1,200"},
		[]string{"A-3", "-4", "15"},
	)

	require.Len(t, table.Rows, 3)
	assert.Equal(t, 0, table.Rows[0].AvailableStock)
	assert.Equal(t, 0, table.Rows[0].RestockLevel)
	assert.Equal(t, 12, table.Rows[1].AvailableStock)
	assert.Equal(t, 1200, table.Rows[1].RestockLevel)
	assert.Equal(t, 0, table.Rows[2].AvailableStock)
}

func TestNormalize_SkuDuplicadosSePermiten(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty"},
		[]string{"A-1", "20"}, []string{"A-1", "30"},
	)
	assert.Len(t, table.Rows, 2)
}

func TestNormalize_EstadoRecalculadoCoincide(t *testing.T) {
	table := normalize(t,
		[]string{"SKU", "Qty", "Min Stock"},
		[]string{"A", "10", "5"},
		[]string{"B", "11", "20"},
		[]string{"C", "11", "11"},
		[]string{"D", "200", "50"},
	)

	want := []entity.StockStatus{entity.StatusCritical, entity.StatusLowStock, entity.StatusInStock, entity.StatusInStock}
	for i, r := range table.Rows {
		assert.Equal(t, want[i], r.Status(), "fila %d", i)
		assert.Equal(t, entity.ClassifyStatus(r.AvailableStock, r.RestockLevel), r.Status())
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 5, stock.ParseQuantity("5"))
	assert.Equal(t, 5, stock.ParseQuantity(" 5 "))
	assert.Equal(t, 5, stock.ParseQuantity("5.0"))
	assert.Equal(t, 0, stock.ParseQuantity(""))
	assert.Equal(t, 0, stock.ParseQuantity("cinco"))
	assert.Equal(t, 0, stock.ParseQuantity("-1"))
	assert.Equal(t, 3400, stock.ParseQuantity("3,400"))
}

func TestParseQuantity_ValoresEnormesSeAcotan(t *testing.T) {
	for _, in := range []string{"9223372036854775808", "18446744073709551615", "1e19", "2147483648"} {
		assert.Equal(t, math.MaxInt32, stock.ParseQuantity(in), in)
	}
	assert.Equal(t, math.MaxInt32, stock.ParseQuantity("2147483647"))
	assert.Equal(t, 0, stock.ParseQuantity("-1e19"))
}

func TestNormalize_StockEnormeNoEsCritico(t *testing.T) {
	table := normalize(t, []string{"SKU", "Stock", "Restock Level"}, []string{"A", "9223372036854775808", "5"})

	r := table.Rows[0]
	assert.Equal(t, math.MaxInt32, r.AvailableStock)
	assert.Equal(t, entity.StatusInStock, r.Status())
}
