package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-portal/internal/application/restock"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
	"github.com/jhoicas/stock-portal/internal/infrastructure/webhook"
	apphttp "github.com/jhoicas/stock-portal/internal/interfaces/http"
	"github.com/jhoicas/stock-portal/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	raw *entity.RawTable
	err error
}

func (f fakeSource) FetchTable(context.Context) (*entity.RawTable, error) { return f.raw, f.err }

type fakeReport struct{ err error }

func (f fakeReport) GenerateStockReport(context.Context, appstock.StockReport) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func retailerSheet() *entity.RawTable {
	return &entity.RawTable{
		Headers: []string{"Item Name", "Item No", "Qty", "Min Stock", "Supplier"},
		Rows: [][]string{
			{"Widget", "W-1", "4", "10", "ACME"},
			{"Gadget", "G-1", "30", "50", "Globex"},
			{"Sprocket", "S-1", "90", "20", ""},
			{"", "", "", "", ""},
		},
	}
}

// buildTestApp arma la app con el router real y dependencias falsas en los bordes.
func buildTestApp(t *testing.T, src appstock.SheetSource, webhookURL string) *fiber.App {
	t.Helper()
	log := logger.Nop()
	loader := appstock.NewLoadStockUseCase(src, nil, log)
	notifier := restock.NewNotifier(webhook.NewClient(0), log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LoadStock:         loader,
		Dashboard:         appstock.NewDashboardUseCase(loader, 10),
		Report:            appstock.NewReportUseCase(loader, fakeReport{}, "Inventario"),
		Restock:           restock.NewTriggerUseCase(loader, notifier, webhookURL, 10),
		CriticalThreshold: 10,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request, out any) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), string(body))
	}
	return resp.StatusCode
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestListStock_TablaCanonica(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	var out struct {
		Columns []string         `json:"columns"`
		Total   int              `json:"total"`
		Items   []map[string]any `json:"items"`
	}
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock", nil), &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, out.Total)
	assert.Contains(t, out.Columns, "Supplier")
	assert.Equal(t, "W-1", out.Items[0]["SKU"])
	assert.Equal(t, "Critical", out.Items[0]["Status"])
	assert.Equal(t, "Low Stock", out.Items[1]["Status"])
	assert.Equal(t, "In Stock", out.Items[2]["Status"])
}

func TestListStock_ErrorDeCarga_503ConMensaje(t *testing.T) {
	app := buildTestApp(t, fakeSource{err: domain.ErrConfig}, "")

	var out map[string]string
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock", nil), &out)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "NO_DATA", out["code"])
	assert.Equal(t, appstock.MsgInvalidSheetURL, out["message"])
}

func TestCriticalAlerts_UmbralPorQuery(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	var out struct {
		Threshold int              `json:"threshold"`
		Total     int              `json:"total"`
		Items     []map[string]any `json:"items"`
	}
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock/alerts/critical?threshold=30", nil), &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 30, out.Threshold)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Widget", out.Items[0]["product_name"])
}

func TestCriticalAlerts_UmbralNegativo_400(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	var out map[string]string
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock/alerts/critical?threshold=-1", nil), &out)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out["code"])
}

func TestLowStockAlerts(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	var out struct {
		Total int              `json:"total"`
		Items []map[string]any `json:"items"`
	}
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock/alerts/low-stock", nil), &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "G-1", out.Items[1]["sku"])
	assert.Equal(t, true, out.Items[1]["low_stock"])
}

func TestDashboardSummary(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	var out struct {
		Metrics struct {
			TotalProducts   int   `json:"total_products"`
			LowStockCount   int   `json:"low_stock_count"`
			TotalStockUnits int64 `json:"total_stock_units"`
		} `json:"metrics"`
		CriticalItems []map[string]any `json:"critical_items"`
	}
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil), &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 3, out.Metrics.TotalProducts)
	assert.Equal(t, 2, out.Metrics.LowStockCount)
	assert.Equal(t, int64(124), out.Metrics.TotalStockUnits)
	assert.Len(t, out.CriticalItems, 1)
}

func TestStockReport_PDF(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stock/report.pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inventario-")
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestStockReport_SinDatos_503(t *testing.T) {
	app := buildTestApp(t, fakeSource{err: errors.New("timeout")}, "")

	var out map[string]string
	status := doJSON(t, app, httptest.NewRequest(http.MethodGet, "/api/stock/report.pdf", nil), &out)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.True(t, strings.HasPrefix(out["message"], appstock.MsgLoadErrorPrefix))
}

// ──────────────────────────────────────────────────────────────────────────────
// Reposición
// ──────────────────────────────────────────────────────────────────────────────

func TestRestockTrigger_SinCuerpo_AlcanceCritico(t *testing.T) {
	var received map[string][]map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, srv.URL)

	var out map[string]any
	status := doJSON(t, app, httptest.NewRequest(http.MethodPost, "/api/restock/trigger", nil), &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, restock.MsgWebhookTriggered, out["message"])
	assert.EqualValues(t, 1, out["count"])
	require.Len(t, received["items"], 1)
	assert.Equal(t, "ACME", received["items"][0]["Supplier"])
}

func TestRestockTrigger_WebhookNoConfigurado(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/restock/trigger", strings.NewReader(`{"scope":"low_stock"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	var out map[string]any
	status := doJSON(t, app, req, &out)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, restock.MsgWebhookNotConfigured, out["message"])
}

func TestRestockTrigger_AlcanceDesconocido_400(t *testing.T) {
	app := buildTestApp(t, fakeSource{raw: retailerSheet()}, "http://unused")

	req := httptest.NewRequest(http.MethodPost, "/api/restock/trigger", strings.NewReader(`{"scope":"everything"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	var out map[string]string
	status := doJSON(t, app, req, &out)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", out["code"])
}
