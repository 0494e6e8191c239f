package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-portal/internal/application/restock"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LoadStock         *appstock.LoadStockUseCase
	Dashboard         *appstock.DashboardUseCase
	Report            *appstock.ReportUseCase
	Restock           *restock.TriggerUseCase
	CriticalThreshold int
}

// Router registra las rutas de la API. Sin autenticación: el portal se publica detrás
// del entorno que lo hospeda.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	stockHandler := NewStockHandler(deps.LoadStock, deps.Report, deps.CriticalThreshold)
	stock := api.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/alerts/critical", stockHandler.Critical)
	stock.Get("/alerts/low-stock", stockHandler.LowStock)
	stock.Get("/report.pdf", stockHandler.Report)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reposición
	restockHandler := NewRestockHandler(deps.Restock)
	api.Post("/restock/trigger", restockHandler.Trigger)
}
