package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-portal/internal/application/restock"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
	domstock "github.com/jhoicas/stock-portal/internal/domain/stock"
	"github.com/jhoicas/stock-portal/internal/infrastructure/gsheet"
	infrapdf "github.com/jhoicas/stock-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-portal/internal/infrastructure/webhook"
	httpRouter "github.com/jhoicas/stock-portal/internal/interfaces/http"
	"github.com/jhoicas/stock-portal/pkg/config"
	"github.com/jhoicas/stock-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	extra, err := domstock.ParseExtraAliases(cfg.Stock.ExtraAliases)
	if err != nil {
		log.Fatal().Err(err).Msg("STOCK_EXTRA_ALIASES")
	}
	rules := domstock.DefaultColumnRules().WithExtraAliases(extra)

	// Origen: la hoja se descarga completa en cada petición, sin caché.
	sheetClient := gsheet.NewClient(gsheet.Config{
		SpreadsheetURL: cfg.Sheet.SpreadsheetURL,
		ExportHost:     cfg.Sheet.ExportHost,
		GID:            cfg.Sheet.GID,
		Timeout:        cfg.Sheet.FetchTimeout,
	})
	if cfg.Sheet.SpreadsheetURL == "" {
		log.Warn().Msg("SHEET_SPREADSHEET_URL vacío: las cargas responderán sin datos")
	}

	loadUC := appstock.NewLoadStockUseCase(sheetClient, rules, log.Component("loader"))
	dashboardUC := appstock.NewDashboardUseCase(loadUC, cfg.Stock.CriticalThreshold)
	reportUC := appstock.NewReportUseCase(loadUC, infrapdf.NewMarotoStockReport(), cfg.App.Name)

	notifier := restock.NewNotifier(webhook.NewClient(cfg.Webhook.Timeout), log.Component("restock"))
	restockUC := restock.NewTriggerUseCase(loadUC, notifier, cfg.Webhook.URL, cfg.Stock.CriticalThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LoadStock:         loadUC,
		Dashboard:         dashboardUC,
		Report:            reportUC,
		Restock:           restockUC,
		CriticalThreshold: dashboardUC.CriticalThreshold(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
