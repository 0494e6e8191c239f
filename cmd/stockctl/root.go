package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-portal/internal/application/restock"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
	domstock "github.com/jhoicas/stock-portal/internal/domain/stock"
	"github.com/jhoicas/stock-portal/internal/infrastructure/gsheet"
	"github.com/jhoicas/stock-portal/internal/infrastructure/webhook"
	"github.com/jhoicas/stock-portal/pkg/config"
	"github.com/jhoicas/stock-portal/pkg/logger"
)

// deps casos de uso que necesitan los subcomandos.
type deps struct {
	Loader            *appstock.LoadStockUseCase
	Restock           *restock.TriggerUseCase
	CriticalThreshold int
}

type depsFactory func() (*deps, error)

func newRootCmd(factory depsFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "stockctl",
		Short: "Consulta de inventario y disparo de reposición",
		Long: `stockctl lee la hoja de inventario configurada (SHEET_SPREADSHEET_URL),
la normaliza y muestra las alertas, o envía los productos al webhook de reposición.

  stockctl check      Métricas y productos en alerta
  stockctl restock    Envía los productos al webhook (WEBHOOK_URL)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(factory), newRestockCmd(factory))
	return root
}

// loadDeps arma los casos de uso desde la configuración del entorno.
// Los logs van a stderr para no mezclarse con la salida del comando.
func loadDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	extra, err := domstock.ParseExtraAliases(cfg.Stock.ExtraAliases)
	if err != nil {
		return nil, err
	}
	sheetClient := gsheet.NewClient(gsheet.Config{
		SpreadsheetURL: cfg.Sheet.SpreadsheetURL,
		ExportHost:     cfg.Sheet.ExportHost,
		GID:            cfg.Sheet.GID,
		Timeout:        cfg.Sheet.FetchTimeout,
	})
	loader := appstock.NewLoadStockUseCase(sheetClient, domstock.DefaultColumnRules().WithExtraAliases(extra), log.Component("loader"))
	notifier := restock.NewNotifier(webhook.NewClient(cfg.Webhook.Timeout), log.Component("restock"))

	threshold := cfg.Stock.CriticalThreshold
	if threshold <= 0 {
		threshold = appstock.DefaultCriticalThreshold
	}
	return &deps{
		Loader:            loader,
		Restock:           restock.NewTriggerUseCase(loader, notifier, cfg.Webhook.URL, threshold),
		CriticalThreshold: threshold,
	}, nil
}
