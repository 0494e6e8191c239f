package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
	domstock "github.com/jhoicas/stock-portal/internal/domain/stock"
	"github.com/jhoicas/stock-portal/pkg/logger"
)

// Mensajes para el usuario final; la capa de presentación los muestra tal cual.
const (
	MsgInvalidSheetURL = "Invalid Google Sheet URL format"
	MsgStockColumn     = "Could not detect a 'Stock' column. Please check headers."
	MsgLoadErrorPrefix = "Error loading data from Google Sheets: "
	MsgNoData          = "No data available. Please check your Google Sheets connection."
)

// LoadResult resultado de un ciclo de carga. Una tabla vacía con Message es la señal
// uniforme de error recuperable.
type LoadResult struct {
	RefreshID string
	LoadedAt  time.Time
	Table     *entity.StockTable
	Message   string
}

// OK indica si hay datos para mostrar.
func (r LoadResult) OK() bool { return !r.Table.IsEmpty() }

// LoadStockUseCase descarga la hoja y la normaliza a la tabla canónica.
type LoadStockUseCase struct {
	source SheetSource
	rules  domstock.ColumnRules
	log    *logger.Logger
}

// NewLoadStockUseCase construye el caso de uso. rules nil usa los alias por defecto.
func NewLoadStockUseCase(source SheetSource, rules domstock.ColumnRules, log *logger.Logger) *LoadStockUseCase {
	if rules == nil {
		rules = domstock.DefaultColumnRules()
	}
	return &LoadStockUseCase{source: source, rules: rules, log: log}
}

// Load ejecuta un ciclo completo fetch → normalize. Nunca devuelve error: cualquier
// fallo se convierte en tabla vacía más un mensaje descriptivo.
func (uc *LoadStockUseCase) Load(ctx context.Context) LoadResult {
	res := LoadResult{
		RefreshID: uuid.New().String(),
		LoadedAt:  time.Now(),
		Table:     entity.EmptyStockTable(),
	}

	table, err := uc.load(ctx)
	if err != nil {
		res.Message = loadErrorMessage(err)
		uc.log.Warn().Err(err).Str("refresh_id", res.RefreshID).Msg("carga de inventario fallida")
		return res
	}

	res.Table = table
	if table.IsEmpty() {
		res.Message = MsgNoData
	}
	uc.log.Info().
		Str("refresh_id", res.RefreshID).
		Int("rows", len(table.Rows)).
		Int("columns", len(table.Columns)).
		Msg("inventario cargado")
	return res
}

func (uc *LoadStockUseCase) load(ctx context.Context) (*entity.StockTable, error) {
	raw, err := uc.source.FetchTable(ctx)
	if err != nil {
		return nil, err
	}
	return domstock.Normalize(*raw, uc.rules)
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrConfig):
		return MsgInvalidSheetURL
	case errors.Is(err, domain.ErrSchema):
		return MsgStockColumn
	default:
		return MsgLoadErrorPrefix + err.Error()
	}
}
