// Package gsheet obtiene el contenido de una hoja de Google Sheets mediante su
// endpoint público de exportación CSV.
package gsheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa SheetSource.
var _ appstock.SheetSource = (*Client)(nil)

const defaultFetchTimeout = 15 * time.Second

// Config origen de la hoja.
type Config struct {
	SpreadsheetURL string
	ExportHost     string
	GID            string
	Timeout        time.Duration
}

// Client descarga la exportación CSV. Un solo intento por llamada, sin reintentos.
type Client struct {
	cfg  Config
	http *resty.Client
}

// NewClient construye el cliente. La URL de la hoja se valida en cada FetchTable,
// así una configuración faltante se reporta como mensaje y no impide arrancar.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultFetchTimeout
	}
	return &Client{
		cfg: cfg,
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "text/csv"),
	}
}

// FetchTable descarga y parsea la hoja. Errores: domain.ErrConfig (URL inválida)
// o domain.ErrFetch (red, HTTP no 2xx, CSV malformado o vacío).
func (c *Client) FetchTable(ctx context.Context) (*entity.RawTable, error) {
	sheetID, err := ExtractSheetID(c.cfg.SpreadsheetURL)
	if err != nil {
		return nil, err
	}
	exportURL := ExportURL(c.cfg.ExportHost, sheetID, c.cfg.GID)

	resp, err := c.http.R().SetContext(ctx).Get(exportURL)
	if err != nil {
		return nil, fmt.Errorf("%w: GET export CSV: %v", domain.ErrFetch, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrFetch, resp.StatusCode())
	}
	return ParseCSV(resp.Body())
}

// ParseCSV interpreta el cuerpo exportado. Quita el BOM UTF-8 si viene y acepta filas
// de distinta longitud (la hoja suele cortar celdas vacías al final).
func ParseCSV(body []byte) (*entity.RawTable, error) {
	r := csv.NewReader(transform.NewReader(bytes.NewReader(body), unicode.BOMOverride(transform.Nop)))
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV vacío", domain.ErrFetch)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer encabezados CSV: %v", domain.ErrFetch, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: leer filas CSV: %v", domain.ErrFetch, err)
	}
	return &entity.RawTable{Headers: headers, Rows: rows}, nil
}
