package gsheet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/stock-portal/internal/domain"
)

const (
	// DefaultExportHost host público de Google Sheets.
	DefaultExportHost = "https://docs.google.com"
	// DefaultGID la pestaña 0 suele ser la primera hoja.
	DefaultGID = "0"

	idDelimiter = "/d/"
)

// ExtractSheetID toma el identificador opaco que sigue a "/d/" en la URL de la hoja.
// Devuelve domain.ErrConfig si el patrón no está o el identificador queda vacío.
func ExtractSheetID(spreadsheetURL string) (string, error) {
	spreadsheetURL = strings.TrimSpace(spreadsheetURL)
	if spreadsheetURL == "" {
		return "", fmt.Errorf("%w: SHEET_SPREADSHEET_URL no configurado", domain.ErrConfig)
	}
	_, after, ok := strings.Cut(spreadsheetURL, idDelimiter)
	if !ok {
		return "", fmt.Errorf("%w: la URL no contiene %q", domain.ErrConfig, idDelimiter)
	}
	id, _, _ := strings.Cut(after, "/")
	// Tolerar URLs copiadas con query o fragmento pegados al id.
	if i := strings.IndexAny(id, "?#"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", fmt.Errorf("%w: identificador de hoja vacío", domain.ErrConfig)
	}
	return id, nil
}

// ExportURL construye <host>/spreadsheets/d/<id>/export?format=csv&gid=<gid>.
func ExportURL(host, sheetID, gid string) string {
	if host == "" {
		host = DefaultExportHost
	}
	if gid == "" {
		gid = DefaultGID
	}
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		strings.TrimRight(host, "/"), url.PathEscape(sheetID), url.QueryEscape(gid))
}
