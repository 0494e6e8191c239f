package restock

import "context"

// WebhookResponse respuesta cruda del receptor del webhook.
type WebhookResponse struct {
	StatusCode int
	Body       []byte
}

// WebhookPoster puerto de salida: un único POST JSON, sin reintentos.
// Un error significa fallo de transporte (DNS, conexión, timeout); los códigos
// HTTP no 2xx llegan como respuesta normal.
type WebhookPoster interface {
	PostJSON(ctx context.Context, url string, payload any) (*WebhookResponse, error)
}
