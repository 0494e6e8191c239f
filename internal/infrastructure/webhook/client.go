// Package webhook implementa el POST JSON hacia el receptor de reposición (p. ej. n8n).
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/stock-portal/internal/application/restock"
	"github.com/jhoicas/stock-portal/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa WebhookPoster.
var _ restock.WebhookPoster = (*Client)(nil)

// DefaultTimeout límite fijo de la llamada al webhook.
const DefaultTimeout = 10 * time.Second

// Client adaptador resty. Sin reintentos: a lo sumo una entrega por invocación.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente. timeout <= 0 usa DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}
}

// PostJSON serializa payload y lo envía. Un código no 2xx no es error; los fallos de
// transporte (timeout, conexión) vuelven envueltos en domain.ErrWebhook.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) (*restock.WebhookResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWebhook, err)
	}
	return &restock.WebhookResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
