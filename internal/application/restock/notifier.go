// Package restock dispara el webhook de reposición con los productos marcados.
package restock

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jhoicas/stock-portal/internal/domain"
	"github.com/jhoicas/stock-portal/pkg/logger"
)

// Mensajes devueltos al usuario.
const (
	MsgWebhookNotConfigured = "Webhook URL not configured"
	MsgWebhookTriggered     = "Restock webhook triggered successfully"
	MsgWebhookErrorPrefix   = "Error triggering webhook: "

	// n8n responde 404 cuando el workflow no está activo o el webhook de prueba no está registrado.
	inactiveWorkflowGuidance = "Ensure the workflow with this webhook is 'Activated' in n8n, " +
		"or click 'Execute workflow' in the editor to register the temporary webhook before calling it."
)

// Notifier envía la lista de productos al webhook configurado.
type Notifier struct {
	poster WebhookPoster
	log    *logger.Logger
}

// NewNotifier construye el notificador.
func NewNotifier(poster WebhookPoster, log *logger.Logger) *Notifier {
	return &Notifier{poster: poster, log: log}
}

// TriggerRestock envía {"items": items} al webhook. A lo sumo un intento por llamada;
// nunca devuelve error: el resultado es (éxito, mensaje para el usuario).
func (n *Notifier) TriggerRestock(ctx context.Context, webhookURL string, items []map[string]any) (bool, string) {
	if strings.TrimSpace(webhookURL) == "" {
		return false, MsgWebhookNotConfigured
	}
	if items == nil {
		items = []map[string]any{}
	}

	n.log.Debug().Int("items", len(items)).Msg("webhook de reposición: enviando")
	resp, err := n.poster.PostJSON(ctx, webhookURL, map[string]any{"items": items})
	if err != nil {
		n.log.Error().Err(err).Int("items", len(items)).Msg("webhook de reposición: fallo de transporte")
		return false, MsgWebhookErrorPrefix + transportDetail(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		n.log.Info().Int("status", resp.StatusCode).Int("items", len(items)).Msg("webhook de reposición disparado")
		return true, MsgWebhookTriggered
	}

	hint := extractHint(resp.Body)
	n.log.Warn().Int("status", resp.StatusCode).Str("hint", hint).Msg("webhook de reposición rechazado")

	if resp.StatusCode == 404 {
		return false, fmt.Sprintf("Webhook error %d: %s — %s", resp.StatusCode, hint, inactiveWorkflowGuidance)
	}
	return false, fmt.Sprintf("Webhook error %d: %s", resp.StatusCode, hint)
}

// transportDetail texto del fallo sin el prefijo del sentinel: el mensaje al usuario
// lleva solo la causa (timeout, conexión rechazada).
func transportDetail(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrWebhook.Error()+": ")
}

// extractHint busca un texto legible en el cuerpo: "hint", luego "message";
// si el cuerpo no es un objeto JSON o no los trae, devuelve el texto crudo.
func extractHint(body []byte) string {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		if parsed.IsObject() {
			for _, key := range []string{"hint", "message"} {
				if v := parsed.Get(key); truthy(v) {
					return v.String()
				}
			}
		}
	}
	return string(body)
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.JSON:
		return v.Raw != "{}" && v.Raw != "[]"
	default:
		return v.String() != ""
	}
}
