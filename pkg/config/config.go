package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Sheet   SheetConfig
	Webhook WebhookConfig
	Stock   StockConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetConfig origen de datos: hoja de Google Sheets exportada como CSV.
type SheetConfig struct {
	SpreadsheetURL string // URL completa de la hoja (se extrae el id después de /d/)
	ExportHost     string
	GID            string
	FetchTimeout   time.Duration
}

// WebhookConfig receptor del disparo de reposición (n8n u otro).
type WebhookConfig struct {
	URL     string // vacío = no configurado; el disparo responde con mensaje, no falla al arrancar
	Timeout time.Duration
}

// StockConfig reglas del inventario.
type StockConfig struct {
	CriticalThreshold int
	ExtraAliases      string // "Available Stock=units|count;SKU=code"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SHEET_SPREADSHEET_URL, WEBHOOK_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "stock-portal"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheet: SheetConfig{
			SpreadsheetURL: getString(v, "SHEET_SPREADSHEET_URL", ""),
			ExportHost:     getString(v, "SHEET_EXPORT_HOST", "https://docs.google.com"),
			GID:            getString(v, "SHEET_GID", "0"),
			FetchTimeout:   time.Duration(getInt(v, "SHEET_FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Webhook: WebhookConfig{
			URL:     getString(v, "WEBHOOK_URL", ""),
			Timeout: time.Duration(getInt(v, "WEBHOOK_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Stock: StockConfig{
			CriticalThreshold: getInt(v, "STOCK_CRITICAL_THRESHOLD", 10),
			ExtraAliases:      getString(v, "STOCK_EXTRA_ALIASES", ""),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Sheet.FetchTimeout <= 0 {
		return nil, fmt.Errorf("config: SHEET_FETCH_TIMEOUT_SECONDS debe ser positivo")
	}
	if cfg.Webhook.Timeout <= 0 {
		return nil, fmt.Errorf("config: WEBHOOK_TIMEOUT_SECONDS debe ser positivo")
	}
	if cfg.Stock.CriticalThreshold < 0 {
		return nil, fmt.Errorf("config: STOCK_CRITICAL_THRESHOLD no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
