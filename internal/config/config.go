package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds service configuration.
type Config struct {
	ServerAddr     string
	DatabaseURL    string
	CompanyID      string
	AllowedOrigins []string

	AMQPURL              string
	LedgerExchange       string
	LedgerQueue          string
	NotificationExchange string

	RedisURL  string
	DedupeTTL time.Duration

	DocumentsURL string
	SignerURL    string

	SweepSchedule             string
	PendingTimeout            time.Duration
	NotificationRetryInterval time.Duration
	SSEHeartbeat              time.Duration

	LogLevel string
}

var defaults = map[string]interface{}{
	"SERVER_ADDR":                 "0.0.0.0:8080",
	"POSTGRES_USER":               "presentation_hub",
	"POSTGRES_PASSWORD":           "presentation_hub_pass",
	"POSTGRES_DB":                 "presentation_hub",
	"POSTGRES_HOST":               "localhost",
	"POSTGRES_PORT":               "5432",
	"POSTGRES_SSLMODE":            "disable",
	"CORS_ALLOWED_ORIGINS":        "http://*,https://*",
	"LEDGER_EXCHANGE":             "blockchain-events",
	"LEDGER_QUEUE":                "trade-finance.lc-presentation",
	"NOTIFICATION_EXCHANGE":       "notifications",
	"DEDUPE_TTL":                  "168h",
	"SWEEP_SCHEDULE":              "@every 5m",
	"PENDING_TIMEOUT":             "30m",
	"NOTIFICATION_RETRY_INTERVAL": "1m",
	"SSE_HEARTBEAT":               "25s",
	"LOG_LEVEL":                   "info",
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	for _, key := range []string{"DATABASE_URL", "COMPANY_STATIC_ID", "AMQP_URL", "REDIS_URL", "DOCUMENTS_URL", "SIGNER_URL"} {
		_ = v.BindEnv(key)
	}

	dsn := v.GetString("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			v.GetString("POSTGRES_USER"),
			v.GetString("POSTGRES_PASSWORD"),
			v.GetString("POSTGRES_HOST"),
			v.GetString("POSTGRES_PORT"),
			v.GetString("POSTGRES_DB"),
			v.GetString("POSTGRES_SSLMODE"),
		)
	}

	cfg := &Config{
		ServerAddr:                v.GetString("SERVER_ADDR"),
		DatabaseURL:               dsn,
		CompanyID:                 strings.TrimSpace(v.GetString("COMPANY_STATIC_ID")),
		AllowedOrigins:            splitCSV(v.GetString("CORS_ALLOWED_ORIGINS")),
		AMQPURL:                   v.GetString("AMQP_URL"),
		LedgerExchange:            v.GetString("LEDGER_EXCHANGE"),
		LedgerQueue:               v.GetString("LEDGER_QUEUE"),
		NotificationExchange:      v.GetString("NOTIFICATION_EXCHANGE"),
		RedisURL:                  v.GetString("REDIS_URL"),
		DedupeTTL:                 v.GetDuration("DEDUPE_TTL"),
		DocumentsURL:              v.GetString("DOCUMENTS_URL"),
		SignerURL:                 v.GetString("SIGNER_URL"),
		SweepSchedule:             v.GetString("SWEEP_SCHEDULE"),
		PendingTimeout:            v.GetDuration("PENDING_TIMEOUT"),
		NotificationRetryInterval: v.GetDuration("NOTIFICATION_RETRY_INTERVAL"),
		SSEHeartbeat:              v.GetDuration("SSE_HEARTBEAT"),
		LogLevel:                  v.GetString("LOG_LEVEL"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.CompanyID == "" {
		return errors.New("COMPANY_STATIC_ID is required")
	}
	if c.PendingTimeout <= 0 {
		return errors.New("PENDING_TIMEOUT must be positive")
	}
	return nil
}

func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
