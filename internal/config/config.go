package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8080"`

	DynamoDB DynamoDB
	Redis    Redis
	SMTP     SMTP

	BookingBaseURL string   `env:"BOOKING_BASE_URL" envDefault:"https://book.clearviewservices.com/estimate"`
	CORSOrigins    []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// DynamoDB holds the AWS settings. Credentials default to "local" so
// DynamoDB Local works out of the box.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable     string `env:"QUOTES_TABLE" envDefault:"quotes"`
}

type Redis struct {
	Addr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

type SMTP struct {
	Host        string        `env:"SMTP_HOST"`
	Port        int           `env:"SMTP_PORT" envDefault:"587"`
	Username    string        `env:"SMTP_USERNAME"`
	Password    string        `env:"SMTP_PASSWORD"`
	FromAddress string        `env:"EMAIL_FROM_ADDRESS" envDefault:"estimates@clearviewservices.com"`
	FromName    string        `env:"EMAIL_FROM_NAME" envDefault:"ClearView Home Services"`
	Mock        bool          `env:"NOTIFIER_MOCK" envDefault:"false"`
	MaxElapsed  time.Duration `env:"NOTIFY_MAX_ELAPSED" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP_PORT %d", cfg.HTTPPort)
	}
	if strings.TrimSpace(cfg.BookingBaseURL) == "" {
		return nil, fmt.Errorf("BOOKING_BASE_URL cannot be empty")
	}
	if !cfg.SMTP.Mock && cfg.SMTP.Host == "" {
		cfg.SMTP.Mock = true
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
