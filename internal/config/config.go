package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Name     string `env:"APP_NAME" envDefault:"portfolio-inbox"`
		Env      string `env:"APP_ENV" envDefault:"development"`
		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
		LogFile  string `env:"LOG_FILE"`
	}

	API struct {
		Host string `env:"API_HOST" envDefault:"0.0.0.0"`
		Port string `env:"API_PORT" envDefault:"8080"`
		// CORSAllowedOrigins lists the frontend origins allowed to call the API.
		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`
		// RateLimitSubmit is a ulule/limiter formatted rate, e.g. "5-M".
		RateLimitSubmit string `env:"RATE_LIMIT_SUBMIT" envDefault:"5-M"`
		// TrustProxy takes the client address from X-Real-IP/X-Forwarded-For.
		// Enable only when a reverse proxy sets those headers.
		TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
	}

	DB struct {
		// Driver is "postgres" or "memory".
		Driver      string `env:"DB_DRIVER" envDefault:"postgres"`
		Host        string `env:"DB_HOST" envDefault:"db"`
		Port        int    `env:"DB_PORT" envDefault:"5432"`
		User        string `env:"DB_USER" envDefault:"root"`
		Password    string `env:"DB_PASSWORD" envDefault:"123456"`
		Name        string `env:"DB_NAME" envDefault:"db_portfolio"`
		SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Redis struct {
		// Addr may be empty to run without a cache.
		Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
		Password string        `env:"REDIS_PASSWORD"`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		StatsTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`
	}

	Admin struct {
		Password     string `env:"ADMIN_PASSWORD"`
		PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	}

	Notify struct {
		// Driver is "smtp", "webhook" or "none".
		Driver       string        `env:"NOTIFY_DRIVER" envDefault:"smtp"`
		SMTPAddr     string        `env:"SMTP_ADDR" envDefault:"smtp.gmail.com:587"`
		SMTPUser     string        `env:"SMTP_USER"`
		SMTPPassword string        `env:"SMTP_PASSWORD"`
		From         string        `env:"SMTP_FROM"`
		WebhookURL   string        `env:"NOTIFY_WEBHOOK_URL"`
		WebhookKey   string        `env:"NOTIFY_WEBHOOK_KEY"`
		Timeout      time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
		ReplySubject string        `env:"REPLY_SUBJECT" envDefault:"Re: Your message"`
	}

	Journal struct {
		Path string `env:"JOURNAL_PATH" envDefault:"./data/journal/submissions.jsonl"`
	}

	Reconcile struct {
		Enabled      bool          `env:"RECONCILE_ENABLED" envDefault:"true"`
		Interval     time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1m"`
		BatchTimeout time.Duration `env:"RECONCILE_BATCH_TIMEOUT" envDefault:"30s"`
	}
}

// New loads .env (if present) and parses the environment into a Config.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field rules that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		errs = append(errs, errors.New("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required"))
	}

	switch c.DB.Driver {
	case "postgres", "memory":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be 'postgres' or 'memory', got %q", c.DB.Driver))
	}

	switch c.Notify.Driver {
	case "smtp", "webhook", "none":
	default:
		errs = append(errs, fmt.Errorf("NOTIFY_DRIVER must be 'smtp', 'webhook' or 'none', got %q", c.Notify.Driver))
	}

	if c.Notify.Driver == "webhook" && c.Notify.WebhookURL == "" {
		errs = append(errs, errors.New("NOTIFY_WEBHOOK_URL is required when NOTIFY_DRIVER is 'webhook'"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.App.Env, "development")
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.API.Host, c.API.Port)
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}

// SenderAddress is the From address used for reply emails.
func (c *Config) SenderAddress() string {
	if c.Notify.From != "" {
		return c.Notify.From
	}
	return c.Notify.SMTPUser
}
