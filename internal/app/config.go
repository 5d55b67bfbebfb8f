package app

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppPort           int           `envconfig:"PORT" default:"3000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"payables"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"payables"`
	DBName     string `envconfig:"DB_NAME" default:"payables"`
	DBPoolSize int    `envconfig:"DB_POOL_SIZE" default:"10"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"https://hpspeniel.com.br,https://www.hpspeniel.com.br"`
	DevCORS     bool     `envconfig:"DEV_CORS" default:"false"`
}

// Origins added to the allow-list when DevCORS is enabled (Live Server and
// friends).
var devOrigins = []string{
	"http://127.0.0.1:5500",
	"http://localhost:5500",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DBPoolSize <= 0 {
		cfg.DBPoolSize = 10
	}
	return &cfg, nil
}

// Addr returns the listen address derived from AppPort.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.AppPort)
}

// DSN renders the PostgreSQL connection string.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// AllowedOrigins returns the CORS allow-list, extended with local development
// origins when DevCORS is enabled.
func (c *Config) AllowedOrigins() []string {
	origins := append([]string(nil), c.CORSOrigins...)
	if c.DevCORS {
		origins = append(origins, devOrigins...)
	}
	return origins
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
