package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	RabbitMQ  RabbitMQConfig  `envconfig:"RABBITMQ"`
	Auth      AuthConfig      `envconfig:"AUTH"`
	Internal  InternalConfig  `envconfig:"INTERNAL"`
	Forecast  ForecastConfig  `envconfig:"FORECAST"`
	Catalog   CatalogConfig   `envconfig:"CATALOG"`
	Reconcile ReconcileConfig `envconfig:"RECONCILE"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"3306"`
	User            string        `envconfig:"USER" default:"root"`
	Password        string        `envconfig:"PASSWORD"`
	Name            string        `envconfig:"NAME" default:"restock"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"true"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5672"`
	User     string `envconfig:"USER" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
}

type InternalConfig struct {
	APIKey string `envconfig:"API_KEY"`
}

type ForecastConfig struct {
	BaseURL string        `envconfig:"BASE_URL" default:"http://localhost:8090"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

type CatalogConfig struct {
	VendorCacheTTL        time.Duration `envconfig:"VENDOR_CACHE_TTL" default:"5m"`
	EnrichmentConcurrency int           `envconfig:"ENRICHMENT_CONCURRENCY" default:"8"`
}

type ReconcileConfig struct {
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// GetDSN returns the MySQL DSN. parseTime is required for the nullable
// timestamp columns of purchase_order.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
