package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT"        envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"marketplace"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET,required"`
	JWTIssuer string `env:"JWT_ISSUER"          envDefault:"marketplace"`

	// An empty RedisAddr disables the journey cache.
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB"          envDefault:"0"`
	JourneyCacheTTL time.Duration `env:"JOURNEY_CACHE_TTL" envDefault:"5m"`

	ReconciliationSchedule string `env:"LEDGER_RECONCILIATION_SCHEDULE" envDefault:"0 * * * * *"`

	// An empty OTELEndpoint disables tracing.
	OTELEndpoint string `env:"OTEL_EXPORTER_ENDPOINT"`
}

// LoadConfig reads the given dotenv files, skipping missing ones, and then
// parses the environment. Variables already set win over dotenv values.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JourneyCacheTTL <= 0 {
		return Config{}, fmt.Errorf("JOURNEY_CACHE_TTL must be positive, got %s", cfg.JourneyCacheTTL)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// HTTPAddr is the listen address of the web server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.HTTPPort)
}
