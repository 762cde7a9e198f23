package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-bank"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`
	MetricsNamespace        string        `env:"METRICS_NAMESPACE" envDefault:"trivia"`

	Postgres Postgres
	Redis    Redis
	Quiz     Quiz
	Import   Import
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// Redis configures the category cache. An empty Addr disables it.
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool { return r.Addr != "" }

// Quiz groups question bank defaults.
type Quiz struct {
	PageSize         int           `env:"QUESTIONS_PER_PAGE" envDefault:"10"`
	CategoryCacheTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m"`
}

// Import configures the background question importer. A zero Interval disables it.
type Import struct {
	Source       string        `env:"IMPORT_SOURCE" envDefault:"opentdb"`
	Interval     time.Duration `env:"IMPORT_INTERVAL" envDefault:"0s"`
	BatchSize    int           `env:"IMPORT_BATCH_SIZE" envDefault:"10"`
	Difficulty   string        `env:"IMPORT_DIFFICULTY" envDefault:""`
	Timeout      time.Duration `env:"IMPORT_TIMEOUT" envDefault:"10s"`
	BaseURL      string        `env:"IMPORT_BASE_URL" envDefault:""`
	TriviaAPIKey string        `env:"TRIVIA_API_KEY" envDefault:""`

	GeneratorURL      string `env:"GENERATOR_URL" envDefault:""`
	GeneratorKey      string `env:"GENERATOR_API_KEY" envDefault:""`
	GeneratorCategory string `env:"GENERATOR_CATEGORY" envDefault:"General Knowledge"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization,X-Request-ID"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Quiz.PageSize <= 0 {
		return nil, fmt.Errorf("parse config: QUESTIONS_PER_PAGE must be positive, got %d", cfg.Quiz.PageSize)
	}
	return cfg, nil
}

// DSN renders the keyword/value connection string pgx and goose accept.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}
