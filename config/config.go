package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime settings read from the environment
type Config struct {
	Env  string
	Port string

	LogLevel  string
	LogFormat string

	DatabaseURL     string
	CatalogSnapshot string

	ChromePath   string
	SheetTimeout time.Duration

	GenerationConcurrency int
}

// Load reads the configuration from environment variables, applying defaults
func Load() Config {
	cfg := Config{
		Env:                   strings.ToLower(getEnv("ENV", "development")),
		Port:                  strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:             strings.ToLower(getEnv("LOG_FORMAT", "json")),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		CatalogSnapshot:       getEnv("CATALOG_SNAPSHOT", ""),
		ChromePath:            getEnv("CHROME_PATH", ""),
		SheetTimeout:          time.Duration(getEnvInt("SHEET_TIMEOUT_SECONDS", 30)) * time.Second,
		GenerationConcurrency: getEnvInt("GENERATION_CONCURRENCY", 4),
	}

	if cfg.GenerationConcurrency < 1 {
		cfg.GenerationConcurrency = 1
	}
	if cfg.SheetTimeout <= 0 {
		cfg.SheetTimeout = 30 * time.Second
	}
	return cfg
}

// IsProduction reports whether the service runs in production
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDatabase reports whether catalogs are read from PostgreSQL.
// DB_HOST alone is enough, db.InitDB builds the connection string from DB_* variables.
func (c Config) UsesDatabase() bool {
	return c.DatabaseURL != "" || os.Getenv("DB_HOST") != ""
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
