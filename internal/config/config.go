package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const developmentSecretKey = "change_me_in_production"

var ErrSecretKeyRequired = errors.New("SECRET_KEY is required outside development")

type Config struct {
	// Server
	Port         string
	AppEnv       string
	CookieSecure bool

	// Security
	SecretKey string

	// Storage
	DBPath string

	// Localization
	Location        *time.Location
	DefaultLanguage string

	// Assets
	TemplatesDir string
	LocalesDir   string
	StaticDir    string

	// Observability
	LogLevel  string
	LogFormat string
	SentryDSN string
}

// Load reads the environment, after merging an optional .env file that never
// overrides variables already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		AppEnv:       strings.ToLower(getEnv("APP_ENV", "development")),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),

		SecretKey: getEnv("SECRET_KEY", ""),

		DBPath: getEnv("DB_PATH", filepath.Join("data", "prospecta.db")),

		Location:        loadLocation(getEnv("TZ", "UTC")),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "fr"),

		TemplatesDir: getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates")),
		LocalesDir:   getEnv("LOCALES_DIR", filepath.Join("internal", "i18n", "locales")),
		StaticDir:    getEnv("STATIC_DIR", filepath.Join("web", "static")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		SentryDSN: getEnv("SENTRY_DSN", ""),
	}

	if cfg.SecretKey == "" {
		if !cfg.IsDevelopment() {
			return nil, ErrSecretKeyRequired
		}
		slog.Warn("SECRET_KEY not set, using the development fallback")
		cfg.SecretKey = developmentSecretKey
	}

	return cfg, nil
}

func (cfg *Config) IsDevelopment() bool {
	return cfg.AppEnv == "" || cfg.AppEnv == "development" || cfg.AppEnv == "dev"
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
