package config

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "SECRET_KEY", "DB_PATH", "TZ", "DEFAULT_LANGUAGE", "COOKIE_SECURE", "APP_ENV", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DefaultLanguage != "fr" {
		t.Fatalf("expected default language fr, got %q", cfg.DefaultLanguage)
	}
	if cfg.DBPath != "data/prospecta.db" {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("expected UTC location, got %s", cfg.Location)
	}
	if cfg.SecretKey != developmentSecretKey {
		t.Fatal("expected development secret fallback")
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies by default")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TZ", "Africa/Dakar")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.SecretKey != "s3cret" || !cfg.CookieSecure {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if cfg.Location.String() != "Africa/Dakar" {
		t.Fatalf("unexpected location %s", cfg.Location)
	}
	if cfg.IsDevelopment() {
		t.Fatal("expected production environment")
	}
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SECRET_KEY", "")
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); !errors.Is(err, ErrSecretKeyRequired) {
		t.Fatalf("expected ErrSecretKeyRequired, got %v", err)
	}
}
