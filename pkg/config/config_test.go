package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.DB.IsSQLite() {
		t.Fatalf("expected sqlite driver by default, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN != "fashion_sales.db" {
		t.Fatalf("unexpected default DSN: %q", cfg.DB.DSN)
	}
	if cfg.App.Port != "5000" {
		t.Fatalf("unexpected default port: %q", cfg.App.Port)
	}
	if cfg.JWT.ExpirationMinutes != 1440 {
		t.Fatalf("unexpected default JWT expiry: %d", cfg.JWT.ExpirationMinutes)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("FASHIONSALES_DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected unsupported driver to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FASHIONSALES_JWT_SECRET", "secret")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
