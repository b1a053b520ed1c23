package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnvVars(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_PASSWORD", "test-password")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected default DB port 5432, got %d", cfg.Database.Port)
	}
	if cfg.JWT.Secret != "test-secret" {
		t.Errorf("expected JWT secret from env, got %s", cfg.JWT.Secret)
	}
	if cfg.RateLimit.Limit != 60 {
		t.Errorf("expected default rate limit 60, got %d", cfg.RateLimit.Limit)
	}
	if cfg.RateLimit.Window != 20*time.Second {
		t.Errorf("expected default rate window 20s, got %s", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.Scope != "global" {
		t.Errorf("expected default rate scope global, got %s", cfg.RateLimit.Scope)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "test-password")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET, got nil")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("expected JWT_SECRET error, got: %v", err)
	}
}

func TestLoad_InvalidDBPort(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("DB_PORT", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DB_PORT, got nil")
	}
}

func TestLoad_RateLimitOverrides(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("RATE_LIMIT", "100")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("RATE_LIMIT_SCOPE", "ip")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.RateLimit.Limit != 100 {
		t.Errorf("expected rate limit 100, got %d", cfg.RateLimit.Limit)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("expected rate window 1m, got %s", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.Scope != "ip" {
		t.Errorf("expected rate scope ip, got %s", cfg.RateLimit.Scope)
	}
}

func TestLoad_InvalidRateLimitScope(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("RATE_LIMIT_SCOPE", "user")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid RATE_LIMIT_SCOPE, got nil")
	}
	if !strings.Contains(err.Error(), "RATE_LIMIT_SCOPE") {
		t.Errorf("expected RATE_LIMIT_SCOPE error, got: %v", err)
	}
}

func TestLoad_InvalidRateLimitWindow(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("RATE_LIMIT_WINDOW", "twenty seconds")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid RATE_LIMIT_WINDOW, got nil")
	}
}

func TestLoad_ZeroRateLimit(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("RATE_LIMIT", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for zero RATE_LIMIT, got nil")
	}
}

func TestLoad_TLSValidation(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "")
	t.Setenv("TLS_KEY_PATH", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for TLS enabled without cert path, got nil")
	}
	if !strings.Contains(err.Error(), "TLS_CERT_PATH") {
		t.Errorf("expected TLS_CERT_PATH error, got: %v", err)
	}

	t.Setenv("TLS_CERT_PATH", "/tmp/cert.pem")
	_, err = Load()
	if err == nil {
		t.Fatal("expected error for TLS enabled without key path, got nil")
	}
	if !strings.Contains(err.Error(), "TLS_KEY_PATH") {
		t.Errorf("expected TLS_KEY_PATH error, got: %v", err)
	}
}

func TestLoad_TLSComplete(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "/tmp/cert.pem")
	t.Setenv("TLS_KEY_PATH", "/tmp/key.pem")
	t.Setenv("TLS_REDIRECT_HTTP", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if !cfg.TLS.Enabled {
		t.Error("expected TLS to be enabled")
	}
	if !cfg.TLS.RedirectHTTP {
		t.Error("expected HTTP redirect to be enabled")
	}
}

func TestLoad_AllowedHosts(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("ALLOWED_HOSTS", "example.com, app.example.com ,localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := []string{"example.com", "app.example.com", "localhost:3000"}
	if len(cfg.Server.AllowedHosts) != len(want) {
		t.Fatalf("expected %d allowed hosts, got %d", len(want), len(cfg.Server.AllowedHosts))
	}
	for i, host := range want {
		if cfg.Server.AllowedHosts[i] != host {
			t.Errorf("allowed host %d: expected %s, got %s", i, host, cfg.Server.AllowedHosts[i])
		}
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"", true, true},
		{"garbage", true, true},
	}

	for _, tt := range tests {
		t.Setenv("TEST_BOOL_VAR", tt.value)
		if got := getBoolEnv("TEST_BOOL_VAR", tt.fallback); got != tt.want {
			t.Errorf("getBoolEnv(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}
