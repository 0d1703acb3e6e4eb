// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats empty the same as unset, so setting "" is enough.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "AI_MODEL",
		"NOMINATIM_BASE_URL", "ALLOWED_ORIGINS",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.DBUser != "contentstudio" {
		t.Errorf("DBUser = %q, want %q", cfg.DBUser, "contentstudio")
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("OpenRouterBaseURL = %q, want %q", cfg.OpenRouterBaseURL, "https://openrouter.ai/api/v1")
	}
	if cfg.AIModel != "google/gemini-flash-3.0-preview" {
		t.Errorf("AIModel = %q, want %q", cfg.AIModel, "google/gemini-flash-3.0-preview")
	}
	if cfg.NominatimBaseURL != "https://nominatim.openstreetmap.org" {
		t.Errorf("NominatimBaseURL = %q, want %q", cfg.NominatimBaseURL, "https://nominatim.openstreetmap.org")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.OpenRouterKey != "" {
		t.Errorf("OpenRouterKey = %q, want empty", cfg.OpenRouterKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("AI_MODEL", "anthropic/claude-sonnet")
	t.Setenv("NOMINATIM_BASE_URL", "http://localhost:7070")
	t.Setenv("ALLOWED_ORIGINS", "https://studio.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.OpenRouterKey != "sk-or-test" {
		t.Errorf("OpenRouterKey = %q, want %q", cfg.OpenRouterKey, "sk-or-test")
	}
	if cfg.AIModel != "anthropic/claude-sonnet" {
		t.Errorf("AIModel = %q, want %q", cfg.AIModel, "anthropic/claude-sonnet")
	}
	want := []string{"https://studio.example.com", "https://admin.example.com"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestLoad_ProductionRequiresDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() in production with default password: expected error, got nil")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true in production")
	}
}

func TestDSNAndAddr(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_USER", "studio")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_DB", "studio")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8081")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	wantDSN := "postgres://studio:pw@db:5432/studio?sslmode=disable"
	if cfg.DSN() != wantDSN {
		t.Errorf("DSN() = %q, want %q", cfg.DSN(), wantDSN)
	}
	if cfg.Addr() != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "127.0.0.1:8081")
	}
}
