package config

import (
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("VITALOG_ADDR", "")
	t.Setenv("VITALOG_DB_PATH", "")
	t.Setenv("TZ", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBPath != filepath.Join("data", "vitalog.db") {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Timezone != "UTC" {
		t.Fatalf("expected default timezone UTC, got %q", cfg.Timezone)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("VITALOG_ADDR", ":9090")
	t.Setenv("VITALOG_DB_PATH", "/tmp/other.db")
	t.Setenv("TZ", "Europe/Berlin")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("expected db path /tmp/other.db, got %q", cfg.DBPath)
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Fatalf("expected timezone Europe/Berlin, got %q", cfg.Timezone)
	}
}
