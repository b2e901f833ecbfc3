package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers restoration; unset so envDefault applies.
	for _, key := range []string{"PORT", "LOG_LEVEL", "READ_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %v", cfg.ReadTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected shutdown timeout 10s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WRITE_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("expected write timeout 30s, got %v", cfg.WriteTimeout)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
	if err := os.WriteFile(".env", []byte("PORT=7070\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected port 7070 from .env, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug from .env, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Port: 8080}
	if got := cfg.Addr(); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}
}
