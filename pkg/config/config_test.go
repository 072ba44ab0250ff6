package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Provider.BaseURL != "https://query1.finance.yahoo.com" {
		t.Fatalf("base url = %q", cfg.Provider.BaseURL)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Analysis.RSIPeriod != 14 || cfg.Analysis.BBStdDev != 2 {
		t.Fatalf("analysis defaults = %+v", cfg.Analysis)
	}
}

func TestLoadRejectsMissingEnvironment(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted config without environment")
	}
}

func TestLoadRejectsBadWindow(t *testing.T) {
	path := writeConfig(t, "environment: test\nanalysis:\n  sma_window: 1\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted sma_window below 2")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	t.Setenv("PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q", cfg.Logging.Level)
	}
	if !cfg.Cache.Redis.Enabled || cfg.Cache.Redis.Addr != "redis:6379" {
		t.Fatalf("redis = %+v", cfg.Cache.Redis)
	}
}
