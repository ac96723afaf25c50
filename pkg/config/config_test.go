package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadAndAddr(t *testing.T) {
	p := writeConfig(t, `
server:
  address: 127.0.0.1
  port: 9090
storage:
  db_path: /tmp/db
refill:
  enabled: true
  cron: "0 * * * *"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
	if cfg.Storage.DBPath != "/tmp/db" {
		t.Fatalf("db path = %q", cfg.Storage.DBPath)
	}
	if !cfg.Refill.Enabled || cfg.Refill.Cron != "0 * * * *" {
		t.Fatalf("refill: %+v", cfg.Refill)
	}
}

func TestAddrDefaults(t *testing.T) {
	var cfg Config
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Fatalf("default addr = %q", cfg.Addr())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SG_ADDR", "10.0.0.1:7070")
	t.Setenv("SG_DB_PATH", "/data/sg")
	t.Setenv("SG_REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("SG_RATE_RPS", "2.5")
	t.Setenv("SG_RATE_BURST", "7")
	t.Setenv("SG_REFILL_ENABLED", "true")
	t.Setenv("SG_LOG_LEVEL", "debug")

	var cfg Config
	if !LoadEnvOverrides(&cfg) {
		t.Fatal("env vars not detected")
	}
	if cfg.Server.Address != "10.0.0.1" || cfg.Server.Port != 7070 {
		t.Fatalf("addr override: %s:%d", cfg.Server.Address, cfg.Server.Port)
	}
	if cfg.Storage.DBPath != "/data/sg" {
		t.Fatalf("db override: %q", cfg.Storage.DBPath)
	}
	if cfg.Redis.URL != "redis://localhost:6379/1" {
		t.Fatalf("redis override: %q", cfg.Redis.URL)
	}
	if cfg.Auth.RateLimit.RPS != 2.5 || cfg.Auth.RateLimit.Burst != 7 {
		t.Fatalf("rate override: %+v", cfg.Auth.RateLimit)
	}
	if !cfg.Refill.Enabled {
		t.Fatal("refill override missing")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level override: %q", cfg.Logging.Level)
	}
}

func TestResolvePrecedence(t *testing.T) {
	p := writeConfig(t, `
server:
  port: 9000
storage:
  db_path: /from/file
`)
	t.Setenv("SG_ADDR", "1.2.3.4:9100")

	// Explicit -addr flag wins over env and file.
	eff := Resolve(":9999", "./.database", map[string]bool{"addr": true}, p)
	if eff.Addr != ":9999" {
		t.Fatalf("flag must win: %q", eff.Addr)
	}
	if eff.DBPath != "/from/file" {
		t.Fatalf("db must come from file: %q", eff.DBPath)
	}

	// Without the flag, env wins over file.
	eff = Resolve(":8080", "./.database", map[string]bool{}, p)
	if eff.Addr != "1.2.3.4:9100" {
		t.Fatalf("env must win over file: %q", eff.Addr)
	}
	if eff.Source == "" {
		t.Fatal("source not recorded")
	}
}
