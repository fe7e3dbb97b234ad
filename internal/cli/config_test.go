package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadConfig on missing file error: %v", err)
	}

	want := defaultConfig()
	if cfg.Render.Format != want.Render.Format {
		t.Errorf("Render.Format = %q, want %q", cfg.Render.Format, want.Render.Format)
	}
	if cfg.Server.Addr != want.Server.Addr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, want.Server.Addr)
	}
	if cfg.Server.Store != want.Server.Store {
		t.Errorf("Server.Store = %q, want %q", cfg.Server.Store, want.Server.Store)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[render]
format = "png"

[cache]
disabled = true

[server]
addr = ":9090"
store = "redis"

[server.redis]
addr = "cache.internal:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	if cfg.Render.Format != "png" {
		t.Errorf("Render.Format = %q, want %q", cfg.Render.Format, "png")
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled should be true")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Server.Store != "redis" {
		t.Errorf("Server.Store = %q, want %q", cfg.Server.Store, "redis")
	}
	if cfg.Server.Redis.Addr != "cache.internal:6379" {
		t.Errorf("Server.Redis.Addr = %q, want %q", cfg.Server.Redis.Addr, "cache.internal:6379")
	}
	if cfg.Server.Redis.DB != 2 {
		t.Errorf("Server.Redis.DB = %d, want 2", cfg.Server.Redis.DB)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig on malformed file should fail")
	}
}
