package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/trellisgraph/trellis/pkg/store"
)

// Config holds CLI defaults loaded from the TOML config file. Flags override
// anything set here.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds render command defaults.
type RenderConfig struct {
	Format string `toml:"format"` // "svg" or "png"
}

// CacheConfig holds artifact cache settings.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// ServerConfig holds serve command defaults.
type ServerConfig struct {
	Addr    string            `toml:"addr"`
	Store   string            `toml:"store"` // memory, file, redis, mongo
	FileDir string            `toml:"file_dir"`
	Redis   store.RedisConfig `toml:"redis"`
	Mongo   store.MongoConfig `toml:"mongo"`
}

func defaultConfig() Config {
	return Config{
		Render: RenderConfig{Format: "svg"},
		Server: ServerConfig{
			Addr:  ":8080",
			Store: "memory",
			Redis: store.RedisConfig{Addr: "localhost:6379"},
			Mongo: store.MongoConfig{URI: "mongodb://localhost:27017"},
		},
	}
}

// defaultConfigPath returns ~/.config/trellis/config.toml, or "" if the home
// directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "trellis", "config.toml")
}

// defaultCacheDir returns ~/.cache/trellis, or "" if the home directory
// cannot be determined.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", "trellis")
}

// loadConfig reads the config file at path, falling back to the default
// location when path is empty. A missing file yields the defaults; a
// malformed file is an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
