// Package config loads codia's optional TOML configuration file.
//
// All settings have working defaults; the file only overrides them.
// Flags given on the command line win over the file.
//
//	[render]
//	style  = "simple"
//	format = "svg"
//	scale  = 60.0
//
//	[server]
//	listen    = ":8080"
//	cache     = "file"        # file, redis, or none
//	cache_dir = "~/.cache/codia"
//	redis     = "localhost:6379"
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full configuration tree.
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig holds rendering defaults.
type RenderConfig struct {
	Style  string  `toml:"style"`
	Format string  `toml:"format"`
	Scale  float64 `toml:"scale"`
}

// ServerConfig holds HTTP front end settings.
type ServerConfig struct {
	Listen   string `toml:"listen"`
	Cache    string `toml:"cache"`
	CacheDir string `toml:"cache_dir"`
	Redis    string `toml:"redis"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Style:  "simple",
			Format: "svg",
			Scale:  60.0,
		},
		Server: ServerConfig{
			Listen:   ":8080",
			Cache:    "file",
			CacheDir: defaultCacheDir(),
			Redis:    "localhost:6379",
		},
	}
}

// Load reads the configuration file at path, layered over the defaults.
// An empty path loads the default location (~/.config/codia/config.toml)
// if it exists; a missing default file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "codia", "config.toml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".codia-cache"
	}
	return filepath.Join(dir, "codia")
}
