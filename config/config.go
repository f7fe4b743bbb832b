package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	appDir         = "swatch"
	configFileName = "config.toml"
	dbFileName     = "palettes.db"
)

// Config is the contents of config.toml. Command-line flags override it.
type Config struct {
	// Formula used when none is given on the command line.
	Formula string       `toml:"formula"`
	Debug   bool         `toml:"debug"`
	Render  RenderConfig `toml:"render"`
	Server  ServerConfig `toml:"server"`
	Store   StoreConfig  `toml:"store"`
}

// RenderConfig sizes SVG and PNG output.
type RenderConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

// StoreConfig locates the saved-palette library. Remote, when set, is the
// base URL of a `swatch serve` instance and takes precedence over Path.
type StoreConfig struct {
	Path   string `toml:"path"`
	Remote string `toml:"remote"`
}

// Addr returns bind:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Bind, s.Port)
}

// Dir returns the swatch config directory ($XDG_CONFIG_HOME/swatch or ~/.config/swatch).
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.ExpandEnv("$HOME/.config")
	}
	return filepath.Join(base, appDir)
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Dir(), configFileName)
}

func DefaultConfig() Config {
	return Config{
		Formula: "random",
		Render:  RenderConfig{Width: 800, Height: 200},
		Server:  ServerConfig{Bind: "127.0.0.1", Port: 7434},
		Store:   StoreConfig{Path: filepath.Join(Dir(), dbFileName)},
	}
}

// Load reads a TOML config from path. A missing file yields DefaultConfig;
// keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
