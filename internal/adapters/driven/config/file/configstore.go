// Package file provides the TOML configuration for featselect.
// Configuration lives in ~/.featselect/config.toml by default; flags
// override config values, config values override built-in defaults.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultSourcePath = "featurelist.pdf"
	DefaultCachePath  = "featurelist.json"
	DefaultProvider   = "openai"
)

// EmbeddingConfig selects and tunes the embedding provider.
type EmbeddingConfig struct {
	// Provider is "openai" or "ollama".
	Provider string `toml:"provider"`

	// Model overrides the provider's default model.
	Model string `toml:"model,omitempty"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url,omitempty"`
}

// Config is the persisted featselect configuration.
type Config struct {
	// Source is the path of the feature dictionary document.
	Source string `toml:"source"`

	// Cache is the path of the JSON record cache.
	Cache string `toml:"cache"`

	// Embedding selects the embedding provider.
	Embedding EmbeddingConfig `toml:"embedding"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Source: DefaultSourcePath,
		Cache:  DefaultCachePath,
		Embedding: EmbeddingConfig{
			Provider: DefaultProvider,
		},
	}
}

// DefaultPath returns ~/.featselect/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".featselect", "config.toml"), nil
}

// Load reads the configuration at path, applying defaults for any
// field left unset. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Source == "" {
		cfg.Source = DefaultSourcePath
	}
	if cfg.Cache == "" {
		cfg.Cache = DefaultCachePath
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = DefaultProvider
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory with
// owner-only permissions if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
