package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DataPath    string `koanf:"data_path"`    // override for the SQLite store location
	SeedLibrary *bool  `koanf:"seed_library"` // seed the starter catalog on first run (default: true)
	PreviewURL  string `koanf:"preview_url"`  // stream used for tracks resolved from web search

	// Generative-language API (enables the AI DJ panel when configured)
	GenAI GenAIConfig `koanf:"genai"`
}

// GenAIConfig holds the recommendation/search service configuration.
type GenAIConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`    // default: "gemini-3-flash-preview"
	BaseURL string `koanf:"base_url"` // default: the hosted generativelanguage endpoint
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DataPath != "" {
		cfg.DataPath = expandPath(cfg.DataPath)
	}
	cfg.GenAI.BaseURL = strings.TrimSuffix(cfg.GenAI.BaseURL, "/")

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/aura/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "aura", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasGenAIConfig returns true if the AI DJ service is configured.
func (c *Config) HasGenAIConfig() bool {
	return c.GenAI.APIKey != ""
}

// ShouldSeedLibrary returns the first-run seeding toggle with its default.
func (c *Config) ShouldSeedLibrary() bool {
	if c.SeedLibrary == nil {
		return true
	}
	return *c.SeedLibrary
}

// GetGenAIConfig returns the generative API configuration with defaults applied.
func (c *Config) GetGenAIConfig() GenAIConfig {
	cfg := c.GenAI
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	return cfg
}

// GetPreviewURL returns the preview stream with its default.
func (c *Config) GetPreviewURL() string {
	if c.PreviewURL == "" {
		return "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-8.mp3"
	}
	return c.PreviewURL
}
