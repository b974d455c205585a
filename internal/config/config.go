// Package config provides configuration loading and structs for the
// word-vector-sim server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Vectors VectorsConfig `yaml:"vectors"`
	Search  SearchConfig  `yaml:"search"`
}

// ServerConfig holds HTTP server settings. PrettyJSON switches API responses
// to indented JSON; it is a boundary formatting concern only.
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	PrettyJSON bool   `yaml:"pretty_json"`
}

// VectorsConfig holds the vector file location and bootstrap settings.
type VectorsConfig struct {
	// Path is the whitespace-delimited word vector file.
	Path string `yaml:"path"`
	// DownloadURL is the zip archive fetched when Path does not exist.
	DownloadURL string `yaml:"download_url"`
	// ArchiveMember is the file extracted from the downloaded archive.
	ArchiveMember string `yaml:"archive_member"`
	// CachePath is the SQLite vector cache; empty disables caching.
	CachePath string `yaml:"cache_path"`
}

// SearchConfig holds query defaults and missing-word reporting settings.
type SearchConfig struct {
	DefaultTopN        int   `yaml:"default_top_n"`
	MaxTopN            int   `yaml:"max_top_n"`
	MaxMissingReported int   `yaml:"max_missing_reported"`
	Suggestions        *bool `yaml:"suggestions"`
	SuggestMaxDistance int   `yaml:"suggest_max_distance"`
	MaxSuggestions     int   `yaml:"max_suggestions"`
}

// SuggestionsOrDefault returns whether did-you-mean suggestions are enabled;
// defaults to true when unset.
func (s *SearchConfig) SuggestionsOrDefault() bool {
	if s.Suggestions != nil {
		return *s.Suggestions
	}
	return true
}

// Load reads and parses the config file at path, applies defaults and
// environment overrides, and expands paths. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	ApplyEnv(&cfg)

	configDir := filepath.Dir(path)
	cfg.Vectors.Path = expandPath(cfg.Vectors.Path, configDir)
	cfg.Vectors.CachePath = expandPath(cfg.Vectors.CachePath, configDir)

	return &cfg, nil
}

// Default returns a config built from defaults and environment overrides
// alone, for running without a config file.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	ApplyEnv(&cfg)
	if home, err := os.UserHomeDir(); err == nil {
		cfg.Vectors.Path = expandPath(cfg.Vectors.Path, home)
		cfg.Vectors.CachePath = expandPath(cfg.Vectors.CachePath, home)
	}
	return &cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
