// Package config provides configuration loading and structs for the canond server.
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
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Extract  ExtractConfig  `yaml:"extract"`
	Classify ClassifyConfig `yaml:"classify"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CacheConfig holds answer-cache store settings.
type CacheConfig struct {
	DatabasePath string `yaml:"database_path"`
	TTLSeconds   int    `yaml:"ttl_seconds"`
}

// ExtractConfig holds option-extraction validation limits. The label ratio
// is the tolerant fraction of enumeration markers that must be valid A-E
// letters; it lives in config rather than a constant because the value is a
// heuristic for surviving OCR noise, not a load-bearing rule.
type ExtractConfig struct {
	MinOptions         int     `yaml:"min_options"`
	MaxOptions         int     `yaml:"max_options"`
	MaxOptionLength    int     `yaml:"max_option_length"`
	MinValidLabelRatio float64 `yaml:"min_valid_label_ratio"`
}

// ClassifyConfig holds question-classifier settings.
type ClassifyConfig struct {
	ShortAnswerMaxLen int `yaml:"short_answer_max_len"`
}

// Load reads and parses the config file at path, expands paths, and applies
// defaults. Returns an error if the file cannot be read or parsed.
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
	cfg.Cache.DatabasePath = expandPath(cfg.Cache.DatabasePath, filepath.Dir(path))
	return &cfg, nil
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
	if filepath.IsAbs(path) {
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
