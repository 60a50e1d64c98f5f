// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: reading and writing the
// YAML config file and applying environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level application configuration
type Config struct {
	// DataFile is a CSV verb table to use instead of the embedded one (optional)
	DataFile string `yaml:"data_file,omitempty" env:"IRVERBS_DATA_FILE"`

	// Strict rejects data rows with fewer than three forms
	Strict bool `yaml:"strict,omitempty" env:"IRVERBS_STRICT"`

	// Seed fixes the question order; 0 means a new order every run
	Seed uint64 `yaml:"seed,omitempty" env:"IRVERBS_SEED"`

	// AnswerMaxLen is the number of characters of an answer that are kept
	AnswerMaxLen int `yaml:"answer_max_len,omitempty" env:"IRVERBS_ANSWER_MAX_LEN"`

	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level,omitempty" env:"IRVERBS_LOG_LEVEL"`
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "ir-verbs", "config.yaml"), nil
}

// LoadConfig reads the config file at the default path and applies
// environment overrides. A missing file is not an error.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom is LoadConfig for an explicit path.
func LoadConfigFrom(configPath string) (Config, error) {
	cfg, err := readConfigFile(configPath)
	if err != nil {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	return cfg, nil
}

// readConfigFile reads the YAML file only, without environment overrides.
func readConfigFile(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// SaveConfigTo writes cfg as YAML to configPath.
func SaveConfigTo(configPath string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// UpdateConfigFile rewrites the file at configPath after applying fn to its
// current contents. Environment overrides are not applied.
func UpdateConfigFile(configPath string, fn func(*Config)) (Config, error) {
	cfg, err := readConfigFile(configPath)
	if err != nil {
		return Config{}, err
	}
	fn(&cfg)
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return Config{}, fmt.Errorf("failed to create config directory %s: %w", filepath.Dir(configPath), err)
	}
	if err := SaveConfigTo(configPath, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
