// Package config loads the optional memload.yaml project configuration.
// CLI flags take precedence over file values, which take precedence over
// built-in defaults.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ConnectionConfig struct {
	Scheme   string `yaml:"scheme,omitempty"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username,omitempty"`
	Database string `yaml:"database,omitempty"`
}

type LoadConfig struct {
	Workers              int    `yaml:"workers,omitempty"`
	Remainder            string `yaml:"remainder,omitempty"` // "round-robin" or "drop"
	StatementMaxAttempts int    `yaml:"statement_max_attempts,omitempty"`
}

type ProjectConfig struct {
	Connection ConnectionConfig `yaml:"connection"`
	Load       LoadConfig       `yaml:"load"`
	Timeout    string           `yaml:"timeout,omitempty"`
}

const ConfigFileName = "memload.yaml"

// Load reads memload.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
