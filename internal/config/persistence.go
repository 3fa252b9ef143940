// file: internal/config/persistence.go
// version: 2.0.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFilePath returns the config file in use, or $HOME/.fuzzymatch.yaml
// when none was loaded.
func ConfigFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fuzzymatch.yaml")
}

// settings is the on-disk shape of Config, keyed like the viper settings.
func (c Config) settings() map[string]any {
	return map[string]any{
		"scorer":       c.Scorer,
		"processor":    c.Processor,
		"score_cutoff": c.ScoreCutoff,
		"limit":        c.Limit,
		"workers":      c.Workers,
		"weights":      c.Weights,
		"format":       c.Format,
		"log_level":    c.LogLevel,
	}
}

// MarshalYAML renders the configuration as a settings file.
func (c Config) MarshalYAML() (any, error) {
	return c.settings(), nil
}

// SaveConfigToFile writes AppConfig to path, or to ConfigFilePath when path
// is empty.
func SaveConfigToFile(path string) error {
	if path == "" {
		path = ConfigFilePath()
	}
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}

	data, err := yaml.Marshal(AppConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.WithField("path", path).Info("configuration saved")
	return nil
}

// LoadConfigFromFile merges the settings in path over the current viper
// state and refreshes AppConfig. A missing file is not an error.
func LoadConfigFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig map[string]any
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := viper.MergeConfigMap(fileConfig); err != nil {
		return fmt.Errorf("failed to merge config file %s: %w", path, err)
	}

	InitConfig()
	log.WithFields(log.Fields{"path": path, "keys": len(fileConfig)}).Debug("configuration loaded")
	return nil
}
