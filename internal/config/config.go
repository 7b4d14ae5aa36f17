// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"freshchain/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Predictor contains shelf-life predictor configuration
	Predictor PredictorConfig `json:"predictor"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PredictorConfig contains shelf-life predictor settings
type PredictorConfig struct {
	// ModelPath is the path to the trained regression model artifact
	ModelPath string `json:"model_path"`

	// HistoryPath is the path to the prediction history file
	HistoryPath string `json:"history_path"`

	// ProfilesPath is an optional HCL file overriding kinetic profiles
	ProfilesPath string `json:"profiles_path,omitempty"`

	// HistoryLimit caps how many prediction entries are retained
	HistoryLimit int `json:"history_limit"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".freshchain")

	return &Config{
		Version: "1.0",
		Predictor: PredictorConfig{
			ModelPath:    filepath.Join(dataDir, "shelf_life_model.json"),
			HistoryPath:  filepath.Join(dataDir, "shelf_life_history.json"),
			HistoryLimit: 120,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, then applies environment overrides.
// A missing file yields defaults; a missing .env file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Sugar.Debugf("no .env file loaded: %v", err)
	}

	config := Default()
	data, err := os.ReadFile(path)
	if err == nil {
		if uerr := json.Unmarshal(data, config); uerr != nil {
			return nil, uerr
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FRESHCHAIN_MODEL_PATH"); v != "" {
		c.Predictor.ModelPath = v
	}
	if v := os.Getenv("FRESHCHAIN_HISTORY_PATH"); v != "" {
		c.Predictor.HistoryPath = v
	}
	if v := os.Getenv("FRESHCHAIN_PROFILES_PATH"); v != "" {
		c.Predictor.ProfilesPath = v
	}
	if v := os.Getenv("FRESHCHAIN_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Predictor.HistoryLimit = n
		}
	}
	if v := os.Getenv("FRESHCHAIN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
