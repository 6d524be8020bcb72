package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds the database and the log directory
	DataDir  string `yaml:"data_dir" env:"DOABLE_DATA_DIR" env-description:"directory holding doable.db and logs"`
	LogLevel string `yaml:"log_level" env:"DOABLE_LOG_LEVEL" env-description:"debug, info, warn or error"`
	// ImportMode is the default for `doable import` (merge or replace)
	ImportMode string `yaml:"import_mode" env:"DOABLE_IMPORT_MODE" env-description:"default import mode: merge or replace"`

	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

const (
	defaultLogLevel   = "info"
	defaultImportMode = "merge"
)

// loadThemeFile loads and merges theme from DOABLE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("DOABLE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme, true)
	}
}

// Load loads config from the user's config directory, then applies
// environment overrides. Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	// Environment variables win over the file
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Load theme from DOABLE_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location of the config file
func Path() (string, error) {
	return getConfigPath()
}

// EnvHelp describes the environment overrides, for `--help` output
func EnvHelp() (string, error) {
	return cleanenv.GetDescription(&Config{}, nil)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "doable", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "doable", "config.yaml"), nil
}

// DefaultDataDir returns ~/.doable, or .doable in the working directory
// when the home directory is unknown
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".doable"
	}
	return filepath.Join(homeDir, ".doable")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.ImportMode == "" {
		c.ImportMode = defaultImportMode
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
