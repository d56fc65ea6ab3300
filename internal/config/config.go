package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDatabase = "PASO_BOARD_DB"
	EnvLogPath  = "PASO_BOARD_LOG"
)

// Config represents the application configuration
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Path  string `yaml:"path"`  // defaults to ~/.paso/logs/paso-board.log
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a config with every value set to its default
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadEnv applies PASO_BOARD_DB and PASO_BOARD_LOG when set
func loadEnv(config *Config) {
	if db := os.Getenv(EnvDatabase); db != "" {
		config.Board.Database = db
	}
	if logPath := os.Getenv(EnvLogPath); logPath != "" {
		config.Logging.Path = logPath
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadEnv(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadEnv(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadEnv(&config)

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
	return c.SaveTo(configPath)
}

// SaveTo saves the config to an explicit path
func (c *Config) SaveTo(configPath string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "paso-board", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "paso-board", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Board.applyDefaults()
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
