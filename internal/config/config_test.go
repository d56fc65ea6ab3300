package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	defaults := Default()

	if defaults.Board.DragThreshold != 5 {
		t.Errorf("Default drag threshold = %v, want 5", defaults.Board.DragThreshold)
	}
	if defaults.Board.MutationConcurrency != 8 {
		t.Errorf("Default mutation concurrency = %d, want 8", defaults.Board.MutationConcurrency)
	}
	if defaults.Board.DefaultView != "board" {
		t.Errorf("Default view = %s, want board", defaults.Board.DefaultView)
	}
	if defaults.Logging.Level != "info" {
		t.Errorf("Default log level = %s, want info", defaults.Logging.Level)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Set to a temp dir that doesn't have a config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogPath, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.Board.MutationConcurrency != DefaultMutationConcurrency {
		t.Errorf("Loaded concurrency = %d, want %d (default)", cfg.Board.MutationConcurrency, DefaultMutationConcurrency)
	}
	if cfg.Board.Database != "" {
		t.Errorf("Loaded database = %q, want empty", cfg.Board.Database)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogPath, "")

	configDir := filepath.Join(tempDir, "paso-board")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `board:
  database: /tmp/vault.db
  mutation_concurrency: 2
logging:
  level: debug
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.Board.Database != "/tmp/vault.db" {
		t.Errorf("Loaded database = %s, want /tmp/vault.db", cfg.Board.Database)
	}
	if cfg.Board.MutationConcurrency != 2 {
		t.Errorf("Loaded concurrency = %d, want 2", cfg.Board.MutationConcurrency)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Loaded level = %s, want debug", cfg.Logging.Level)
	}

	// Unspecified values should use defaults
	if cfg.Board.DragThreshold != DefaultDragThreshold {
		t.Errorf("Loaded drag threshold = %v, want %v (default)", cfg.Board.DragThreshold, DefaultDragThreshold)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("LoadFrom() with invalid YAML should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDatabase, "/data/board.db")
	t.Setenv(EnvLogPath, "/data/board.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Database != "/data/board.db" {
		t.Errorf("Database = %s, want env override", cfg.Board.Database)
	}
	if cfg.Logging.Path != "/data/board.log" {
		t.Errorf("Log path = %s, want env override", cfg.Logging.Path)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvLogPath, "")

	cfg := &Config{
		Board: BoardConfig{
			DefaultView:         "sprint",
			MutationConcurrency: 3,
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	// Save config
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tempDir, "paso-board", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	// Load it back
	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	// Verify values match
	if cfg2.Board.DefaultView != "sprint" {
		t.Errorf("Reloaded view = %s, want sprint", cfg2.Board.DefaultView)
	}
	if cfg2.Board.MutationConcurrency != 3 {
		t.Errorf("Reloaded concurrency = %d, want 3", cfg2.Board.MutationConcurrency)
	}
}
