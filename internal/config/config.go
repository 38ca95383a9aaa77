// Package config holds server-level configuration for Sage.
//
// Configuration is resolved in three layers: built-in defaults, an
// optional JSON file at <data dir>/config.json, and the SAGE_DATA_DIR
// environment variable for the data directory itself.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds the resolved server configuration.
type Config struct {
	// DataDir is where the thought journal lives.
	DataDir string `json:"data_dir"`
	// SessionTimeout is the idle duration after which a session is
	// evicted from the in-memory store.
	SessionTimeout time.Duration `json:"-"`
	// SweepInterval is how often expired sessions are swept.
	SweepInterval time.Duration `json:"-"`
	// JournalEnabled controls the SQLite thought archive.
	JournalEnabled bool `json:"journal_enabled"`
}

// fileConfig is the on-disk shape; durations are written in Go
// duration syntax ("1h", "15m").
type fileConfig struct {
	DataDir        string `json:"data_dir"`
	SessionTimeout string `json:"session_timeout"`
	SweepInterval  string `json:"sweep_interval"`
	JournalEnabled *bool  `json:"journal_enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DataDir:        filepath.Join(home, ".sage"),
		SessionTimeout: time.Hour,
		SweepInterval:  15 * time.Minute,
		JournalEnabled: true,
	}
}

// Load resolves the configuration: defaults, then config.json if
// present, then the SAGE_DATA_DIR override. A missing file is not an
// error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	if dir := os.Getenv("SAGE_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	path := filepath.Join(cfg.DataDir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if fc.DataDir != "" {
		cfg.DataDir = fc.DataDir
	}
	if fc.SessionTimeout != "" {
		d, err := time.ParseDuration(fc.SessionTimeout)
		if err != nil {
			return cfg, fmt.Errorf("config: session_timeout: %w", err)
		}
		cfg.SessionTimeout = d
	}
	if fc.SweepInterval != "" {
		d, err := time.ParseDuration(fc.SweepInterval)
		if err != nil {
			return cfg, fmt.Errorf("config: sweep_interval: %w", err)
		}
		cfg.SweepInterval = d
	}
	if fc.JournalEnabled != nil {
		cfg.JournalEnabled = *fc.JournalEnabled
	}

	// SAGE_DATA_DIR wins even over the file's own data_dir.
	if dir := os.Getenv("SAGE_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}
