package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// --- Default ---

func TestDefault_Values(t *testing.T) {
	cfg := Default()

	if cfg.SessionTimeout != time.Hour {
		t.Errorf("SessionTimeout = %v, want 1h", cfg.SessionTimeout)
	}
	if cfg.SweepInterval != 15*time.Minute {
		t.Errorf("SweepInterval = %v, want 15m", cfg.SweepInterval)
	}
	if !cfg.JournalEnabled {
		t.Error("JournalEnabled = false, want true")
	}
	if cfg.DataDir == "" {
		t.Error("DataDir empty")
	}
}

// --- Load ---

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SAGE_DATA_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTimeout != time.Hour {
		t.Errorf("SessionTimeout = %v, want default 1h", cfg.SessionTimeout)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SAGE_DATA_DIR", dir)

	content := `{"session_timeout": "30m", "sweep_interval": "5m", "journal_enabled": false}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTimeout != 30*time.Minute {
		t.Errorf("SessionTimeout = %v, want 30m", cfg.SessionTimeout)
	}
	if cfg.SweepInterval != 5*time.Minute {
		t.Errorf("SweepInterval = %v, want 5m", cfg.SweepInterval)
	}
	if cfg.JournalEnabled {
		t.Error("JournalEnabled = true, want false")
	}
}

func TestLoad_EnvWinsOverFileDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SAGE_DATA_DIR", dir)

	content := `{"data_dir": "/somewhere/else"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %s, want env override %s", cfg.DataDir, dir)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SAGE_DATA_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded on malformed JSON")
	}
}

func TestLoad_BadDurationFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SAGE_DATA_DIR", dir)

	content := `{"session_timeout": "soon"}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded on invalid duration")
	}
}
