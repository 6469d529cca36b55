package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.UserAgent == "" {
		t.Error("default user agent should not be empty")
	}
	if cfg.Timeout != 30 {
		t.Errorf("default timeout = %d, want 30", cfg.Timeout)
	}
	if !cfg.History {
		t.Error("default history should be true")
	}
	if cfg.Debug {
		t.Error("default debug should be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty user agent", func(c *Config) { c.UserAgent = "" }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.Timeout = -5 }, true},
		{"huge timeout", func(c *Config) { c.Timeout = 301 }, true},
		{"valid short timeout", func(c *Config) { c.Timeout = 1 }, false},
		{"valid long timeout", func(c *Config) { c.Timeout = 300 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "ytlist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	content := `
user_agent = "test-agent/1.0"
timeout = 10
history = false
debug = true
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.UserAgent != "test-agent/1.0" {
		t.Errorf("UserAgent = %q, want test-agent/1.0", cfg.UserAgent)
	}
	if cfg.Timeout != 10 {
		t.Errorf("Timeout = %d, want 10", cfg.Timeout)
	}
	if cfg.History {
		t.Error("History should be false")
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timeout != Default().Timeout {
		t.Errorf("Timeout = %d, want default %d", cfg.Timeout, Default().Timeout)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "ytlist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`timeout = 0`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should reject out-of-range timeout")
	}
}
