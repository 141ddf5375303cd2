package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "quantum" {
		t.Errorf("expected scene quantum, got %s", cfg.Scene)
	}
	if cfg.TickIntervalMs <= 0 {
		t.Error("tick interval should be positive")
	}
	if cfg.IdleThresholdMs <= 0 {
		t.Error("idle threshold should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickIntervalMs = 0 }},
		{"negative tick", func(c *Config) { c.TickIntervalMs = -5 }},
		{"zero idle", func(c *Config) { c.IdleThresholdMs = 0 }},
		{"zero ui tick", func(c *Config) { c.UITickMs = 0 }},
		{"empty mode", func(c *Config) { c.Bindings = map[string]string{"q": ""} }},
		{"empty key", func(c *Config) { c.Bindings = map[string]string{"": "quantum"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stagecraft.yaml")

	cfg := DefaultConfig()
	cfg.Scene = "pulse"
	cfg.TickIntervalMs = 25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scene != "pulse" || loaded.TickIntervalMs != 25 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_interval_ms: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected malformed config to fail at load time")
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.EngineOptions()

	if opts.TickInterval != 30*time.Millisecond {
		t.Errorf("expected 30ms tick, got %v", opts.TickInterval)
	}
	if opts.IdleThreshold != 3*time.Second {
		t.Errorf("expected 3s idle threshold, got %v", opts.IdleThreshold)
	}
	if opts.Bindings["f"] != "focus" {
		t.Error("focus binding missing")
	}
}
