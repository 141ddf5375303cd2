package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stagecraft/internal/engine"
)

const (
	DefaultScene    = "quantum"
	DefaultTickMs   = 30
	DefaultIdleMs   = 3000
	DefaultUITickMs = 50
	DefaultResetKey = "esc"
	DefaultTheme    = "cyberpunk"
)

type Config struct {
	Scene           string            `yaml:"scene"`
	TickIntervalMs  int               `yaml:"tick_interval_ms"`
	IdleThresholdMs int               `yaml:"idle_threshold_ms"`
	UITickMs        int               `yaml:"ui_tick_ms"`
	Theme           string            `yaml:"theme"`
	ResetKey        string            `yaml:"reset_key"`
	Bindings        map[string]string `yaml:"bindings"`
	ResettableModes []string          `yaml:"resettable_modes"`
	DataDir         string            `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:           DefaultScene,
		TickIntervalMs:  DefaultTickMs,
		IdleThresholdMs: DefaultIdleMs,
		UITickMs:        DefaultUITickMs,
		Theme:           DefaultTheme,
		ResetKey:        DefaultResetKey,
		Bindings: map[string]string{
			"u": "quantum",
			"f": "focus",
		},
		ResettableModes: []string{"focus"},
		DataDir:         ".stagecraft",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate fails fast on malformed configuration; a bad file should stop
// the view from ever rendering.
func (c *Config) Validate() error {
	if c.TickIntervalMs <= 0 {
		return fmt.Errorf("config: tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	}
	if c.IdleThresholdMs <= 0 {
		return fmt.Errorf("config: idle_threshold_ms must be positive, got %d", c.IdleThresholdMs)
	}
	if c.UITickMs <= 0 {
		return fmt.Errorf("config: ui_tick_ms must be positive, got %d", c.UITickMs)
	}
	for key, mode := range c.Bindings {
		if key == "" {
			return fmt.Errorf("config: empty key bound to mode %q", mode)
		}
		if mode == "" {
			return fmt.Errorf("config: binding for key %q has no mode", key)
		}
	}
	return nil
}

// EngineOptions translates the file shape into engine options. The engine
// validates again at construction (including case-folded key conflicts);
// this just maps units.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		TickInterval:    time.Duration(c.TickIntervalMs) * time.Millisecond,
		IdleThreshold:   time.Duration(c.IdleThresholdMs) * time.Millisecond,
		Bindings:        c.Bindings,
		ResettableModes: c.ResettableModes,
		ResetKey:        c.ResetKey,
	}
}

// UITick is the host frame cadence driving the elapsed counter and the
// idle check.
func (c *Config) UITick() time.Duration {
	return time.Duration(c.UITickMs) * time.Millisecond
}
