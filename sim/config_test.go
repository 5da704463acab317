package sim

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Columns != 10 || cfg.Rows != 10 {
		t.Errorf("grid defaults = %dx%d, want 10x10", cfg.Rows, cfg.Columns)
	}
	if cfg.MaxRolls != 1000 {
		t.Errorf("max rolls default = %d, want 1000", cfg.MaxRolls)
	}
	if cfg.BaseInterval != time.Second || cfg.MinInterval != 200*time.Millisecond {
		t.Errorf("interval defaults = %v/%v, want 1s/200ms", cfg.BaseInterval, cfg.MinInterval)
	}
	if cfg.Sides != 20 || cfg.LowThreshold != 13 {
		t.Errorf("die defaults = d%d split at %d, want d20 split at 13", cfg.Sides, cfg.LowThreshold)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("D20_MAX_ROLLS", "50")
	t.Setenv("D20_SEED", "7")
	t.Setenv("D20_BASE_INTERVAL", "500ms")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxRolls != 50 {
		t.Errorf("max rolls = %d, want 50", cfg.MaxRolls)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	if cfg.BaseInterval != 500*time.Millisecond {
		t.Errorf("base interval = %v, want 500ms", cfg.BaseInterval)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero columns", func(c *Config) { c.Columns = 0 }},
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"one-sided die", func(c *Config) { c.Sides = 1 }},
		{"threshold above sides", func(c *Config) { c.LowThreshold = 20 }},
		{"zero cap", func(c *Config) { c.MaxRolls = 0 }},
		{"min above base", func(c *Config) { c.MinInterval = 2 * time.Second }},
		{"zero min interval", func(c *Config) { c.MinInterval = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
