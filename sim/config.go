package sim

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the simulation. Defaults reproduce the
// classic demonstration: a 10x10 grid rolling to 1000 total rolls.
type Config struct {
	Columns int `env:"COLUMNS" envDefault:"10"`
	Rows    int `env:"ROWS" envDefault:"10"`

	DieSize float32 `env:"DIE_SIZE" envDefault:"40"`
	Spacing float32 `env:"SPACING" envDefault:"10"`

	// Slowest and fastest die update intervals; every die in between gets
	// a linearly interpolated interval.
	BaseInterval time.Duration `env:"BASE_INTERVAL" envDefault:"1s"`
	MinInterval  time.Duration `env:"MIN_INTERVAL" envDefault:"200ms"`

	Sides        int `env:"SIDES" envDefault:"20"`
	LowThreshold int `env:"LOW_THRESHOLD" envDefault:"13"`
	MaxRolls     int `env:"MAX_ROLLS" envDefault:"1000"`

	FPS          int     `env:"FPS" envDefault:"60"`
	BarWidth     float32 `env:"BAR_WIDTH" envDefault:"50"`
	BarMaxHeight float32 `env:"BAR_MAX_HEIGHT" envDefault:"400"`

	// 0 seeds from the wall clock; any other value gives a reproducible run.
	Seed int64 `env:"SEED" envDefault:"0"`
}

// LoadConfig returns the default configuration with any D20_-prefixed
// environment overrides applied.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "D20_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Columns, c.Rows)
	}
	if c.Sides < 2 {
		return fmt.Errorf("die needs at least 2 sides, got %d", c.Sides)
	}
	if c.LowThreshold < 1 || c.LowThreshold >= c.Sides {
		return fmt.Errorf("low threshold %d must split a %d-sided die", c.LowThreshold, c.Sides)
	}
	if c.MaxRolls < 1 {
		return fmt.Errorf("max rolls must be positive, got %d", c.MaxRolls)
	}
	if c.MinInterval <= 0 || c.BaseInterval < c.MinInterval {
		return fmt.Errorf("intervals must satisfy 0 < min (%v) <= base (%v)", c.MinInterval, c.BaseInterval)
	}
	if c.FPS < 1 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
