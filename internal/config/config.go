package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the dice programs
type Config struct {
	// Width and Height size the window in pixels
	Width  int `env:"DICETRAY_WIDTH" envDefault:"800"`
	Height int `env:"DICETRAY_HEIGHT" envDefault:"600"`

	// FPS caps the frame loop
	FPS int `env:"DICETRAY_FPS" envDefault:"60"`

	// Die is the number of sides of the die on the table at start
	Die int `env:"DICETRAY_DIE" envDefault:"6"`

	// SettleDelay is how long a die spins before the result lands
	SettleDelay time.Duration `env:"DICETRAY_SETTLE_DELAY" envDefault:"800ms"`

	// StepFraction is the share of the remaining angle closed per settling frame
	StepFraction float64 `env:"DICETRAY_STEP_FRACTION" envDefault:"0.1"`

	// Seed fixes the random source; 0 seeds from the clock
	Seed int64 `env:"DICETRAY_SEED"`
}

// Load reads the optional env files (".env" when none are given) and then the environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", c.FPS)
	}
	if _, err := models.ParseDieKind(c.Die); err != nil {
		return err
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay %s cannot be negative", c.SettleDelay)
	}
	if c.StepFraction <= 0 || c.StepFraction > 1 {
		return fmt.Errorf("step fraction %v must be in (0, 1]", c.StepFraction)
	}
	return nil
}

// DieKind returns the configured starting die
func (c *Config) DieKind() models.DieKind {
	return models.DieKind(c.Die)
}
