package mira

import (
	"fmt"
)

// DefaultC is the cap used without automatic tuning
const DefaultC = 0.001

// DefaultCGrid is the grid of caps searched with automatic tuning
var DefaultCGrid = []float64{0.002, 0.004, 0.008}

// Config represents a configuration for the MIRA classifier
type Config struct {
	MaxIterations int     `mapstructure:"iterations" yaml:"iterations"`
	C             float64 `mapstructure:"c" yaml:"c"`

	// AutomaticTuning selects the cap from CGrid by validation
	// accuracy instead of using C. DefaultCGrid is used if CGrid is
	// empty.
	AutomaticTuning bool      `mapstructure:"auto-tune" yaml:"auto-tune"`
	CGrid           []float64 `mapstructure:"c-grid" yaml:"c-grid"`
}

// DefaultConfig returns the Config with the default cap and no
// automatic tuning
func DefaultConfig(maxIterations int) Config {
	return Config{MaxIterations: maxIterations, C: DefaultC}
}

// Grid returns the caps to train with, in the order they are tried
func (c Config) Grid() []float64 {
	if !c.AutomaticTuning {
		return []float64{c.C}
	}
	if len(c.CGrid) == 0 {
		return append([]float64(nil), DefaultCGrid...)
	}
	return append([]float64(nil), c.CGrid...)
}

// Validate returns an error if the Config is not valid
func (c Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("validate: iterations must be non-negative, "+
			"have %d", c.MaxIterations)
	}
	for _, value := range c.Grid() {
		if value <= 0 {
			return fmt.Errorf("validate: cap must be positive, have %v", value)
		}
	}
	return nil
}
