package valueiteration

import (
	"fmt"

	"github.com/samuelfneumann/goai/mdp"
)

// Config represents a configuration for the ValueIteration agent
type Config struct {
	Discount   float64 `mapstructure:"discount" yaml:"discount"`
	Iterations int     `mapstructure:"iterations" yaml:"iterations"`
}

// Validate returns an error if the Config is not valid
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v: %w", c.Discount,
			mdp.ErrInvalidDiscount)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("validate: iterations must be non-negative, "+
			"have %d", c.Iterations)
	}
	return nil
}
