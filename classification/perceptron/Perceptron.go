// Package perceptron implements the multi-class perceptron
package perceptron

import (
	"fmt"

	"github.com/samuelfneumann/goai/classification"
	"go.uber.org/zap"
)

// Config represents a configuration for the Perceptron classifier
type Config struct {
	MaxIterations int `mapstructure:"iterations" yaml:"iterations"`
}

// Validate returns an error if the Config is not valid
func (c Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("validate: iterations must be non-negative, "+
			"have %d", c.MaxIterations)
	}
	return nil
}

// Perceptron is a multi-class perceptron classifier. On each mistake
// the features are added to the weights of the true label and
// subtracted from the weights of the guessed label.
type Perceptron[L comparable] struct {
	cfg     Config
	labels  []L
	weights *classification.Weights[L]
	logger  *zap.Logger
}

var _ classification.Classifier[string] = &Perceptron[string]{}

// New creates a new, untrained Perceptron over the given legal labels.
// If logger is nil, nothing is logged.
func New[L comparable](labels []L, cfg Config,
	logger *zap.Logger) (*Perceptron[L], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	weights, err := classification.NewWeights(labels)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	return &Perceptron[L]{
		cfg:     cfg,
		labels:  append([]L(nil), labels...),
		weights: weights,
		logger:  logger,
	}, nil
}

// Train trains the Perceptron from zero weights. The validation data
// are checked but not otherwise used.
func (p *Perceptron[L]) Train(trainingData []classification.Counter,
	trainingLabels []L, validationData []classification.Counter,
	validationLabels []L) error {
	if len(trainingData) == 0 {
		return fmt.Errorf("train: %w", classification.ErrEmptyTrainingSet)
	}
	if err := p.weights.Check(trainingData, trainingLabels); err != nil {
		return fmt.Errorf("train: training data: %w", err)
	}
	if err := p.weights.Check(validationData, validationLabels); err != nil {
		return fmt.Errorf("train: validation data: %w", err)
	}

	weights, err := classification.NewWeights(p.labels)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	for i := 0; i < p.cfg.MaxIterations; i++ {
		mistakes := 0
		for j, f := range trainingData {
			guess := weights.Guess(f)
			if guess == trainingLabels[j] {
				continue
			}
			mistakes++

			wGuess, _ := weights.Vector(guess)
			wTrue, _ := weights.Vector(trainingLabels[j])
			wTrue.Add(f)
			wGuess.Sub(f)
		}
		p.logger.Debug("pass", zap.Int("iteration", i+1),
			zap.Int("mistakes", mistakes))

		if mistakes == 0 {
			break
		}
	}

	p.weights = weights
	return nil
}

// Classify implements the classification.Classifier interface
func (p *Perceptron[L]) Classify(data []classification.Counter) []L {
	guesses := make([]L, len(data))
	for i, f := range data {
		guesses[i] = p.weights.Guess(f)
	}
	return guesses
}

// Weights returns a copy of the current weights
func (p *Perceptron[L]) Weights() *classification.Weights[L] {
	return p.weights.Copy()
}

// HighWeightFeatures returns up to n features with the highest weights
// for a label, highest first
func (p *Perceptron[L]) HighWeightFeatures(label L, n int) ([]string,
	error) {
	return p.weights.HighWeightFeatures(label, n)
}
