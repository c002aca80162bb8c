// Package mira implements the Margin Infused Relaxed Algorithm, an
// online multi-class classifier.
//
// MIRA is a perceptron whose updates are scaled so that the misclassified
// example would be classified correctly with a margin of one, with the
// step capped at C. The cap may be chosen automatically from a grid by
// accuracy on validation data.
package mira

import (
	"fmt"

	"github.com/samuelfneumann/goai/classification"
	"github.com/samuelfneumann/goai/utils/floatutils"
	"go.uber.org/zap"
)

// HighWeightFeatureCount is the number of features returned by
// HighWeightFeatures
const HighWeightFeatureCount = 100

// Trial records the validation accuracy of the weights trained with
// cap C
type Trial struct {
	C        float64
	Accuracy float64
}

// Scaling returns the step size of the update made when f is
// classified as guess with weights wGuess instead of its true label
// with weights wTrue. A zero feature vector takes the full step c.
func Scaling(wGuess, wTrue, f classification.Counter, c float64) float64 {
	norm := f.Dot(f)
	if norm == 0 {
		return c
	}

	diff := wGuess.Copy()
	diff.Sub(wTrue)
	tau := (diff.Dot(f) + 1) / (2 * norm)
	return floatutils.Min(c, tau)
}

// Train returns the weights learned from zero weights by maxIterations
// passes over the data with cap c. Every data label must be one of
// labels.
func Train[L comparable](labels []L, data []classification.Counter,
	dataLabels []L, c float64, maxIterations int,
	logger *zap.Logger) (*classification.Weights[L], error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	weights, err := classification.NewWeights(labels)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if err := weights.Check(data, dataLabels); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	for i := 0; i < maxIterations; i++ {
		mistakes := 0
		for j, f := range data {
			guess := weights.Guess(f)
			if guess == dataLabels[j] {
				continue
			}
			mistakes++

			wGuess, _ := weights.Vector(guess)
			wTrue, _ := weights.Vector(dataLabels[j])
			scaling := Scaling(wGuess, wTrue, f, c)
			wTrue.AddScaled(f, scaling)
			wGuess.AddScaled(f, -scaling)
		}
		logger.Debug("pass", zap.Float64("c", c), zap.Int("iteration", i+1),
			zap.Int("mistakes", mistakes))
	}

	return weights, nil
}

// Mira is a MIRA classifier
type Mira[L comparable] struct {
	cfg     Config
	labels  []L
	weights *classification.Weights[L]
	c       float64
	trials  []Trial
	logger  *zap.Logger
}

var _ classification.Classifier[string] = &Mira[string]{}

// New creates a new, untrained MIRA classifier over the given legal
// labels. If logger is nil, nothing is logged.
func New[L comparable](labels []L, cfg Config,
	logger *zap.Logger) (*Mira[L], error) {
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

	return &Mira[L]{
		cfg:     cfg,
		labels:  append([]L(nil), labels...),
		weights: weights,
		logger:  logger,
	}, nil
}

// Train trains the classifier once for every cap of the Config's grid
// and keeps the weights with the highest validation accuracy. Ties go
// to the cap tried first.
func (m *Mira[L]) Train(trainingData []classification.Counter,
	trainingLabels []L, validationData []classification.Counter,
	validationLabels []L) error {
	if len(trainingData) == 0 {
		return fmt.Errorf("train: %w", classification.ErrEmptyTrainingSet)
	}
	if err := m.weights.Check(trainingData, trainingLabels); err != nil {
		return fmt.Errorf("train: training data: %w", err)
	}
	if err := m.weights.Check(validationData, validationLabels); err != nil {
		return fmt.Errorf("train: validation data: %w", err)
	}

	var best *classification.Weights[L]
	bestC, bestAccuracy := 0.0, -1.0
	trials := make([]Trial, 0, len(m.cfg.Grid()))

	for _, c := range m.cfg.Grid() {
		weights, err := Train(m.labels, trainingData, trainingLabels, c,
			m.cfg.MaxIterations, m.logger)
		if err != nil {
			return fmt.Errorf("train: %w", err)
		}

		accuracy, err := classification.Accuracy(
			classify(weights, validationData), validationLabels)
		if err != nil {
			return fmt.Errorf("train: %w", err)
		}
		trials = append(trials, Trial{C: c, Accuracy: accuracy})
		m.logger.Info("trained", zap.Float64("c", c),
			zap.Float64("validationAccuracy", accuracy))

		if accuracy > bestAccuracy {
			best, bestC, bestAccuracy = weights, c, accuracy
		}
	}

	m.weights, m.c, m.trials = best, bestC, trials
	m.logger.Info("selected cap", zap.Float64("c", bestC),
		zap.Float64("validationAccuracy", bestAccuracy))
	return nil
}

// Classify implements the classification.Classifier interface
func (m *Mira[L]) Classify(data []classification.Counter) []L {
	return classify(m.weights, data)
}

// C returns the cap of the current weights, which is 0 before training
func (m *Mira[L]) C() float64 {
	return m.c
}

// Trials returns the validation accuracy of each cap tried in the last
// call to Train
func (m *Mira[L]) Trials() []Trial {
	return append([]Trial(nil), m.trials...)
}

// Weights returns a copy of the current weights
func (m *Mira[L]) Weights() *classification.Weights[L] {
	return m.weights.Copy()
}

// HighWeightFeatures returns the features with the highest weights for
// a label, highest first
func (m *Mira[L]) HighWeightFeatures(label L) ([]string, error) {
	return m.weights.HighWeightFeatures(label, HighWeightFeatureCount)
}

func classify[L comparable](weights *classification.Weights[L],
	data []classification.Counter) []L {
	guesses := make([]L, len(data))
	for i, f := range data {
		guesses[i] = weights.Guess(f)
	}
	return guesses
}
