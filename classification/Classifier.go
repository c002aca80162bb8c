// Package classification defines sparse feature vectors and the
// weights shared by linear multi-class classifiers, along with helpers
// for checking and scoring labelled data.
package classification

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/goai/utils/floatutils"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrUnknownLabel is returned when a label is not one of the legal
	// labels of a classifier
	ErrUnknownLabel = errors.New("classification: unknown label")

	// ErrLengthMismatch is returned when data and labels are not
	// paired one to one
	ErrLengthMismatch = errors.New("classification: data and labels " +
		"differ in length")

	// ErrEmptyTrainingSet is returned when training on no data
	ErrEmptyTrainingSet = errors.New("classification: empty training set")
)

// Classifier is a multi-class classifier over sparse features
type Classifier[L comparable] interface {
	// Train trains the classifier. Validation data may be used to tune
	// hyperparameters and may be empty.
	Train(trainingData []Counter, trainingLabels []L,
		validationData []Counter, validationLabels []L) error

	// Classify returns a guessed label for each datum
	Classify(data []Counter) []L
}

// Weights holds one weight vector per legal label of a linear
// classifier
type Weights[L comparable] struct {
	labels  []L
	vectors map[L]Counter
}

// NewWeights returns zero weights for the given labels. The order of
// labels decides ties when guessing.
func NewWeights[L comparable](labels []L) (*Weights[L], error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("newWeights: at least one label is required")
	}

	vectors := make(map[L]Counter, len(labels))
	for _, label := range labels {
		if _, ok := vectors[label]; ok {
			return nil, fmt.Errorf("newWeights: duplicate label %v", label)
		}
		vectors[label] = make(Counter)
	}

	return &Weights[L]{
		labels:  append([]L(nil), labels...),
		vectors: vectors,
	}, nil
}

// Labels returns the legal labels
func (w *Weights[L]) Labels() []L {
	return append([]L(nil), w.labels...)
}

// Vector returns the weight vector of a label. The returned Counter is
// the one stored, so modifying it modifies the weights.
func (w *Weights[L]) Vector(label L) (Counter, error) {
	vector, ok := w.vectors[label]
	if !ok {
		return nil, fmt.Errorf("vector: label %v: %w", label, ErrUnknownLabel)
	}
	return vector, nil
}

// Scores returns the score w[label] · f of each label, in label order
func (w *Weights[L]) Scores(f Counter) []float64 {
	scores := make([]float64, len(w.labels))
	for i, label := range w.labels {
		scores[i] = w.vectors[label].Dot(f)
	}
	return scores
}

// Guess returns the label with the highest score for f. Ties go to
// the label listed first.
func (w *Weights[L]) Guess(f Counter) L {
	return w.labels[floatutils.ArgMax(w.Scores(f))]
}

// Copy returns a deep copy of the weights
func (w *Weights[L]) Copy() *Weights[L] {
	vectors := make(map[L]Counter, len(w.vectors))
	for label, vector := range w.vectors {
		vectors[label] = vector.Copy()
	}
	return &Weights[L]{
		labels:  append([]L(nil), w.labels...),
		vectors: vectors,
	}
}

// HighWeightFeatures returns the names of the n features with the
// highest weight for a label, highest first
func (w *Weights[L]) HighWeightFeatures(label L, n int) ([]string, error) {
	vector, err := w.Vector(label)
	if err != nil {
		return nil, fmt.Errorf("highWeightFeatures: %w", err)
	}
	return vector.TopFeatures(n), nil
}

// Check returns an error if data and labels are not paired one to one
// or if any label is not legal
func (w *Weights[L]) Check(data []Counter, labels []L) error {
	if len(data) != len(labels) {
		return fmt.Errorf("check: %d data and %d labels: %w", len(data),
			len(labels), ErrLengthMismatch)
	}
	for i, label := range labels {
		if _, ok := w.vectors[label]; !ok {
			return fmt.Errorf("check: label %v of datum %d: %w", label, i,
				ErrUnknownLabel)
		}
	}
	return nil
}

// Accuracy returns the fraction of guesses equal to the corresponding
// label. The accuracy of no guesses is 0.
func Accuracy[L comparable](guesses, labels []L) (float64, error) {
	if len(guesses) != len(labels) {
		return 0, fmt.Errorf("accuracy: %d guesses and %d labels: %w",
			len(guesses), len(labels), ErrLengthMismatch)
	}
	if len(guesses) == 0 {
		return 0, nil
	}

	correct := make([]float64, len(guesses))
	for i := range guesses {
		if guesses[i] == labels[i] {
			correct[i] = 1
		}
	}
	return stat.Mean(correct, nil), nil
}
