// Package dataset generates labelled data for testing classifiers.
//
// Separable draws a random prototype weight vector for each label and
// labels uniformly random feature vectors by the prototype scoring them
// highest. Feature vectors scored too closely by two prototypes are
// rejected, so the data are linearly separable with a known margin.
package dataset

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/goai/classification"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// BiasFeature is the name of the feature which is 1 in every example
const BiasFeature = "bias"

// maxAttemptsPerExample bounds the number of rejected samples
const maxAttemptsPerExample = 1000

// Config represents a configuration for generating separable data
type Config struct {
	Examples int     `mapstructure:"examples" yaml:"examples"`
	Features int     `mapstructure:"features" yaml:"features"`
	Labels   int     `mapstructure:"labels" yaml:"labels"`
	Margin   float64 `mapstructure:"margin" yaml:"margin"`
	Seed     uint64  `mapstructure:"seed" yaml:"seed"`
}

// Validate returns an error if the Config is not valid
func (c Config) Validate() error {
	if c.Examples < 0 {
		return fmt.Errorf("validate: examples must be non-negative, have %d",
			c.Examples)
	}
	if c.Features < 1 {
		return fmt.Errorf("validate: features must be positive, have %d",
			c.Features)
	}
	if c.Labels < 2 {
		return fmt.Errorf("validate: at least two labels are required, "+
			"have %d", c.Labels)
	}
	if c.Margin < 0 {
		return fmt.Errorf("validate: margin must be non-negative, have %v",
			c.Margin)
	}
	return nil
}

// FeatureName returns the name of the i-th generated feature
func FeatureName(i int) string {
	return fmt.Sprintf("f%d", i)
}

// Labels returns the labels used by data generated with cfg
func Labels(cfg Config) []int {
	labels := make([]int, cfg.Labels)
	for i := range labels {
		labels[i] = i
	}
	return labels
}

// Separable generates cfg.Examples linearly separable examples. Each
// example has cfg.Features features drawn uniformly from [-1, 1] and
// the bias feature.
func Separable(cfg Config) ([]classification.Counter, []int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("separable: %w", err)
	}

	src := rand.NewSource(cfg.Seed)
	dims := cfg.Features + 1

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	prototypes := mat.NewDense(cfg.Labels, dims, nil)
	prototypes.Apply(func(_, _ int, _ float64) float64 {
		return normal.Rand()
	}, prototypes)

	uniform := distuv.Uniform{Min: -1, Max: 1, Src: src}
	x := mat.NewVecDense(dims, nil)
	scores := mat.NewVecDense(cfg.Labels, nil)

	data := make([]classification.Counter, 0, cfg.Examples)
	labels := make([]int, 0, cfg.Examples)

	attempts := 0
	for len(data) < cfg.Examples {
		if attempts >= maxAttemptsPerExample*cfg.Examples {
			return nil, nil, fmt.Errorf("separable: could not generate %d "+
				"examples with margin %v after %d attempts", cfg.Examples,
				cfg.Margin, attempts)
		}
		attempts++

		for i := 0; i < cfg.Features; i++ {
			x.SetVec(i, uniform.Rand())
		}
		x.SetVec(cfg.Features, 1)

		scores.MulVec(prototypes, x)
		label, margin := best(scores.RawVector().Data)
		if margin < cfg.Margin {
			continue
		}

		f := make(classification.Counter, dims)
		for i := 0; i < cfg.Features; i++ {
			f[FeatureName(i)] = x.AtVec(i)
		}
		f[BiasFeature] = 1

		data = append(data, f)
		labels = append(labels, label)
	}

	return data, labels, nil
}

// best returns the index of the highest score and the gap between it
// and the second highest
func best(scores []float64) (int, float64) {
	idx := floats.MaxIdx(scores)
	second := math.Inf(-1)
	for i, s := range scores {
		if i != idx {
			second = math.Max(second, s)
		}
	}
	return idx, scores[idx] - second
}

// Split splits data and labels into a training set holding the first
// examples and a validation set holding the last fraction of them
func Split(data []classification.Counter, labels []int,
	fraction float64) (trainData []classification.Counter, trainLabels []int,
	validationData []classification.Counter, validationLabels []int,
	err error) {
	if len(data) != len(labels) {
		return nil, nil, nil, nil, fmt.Errorf("split: %w",
			classification.ErrLengthMismatch)
	}
	if fraction < 0 || fraction > 1 {
		return nil, nil, nil, nil, fmt.Errorf("split: fraction %v not in "+
			"[0, 1]", fraction)
	}

	n := len(data) - int(math.Round(fraction*float64(len(data))))
	return data[:n], labels[:n], data[n:], labels[n:], nil
}
