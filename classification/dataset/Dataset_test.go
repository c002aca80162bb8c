package dataset

import (
	"testing"

	"github.com/samuelfneumann/goai/classification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Examples: 10, Features: 2, Labels: 3}, false},
		{"no examples", Config{Examples: 0, Features: 2, Labels: 2}, false},
		{"negative examples", Config{Examples: -1, Features: 2, Labels: 2}, true},
		{"no features", Config{Examples: 10, Features: 0, Labels: 2}, true},
		{"one label", Config{Examples: 10, Features: 2, Labels: 1}, true},
		{"negative margin", Config{Examples: 10, Features: 2, Labels: 2,
			Margin: -1}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeparable(t *testing.T) {
	cfg := Config{Examples: 200, Features: 4, Labels: 3, Margin: 0.2, Seed: 7}

	data, labels, err := Separable(cfg)
	require.NoError(t, err)
	require.Len(t, data, cfg.Examples)
	require.Len(t, labels, cfg.Examples)

	for i, f := range data {
		assert.Len(t, f, cfg.Features+1)
		assert.Equal(t, 1.0, f[BiasFeature])
		for j := 0; j < cfg.Features; j++ {
			v, ok := f[FeatureName(j)]
			require.True(t, ok)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
		assert.Contains(t, Labels(cfg), labels[i])
	}

	// The same seed generates the same data
	again, againLabels, err := Separable(cfg)
	require.NoError(t, err)
	assert.Equal(t, data, again)
	assert.Equal(t, labels, againLabels)

	other, _, err := Separable(Config{Examples: 200, Features: 4, Labels: 3,
		Margin: 0.2, Seed: 8})
	require.NoError(t, err)
	assert.NotEqual(t, data, other)
}

func TestSeparableUnreachableMargin(t *testing.T) {
	// Scores are bounded by the prototypes, so no sample has this margin
	_, _, err := Separable(Config{Examples: 1, Features: 1, Labels: 2,
		Margin: 1e6, Seed: 1})
	assert.Error(t, err)
}

func TestBest(t *testing.T) {
	label, margin := best([]float64{1, 3, 2.5})
	assert.Equal(t, 1, label)
	assert.InDelta(t, 0.5, margin, 1e-12)

	label, margin = best([]float64{2, 2})
	assert.Equal(t, 0, label)
	assert.Equal(t, 0.0, margin)
}

func TestSplit(t *testing.T) {
	data := make([]classification.Counter, 10)
	labels := make([]int, 10)
	for i := range data {
		data[i] = classification.Counter{"i": float64(i)}
		labels[i] = i
	}

	trainData, trainLabels, validData, validLabels, err := Split(data, labels,
		0.3)
	require.NoError(t, err)
	assert.Len(t, trainData, 7)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, trainLabels)
	assert.Len(t, validData, 3)
	assert.Equal(t, []int{7, 8, 9}, validLabels)

	_, _, validData, _, err = Split(data, labels, 0)
	require.NoError(t, err)
	assert.Empty(t, validData)

	_, _, _, _, err = Split(data, labels[:3], 0.5)
	assert.ErrorIs(t, err, classification.ErrLengthMismatch)

	_, _, _, _, err = Split(data, labels, 1.5)
	assert.Error(t, err)
}
