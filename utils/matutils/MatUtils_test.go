package matutils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestFormatPrecision(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{0.123456, 1, math.NaN(), -2.556})

	formatted := FormatPrecision(X, 2)
	assert.Contains(t, formatted, "0.12")
	assert.Contains(t, formatted, "-2.56")
	assert.Contains(t, formatted, "NaN")
	assert.NotContains(t, formatted, "0.123456")
	assert.Len(t, strings.Split(formatted, "\n"), 2)

	// The argument is left unchanged
	assert.Equal(t, 0.123456, X.At(0, 0))
}

func TestFormat(t *testing.T) {
	X := mat.NewDense(1, 3, []float64{1, 2, 3})
	assert.Equal(t, "[1  2  3]", Format(X))
}
