// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// FormatPrecision formats a matrix for printing with each element
// rounded to the given number of decimal places. Elements which are
// NaN are printed as is, which allows callers to mark cells that carry
// no value.
func FormatPrecision(X mat.Matrix, places int) string {
	r, c := X.Dims()
	rounded := mat.NewDense(r, c, nil)
	scale := math.Pow(10, float64(places))

	rounded.Apply(func(_, _ int, v float64) float64 {
		if math.IsNaN(v) {
			return v
		}
		return math.Round(v*scale) / scale
	}, X)

	return Format(rounded)
}
