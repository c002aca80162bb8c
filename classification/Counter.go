package classification

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Counter is a sparse vector mapping feature names to values. Missing
// features have value 0.
type Counter map[string]float64

// Keys returns the feature names of the Counter in sorted order
func (c Counter) Keys() []string {
	return slices.Sorted(maps.Keys(c))
}

// Copy returns a copy of the Counter
func (c Counter) Copy() Counter {
	return maps.Clone(c)
}

// Dot returns the dot product of two Counters. Terms are summed in
// sorted feature order so that the result does not depend on map
// iteration order.
func (c Counter) Dot(other Counter) float64 {
	small, large := c, other
	if len(large) < len(small) {
		small, large = large, small
	}

	dot := 0.0
	for _, key := range small.Keys() {
		if v, ok := large[key]; ok {
			dot += small[key] * v
		}
	}
	return dot
}

// Add adds other to the Counter in place
func (c Counter) Add(other Counter) {
	c.AddScaled(other, 1)
}

// Sub subtracts other from the Counter in place
func (c Counter) Sub(other Counter) {
	c.AddScaled(other, -1)
}

// AddScaled adds scale * other to the Counter in place
func (c Counter) AddScaled(other Counter, scale float64) {
	for key, v := range other {
		c[key] += scale * v
	}
}

// Scaled returns a new Counter with every value multiplied by scale
func (c Counter) Scaled(scale float64) Counter {
	scaled := make(Counter, len(c))
	for key, v := range c {
		scaled[key] = scale * v
	}
	return scaled
}

// TopFeatures returns the names of the n features with the largest
// values in descending order of value. Features with equal values are
// ordered by name. If n exceeds the number of features, all features
// are returned.
func (c Counter) TopFeatures(n int) []string {
	keys := c.Keys()

	values := make([]float64, len(keys))
	for i, key := range keys {
		values[i] = -c[key]
	}
	inds := make([]int, len(keys))
	floats.ArgsortStable(values, inds)

	n = min(max(n, 0), len(keys))
	top := make([]string, n)
	for i := range top {
		top[i] = keys[inds[i]]
	}
	return top
}
