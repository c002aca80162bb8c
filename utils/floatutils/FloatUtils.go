// Package floatutils provides utilities for working with floats
package floatutils

// ArgMax returns the index of the maximum value in a slice of float64.
// If multiple equal maximum values exist, the first one is returned.
// ArgMax returns -1 for an empty slice.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	idx := 0
	for i, value := range values {
		if value > values[idx] {
			idx = i
		}
	}
	return idx
}

// Min calculates and returns the minimum float64 in a list
func Min(floats ...float64) float64 {
	min := floats[0]
	for _, val := range floats {
		if val < min {
			min = val
		}
	}
	return min
}

// Max calculates and returns the maximum float64 in a list
func Max(floats ...float64) float64 {
	max := floats[0]
	for _, val := range floats {
		if val > max {
			max = val
		}
	}
	return max
}
