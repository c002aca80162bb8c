// Package tracker implements Trackers, which record a series of values
// produced by an algorithm and save them to disk
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Tracker keeps track of a series of values and saves them once the
// algorithm producing them has finished
type Tracker interface {
	Track(value float64)
	Save() error
}

// Series is a Tracker which saves every tracked value, in order, as a
// gob-encoded []float64
type Series struct {
	data     []float64
	filename string
}

// NewSeries returns a new Series which saves its data at filename
func NewSeries(filename string) *Series {
	return &Series{filename: filename}
}

// Track caches value to be saved later
func (s *Series) Track(value float64) {
	s.data = append(s.data, value)
}

// Data returns a copy of the values tracked so far
func (s *Series) Data() []float64 {
	return append([]float64(nil), s.data...)
}

// Save saves the tracked values to disk
func (s *Series) Save() error {
	file, err := os.Create(s.filename)
	if err != nil {
		return fmt.Errorf("save: could not create save file: %w", err)
	}
	defer file.Close()

	enc := gob.NewEncoder(file)
	if err := enc.Encode(s.data); err != nil {
		return fmt.Errorf("save: could not encode data: %w", err)
	}
	return file.Close()
}

// TrackAll tracks each value in turn
func TrackAll(t Tracker, values []float64) {
	for _, v := range values {
		t.Track(v)
	}
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}
