package tracker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "residuals.bin")

	s := NewSeries(filename)
	s.Track(1.5)
	TrackAll(s, []float64{0.25, 0})
	assert.Equal(t, []float64{1.5, 0.25, 0}, s.Data())

	require.NoError(t, s.Save())

	data, err := LoadData(filename)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0.25, 0}, data)
}

func TestSaveErrors(t *testing.T) {
	s := NewSeries(filepath.Join(t.TempDir(), "missing", "data.bin"))
	s.Track(1)
	assert.Error(t, s.Save())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadData(filepath.Join(dir, "missing.bin"))
	assert.Error(t, err)

	// An empty file holds no gob data
	empty := filepath.Join(dir, "empty.bin")
	require.NoError(t, NewSeries(empty).Save())
	data, err := LoadData(empty)
	require.NoError(t, err)
	assert.Empty(t, data)
}
