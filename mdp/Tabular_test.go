package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T) *Tabular[string, string] {
	t.Helper()

	m, err := NewTabular([]string{"a", "b", "end"}, []string{"left", "right"})
	require.NoError(t, err)

	require.NoError(t, m.SetTransition("a", "right", "b", 0.75, 1))
	require.NoError(t, m.SetTransition("a", "right", "a", 0.25, 0))
	require.NoError(t, m.SetTransition("b", "left", "a", 1, 0))
	require.NoError(t, m.SetTransition("b", "right", "end", 1, 10))
	require.NoError(t, m.SetTerminal("end"))

	return m
}

func TestNewTabularErrors(t *testing.T) {
	_, err := NewTabular([]string{}, []string{"a"})
	assert.Error(t, err)

	_, err = NewTabular([]string{"s"}, []string{})
	assert.Error(t, err)

	_, err = NewTabular([]string{"s", "s"}, []string{"a"})
	assert.Error(t, err)

	_, err = NewTabular([]string{"s"}, []string{"a", "a"})
	assert.Error(t, err)
}

func TestTabularPossibleActions(t *testing.T) {
	m := newChain(t)

	assert.Equal(t, []string{"right"}, m.PossibleActions("a"))
	assert.Equal(t, []string{"left", "right"}, m.PossibleActions("b"))
	assert.Empty(t, m.PossibleActions("end"))
	assert.Empty(t, m.PossibleActions("missing"))
}

func TestTabularTransitions(t *testing.T) {
	m := newChain(t)

	next := m.TransitionStatesAndProbs("a", "right")
	assert.Equal(t, []Transition[string]{{"a", 0.25}, {"b", 0.75}}, next)

	assert.Equal(t, 1.0, m.Reward("a", "right", "b"))
	assert.Equal(t, 10.0, m.Reward("b", "right", "end"))
	assert.Equal(t, 0.0, m.Reward("a", "left", "b"))
	assert.Equal(t, 0.0, m.Reward("missing", "left", "b"))

	assert.Nil(t, m.TransitionStatesAndProbs("missing", "right"))

	assert.True(t, m.IsTerminal("end"))
	assert.False(t, m.IsTerminal("a"))
	assert.False(t, m.IsTerminal("missing"))

	assert.Equal(t, []string{"a", "b", "end"}, m.States())
}

func TestTabularErrors(t *testing.T) {
	m := newChain(t)

	assert.ErrorIs(t, m.SetTransition("x", "left", "a", 1, 0),
		ErrUnknownState)
	assert.ErrorIs(t, m.SetTransition("a", "up", "a", 1, 0),
		ErrUnknownState)
	assert.ErrorIs(t, m.SetTransition("a", "left", "x", 1, 0),
		ErrUnknownState)
	assert.Error(t, m.SetTransition("a", "left", "b", 1.5, 0))
	assert.ErrorIs(t, m.SetTerminal("x"), ErrUnknownState)

	_, err := m.TransitionMatrix("up")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestTabularTransitionMatrixCopy(t *testing.T) {
	m := newChain(t)

	p, err := m.TransitionMatrix("right")
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.At(0, 1))

	p.Set(0, 1, 0)
	assert.Equal(t, []Transition[string]{{"a", 0.25}, {"b", 0.75}},
		m.TransitionStatesAndProbs("a", "right"))
}
