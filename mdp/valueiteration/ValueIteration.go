// Package valueiteration implements the value iteration planning
// algorithm for finite MDPs.
//
// The agent runs a fixed number of synchronous sweeps when it is
// created. Each sweep computes the new value of every state from the
// values of the previous sweep only, so the result does not depend on
// the order in which states are enumerated.
package valueiteration

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/goai/mdp"
	"github.com/samuelfneumann/goai/utils/floatutils"
	"go.uber.org/zap"
)

// ValueIteration is a planning agent holding the state values computed
// by value iteration and the greedy policy with respect to them
type ValueIteration[S comparable, A any] struct {
	m         mdp.MDP[S, A]
	discount  float64
	values    map[S]float64
	residuals []float64
}

// New creates a new ValueIteration agent and runs cfg.Iterations sweeps
// of value iteration over m. If logger is nil, nothing is logged.
func New[S comparable, A any](m mdp.MDP[S, A], cfg Config,
	logger *zap.Logger) (*ValueIteration[S, A], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	v := &ValueIteration[S, A]{
		m:         m,
		discount:  cfg.Discount,
		values:    make(map[S]float64),
		residuals: make([]float64, 0, cfg.Iterations),
	}

	states := m.States()
	for i := 0; i < cfg.Iterations; i++ {
		next := make(map[S]float64, len(states))
		residual := 0.0

		for _, state := range states {
			value := v.backup(state)
			next[state] = value
			residual = floatutils.Max(residual, math.Abs(value-v.values[state]))
		}

		v.values = next
		v.residuals = append(v.residuals, residual)
		logger.Debug("sweep", zap.Int("iteration", i+1),
			zap.Float64("residual", residual))
	}

	logger.Info("value iteration finished",
		zap.Int("states", len(states)),
		zap.Int("iterations", cfg.Iterations),
		zap.Float64("discount", cfg.Discount))

	return v, nil
}

// backup returns the maximum action value of state with respect to the
// current values, or 0 if no action can be taken
func (v *ValueIteration[S, A]) backup(state S) float64 {
	if v.m.IsTerminal(state) {
		return 0
	}

	actions := v.m.PossibleActions(state)
	if len(actions) == 0 {
		return 0
	}

	max := math.Inf(-1)
	for _, action := range actions {
		max = math.Max(max, v.QValue(state, action))
	}
	return max
}

// Value returns the value of state. States which were never swept have
// value 0.
func (v *ValueIteration[S, A]) Value(state S) float64 {
	return v.values[state]
}

// Values returns a copy of the values of all states
func (v *ValueIteration[S, A]) Values() map[S]float64 {
	values := make(map[S]float64, len(v.values))
	for s, value := range v.values {
		values[s] = value
	}
	return values
}

// QValue returns the value of taking action in state and acting
// greedily afterwards
func (v *ValueIteration[S, A]) QValue(state S, action A) float64 {
	q := 0.0
	for _, t := range v.m.TransitionStatesAndProbs(state, action) {
		reward := v.m.Reward(state, action, t.State)
		q += t.Probability * (reward + v.discount*v.values[t.State])
	}
	return q
}

// Policy returns the greedy action in state. Ties go to the action
// listed first by the MDP. The boolean is false when the state is
// terminal or has no legal actions.
func (v *ValueIteration[S, A]) Policy(state S) (A, bool) {
	var none A
	if v.m.IsTerminal(state) {
		return none, false
	}

	actions := v.m.PossibleActions(state)
	if len(actions) == 0 {
		return none, false
	}

	q := make([]float64, len(actions))
	for i, action := range actions {
		q[i] = v.QValue(state, action)
	}
	return actions[floatutils.ArgMax(q)], true
}

// Action returns the action to take in state, which is the greedy
// action of Policy
func (v *ValueIteration[S, A]) Action(state S) (A, bool) {
	return v.Policy(state)
}

// Residuals returns the largest absolute change in value over all
// states for each sweep that was run
func (v *ValueIteration[S, A]) Residuals() []float64 {
	return append([]float64(nil), v.residuals...)
}
