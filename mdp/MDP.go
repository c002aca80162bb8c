// Package mdp defines finite Markov decision processes and an explicit
// tabular implementation of them.
package mdp

import "errors"

var (
	// ErrUnknownState is returned when a state or action is not part of
	// a model
	ErrUnknownState = errors.New("mdp: unknown state or action")

	// ErrInvalidDiscount is returned when a discount factor falls
	// outside [0, 1]
	ErrInvalidDiscount = errors.New("mdp: discount must be in [0, 1]")
)

// Transition is a possible next state together with the probability
// of transitioning to it
type Transition[S comparable] struct {
	State       S
	Probability float64
}

// MDP describes a finite Markov decision process with states of type
// S and actions of type A.
//
// Implementations must enumerate States and PossibleActions in the
// same order on every call, since solvers break ties between actions
// by that order.
type MDP[S comparable, A any] interface {
	// States returns every state of the process
	States() []S

	// PossibleActions returns the legal actions in a state. Terminal
	// states have no legal actions.
	PossibleActions(state S) []A

	// TransitionStatesAndProbs returns the distribution over next
	// states when taking action in state
	TransitionStatesAndProbs(state S, action A) []Transition[S]

	// Reward returns the reward for the transition
	// (state, action, next)
	Reward(state S, action A, next S) float64

	IsTerminal(state S) bool
}
