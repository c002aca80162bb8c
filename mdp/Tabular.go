package mdp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tabular is an MDP given explicitly by a transition matrix and a
// reward matrix per action. Row i of the transition matrix of action a
// holds the distribution over next states when taking a in state i.
//
// An action is legal in a state once some transition has been set for
// it, and terminal states have no legal actions.
type Tabular[S, A comparable] struct {
	states  []S
	actions []A

	stateIndex  map[S]int
	actionIndex map[A]int

	transitions []*mat.Dense
	rewards     []*mat.Dense
	terminal    []bool
}

// NewTabular returns a new Tabular MDP over the given states and
// actions with no transitions set
func NewTabular[S, A comparable](states []S, actions []A) (*Tabular[S, A],
	error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("newTabular: at least one state is required")
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("newTabular: at least one action is required")
	}

	stateIndex := make(map[S]int, len(states))
	for i, s := range states {
		if _, ok := stateIndex[s]; ok {
			return nil, fmt.Errorf("newTabular: duplicate state %v", s)
		}
		stateIndex[s] = i
	}

	actionIndex := make(map[A]int, len(actions))
	for i, a := range actions {
		if _, ok := actionIndex[a]; ok {
			return nil, fmt.Errorf("newTabular: duplicate action %v", a)
		}
		actionIndex[a] = i
	}

	n := len(states)
	transitions := make([]*mat.Dense, len(actions))
	rewards := make([]*mat.Dense, len(actions))
	for i := range actions {
		transitions[i] = mat.NewDense(n, n, nil)
		rewards[i] = mat.NewDense(n, n, nil)
	}

	return &Tabular[S, A]{
		states:      append([]S(nil), states...),
		actions:     append([]A(nil), actions...),
		stateIndex:  stateIndex,
		actionIndex: actionIndex,
		transitions: transitions,
		rewards:     rewards,
		terminal:    make([]bool, n),
	}, nil
}

// SetTransition sets the probability of moving to next when taking
// action in state, along with the reward for doing so
func (t *Tabular[S, A]) SetTransition(state S, action A, next S,
	probability, reward float64) error {
	i, a, err := t.index(state, action)
	if err != nil {
		return fmt.Errorf("setTransition: %w", err)
	}
	j, ok := t.stateIndex[next]
	if !ok {
		return fmt.Errorf("setTransition: next state %v: %w", next,
			ErrUnknownState)
	}
	if probability < 0 || probability > 1 {
		return fmt.Errorf("setTransition: probability %v not in [0, 1]",
			probability)
	}

	t.transitions[a].Set(i, j, probability)
	t.rewards[a].Set(i, j, reward)
	return nil
}

// SetTerminal marks a state as terminal
func (t *Tabular[S, A]) SetTerminal(state S) error {
	i, ok := t.stateIndex[state]
	if !ok {
		return fmt.Errorf("setTerminal: state %v: %w", state, ErrUnknownState)
	}
	t.terminal[i] = true
	return nil
}

// States implements the MDP interface
func (t *Tabular[S, A]) States() []S {
	return append([]S(nil), t.states...)
}

// PossibleActions returns the actions, in construction order, which
// have at least one transition set in state
func (t *Tabular[S, A]) PossibleActions(state S) []A {
	i, ok := t.stateIndex[state]
	if !ok || t.terminal[i] {
		return nil
	}

	var actions []A
	for a, action := range t.actions {
		if floats.Sum(t.transitions[a].RawRowView(i)) > 0 {
			actions = append(actions, action)
		}
	}
	return actions
}

// TransitionStatesAndProbs returns the next states with non-zero
// probability in construction order
func (t *Tabular[S, A]) TransitionStatesAndProbs(state S,
	action A) []Transition[S] {
	i, a, err := t.index(state, action)
	if err != nil {
		return nil
	}

	var next []Transition[S]
	for j, p := range t.transitions[a].RawRowView(i) {
		if p > 0 {
			next = append(next, Transition[S]{t.states[j], p})
		}
	}
	return next
}

// Reward implements the MDP interface. Unknown transitions have zero
// reward.
func (t *Tabular[S, A]) Reward(state S, action A, next S) float64 {
	i, a, err := t.index(state, action)
	if err != nil {
		return 0
	}
	j, ok := t.stateIndex[next]
	if !ok {
		return 0
	}
	return t.rewards[a].At(i, j)
}

// IsTerminal implements the MDP interface
func (t *Tabular[S, A]) IsTerminal(state S) bool {
	i, ok := t.stateIndex[state]
	return ok && t.terminal[i]
}

// TransitionMatrix returns a copy of the transition matrix of action
func (t *Tabular[S, A]) TransitionMatrix(action A) (*mat.Dense, error) {
	a, ok := t.actionIndex[action]
	if !ok {
		return nil, fmt.Errorf("transitionMatrix: action %v: %w", action,
			ErrUnknownState)
	}
	return mat.DenseCopyOf(t.transitions[a]), nil
}

func (t *Tabular[S, A]) index(state S, action A) (int, int, error) {
	i, ok := t.stateIndex[state]
	if !ok {
		return 0, 0, fmt.Errorf("state %v: %w", state, ErrUnknownState)
	}
	a, ok := t.actionIndex[action]
	if !ok {
		return 0, 0, fmt.Errorf("action %v: %w", action, ErrUnknownState)
	}
	return i, a, nil
}
