// Package machine provides a minimal declarative state machine used to guard
// transitions on values that move through a fixed lifecycle.
package machine

import "errors"

// Allowable maps where a from state is allowed to transition to.
type Allowable[S comparable] struct {
	from S
	to   []S
}

// StateMachine validates transitions from a current state.
type StateMachine[S comparable] struct {
	fromState S
	toStates  []Allowable[S]
}

var ErrInvalidTransition = errors.New("invalid state transition")

// TransitionBuilder helps in creating a from-to relationship for state transitions.
type TransitionBuilder[S comparable] struct {
	transition Allowable[S]
}

func New[S comparable](currentState S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{fromState: currentState, toStates: transitions}
}

// From initializes a transition from a specific state.
func From[S comparable](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition.
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// ToState determines if the machine's current state can transition to s.
func (m *StateMachine[S]) ToState(s S) error {
	for _, transition := range m.toStates {
		if transition.from != m.fromState {
			continue
		}

		for _, candidate := range transition.to {
			if candidate == s {
				return nil
			}
		}
	}

	return ErrInvalidTransition
}
