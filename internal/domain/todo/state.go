package todo

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned by ParseState for names outside the State set.
var ErrUnknownState = errors.New("unknown todo state")

// State represents where a Todo is in its lifecycle. The underlying string is
// the canonical name used in JSON responses and stored records.
type State string

const (
	StateNotStarted State = "NotStarted"
	StateInProgress State = "InProgress"
	StatePaused     State = "Paused"
	StateCompleted  State = "Completed"
	StateFailed     State = "Failed"
)

// States lists every valid State in declaration order.
func States() []State {
	return []State{StateNotStarted, StateInProgress, StatePaused, StateCompleted, StateFailed}
}

// ParseState maps a canonical name back to its State. Matching is exact and
// case sensitive; anything else returns ErrUnknownState.
func ParseState(name string) (State, error) {
	s := State(name)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	return s, nil
}

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StateNotStarted, StateInProgress, StatePaused, StateCompleted, StateFailed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler. Invalid states fail to
// marshal so they can never reach a response or a stored record.
func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseState.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
