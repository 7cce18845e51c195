// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package driver

import "fmt"

// State is the position of a run in the prompt sequence.
type State string

const (
	AwaitingFirstInput  State = "AWAITING_FIRST_INPUT"
	AwaitingSecondInput State = "AWAITING_SECOND_INPUT"
	Done                State = "DONE"
	Failed              State = "FAILED"
)

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s State) bool {
	return s == Done || s == Failed
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case AwaitingFirstInput:
		return to == AwaitingSecondInput || to == Failed
	case AwaitingSecondInput:
		return to == Done || to == Failed
	default:
		return false
	}
}

// transition moves the driver from its current state to to, rejecting
// transitions the prompt sequence does not allow.
func (d *Driver) transition(to State) error {
	from := d.state
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition: %s -> %s", from, to)
	}
	d.state = to
	d.logger.Debug("state transition", "from", from, "to", to)
	return nil
}
