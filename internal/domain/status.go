package domain

import "fmt"

// Status is the booking lifecycle state. A booking always starts at
// StatusPending; StatusCompleted and StatusCancelled are terminal.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Forward moves only: a booking may skip processing and complete directly,
// but nothing leaves a terminal state and nothing moves backwards.
var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

type InvalidTransitionError struct {
	From, To Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}

// ParseStatus validates a raw form value against the known states.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// CanTransition reports whether moving from -> to is allowed by the
// lifecycle table. Self-transitions are rejected along with everything
// else not listed.
func (from Status) CanTransition(to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns to when the move is legal, or a typed error the
// caller can surface without leaking internals.
func (from Status) Transition(to Status) (Status, error) {
	if !from.CanTransition(to) {
		return from, &InvalidTransitionError{From: from, To: to}
	}
	return to, nil
}
