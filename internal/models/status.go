package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	ErrUnknownKind   = errors.New("unknown project kind")
)

// Status is shared by projects and tasks. No transition rules are enforced.
type Status string

const (
	StatusComplete  Status = "complete"
	StatusActive    Status = "active"
	StatusTodo      Status = "todo"
	StatusHold      Status = "hold"
	StatusDiscarded Status = "discarded"
)

// Statuses returns every known status.
func Statuses() []Status {
	return []Status{StatusComplete, StatusActive, StatusTodo, StatusHold, StatusDiscarded}
}

// ParseStatus converts user input to a Status
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w %q (use: complete, active, todo, hold, discarded)", ErrUnknownStatus, s)
}

// Next returns the status that follows s in the board's cycle order.
// Unknown values start over at todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusActive
	case StatusActive:
		return StatusHold
	case StatusHold:
		return StatusComplete
	case StatusComplete:
		return StatusDiscarded
	default:
		return StatusTodo
	}
}

// Kind distinguishes bounded projects (arcs) from recurring ones (cycles).
type Kind string

const (
	KindBounded   Kind = "arc"
	KindRecurring Kind = "cycle"
)

// ParseKind accepts arc/bounded and cycle/recurring, in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arc", "bounded":
		return KindBounded, nil
	case "cycle", "recurring":
		return KindRecurring, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}
