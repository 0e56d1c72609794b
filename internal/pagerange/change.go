package pagerange

import (
	"errors"
	"fmt"
)

// ErrRejected is returned by RequestPageChange for requests that must be ignored:
// the requested page is the current one or lies outside [1, totalPages].
// It is a no-op signal, not a failure; UIs drop it silently.
var ErrRejected = errors.New("page change rejected")

// Direction is the direction of an accepted page change.
type Direction int

const (
	// Next moves towards higher page numbers.
	Next Direction = iota + 1
	// Previous moves towards lower page numbers.
	Previous
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Transition is an accepted single-step page change.
type Transition struct {
	From      int       `json:"from"      yaml:"from"`
	NewPage   int       `json:"newPage"   yaml:"new_page"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// RequestPageChange validates a request to move from current to requested.
// It returns ErrRejected (wrapped with the offending values) when the request is a
// no-op or out of bounds; otherwise the transition and its direction.
func RequestPageChange(current, requested, totalPages int) (Transition, error) {
	switch {
	case requested == current:
		return Transition{}, fmt.Errorf("%w: already on page %d", ErrRejected, requested)
	case requested < firstPage || requested > totalPages:
		return Transition{}, fmt.Errorf("%w: page %d outside [1, %d]", ErrRejected, requested, totalPages)
	}

	dir := Previous
	if requested > current {
		dir = Next
	}

	return Transition{From: current, NewPage: requested, Direction: dir}, nil
}

// Outcome is the answer to a page change request for callers that report rejections
// instead of failing. A rejected request keeps the current page.
type Outcome struct {
	Accepted  bool   `json:"accepted"            yaml:"accepted"`
	NewPage   int    `json:"newPage"             yaml:"new_page"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Answer runs RequestPageChange and folds a rejection into the Outcome. The
// transition is only meaningful when the outcome is accepted.
func Answer(current, requested, totalPages int) (Outcome, Transition, error) {
	tr, err := RequestPageChange(current, requested, totalPages)
	switch {
	case errors.Is(err, ErrRejected):
		return Outcome{NewPage: current}, tr, err
	case err != nil:
		return Outcome{}, tr, err
	}
	return Outcome{Accepted: true, NewPage: tr.NewPage, Direction: tr.Direction.String()}, tr, nil
}
