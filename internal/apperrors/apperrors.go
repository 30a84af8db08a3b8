// Package apperrors defines the error taxonomy of the synthesizer: input
// validation failures reported to the outside before the core ever runs,
// and invariant violations that signal a bug in the search engine itself.
package apperrors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind distinguishes the two error categories the core cares about.
type Kind string

const (
	// Validation marks a bad target/flag combination. Reported to the
	// outside and the process exits before any search node is created.
	Validation Kind = "ValidationError"
	// Invariant marks a broken structural guarantee (a hole or loop-stack
	// target could not be found). Only reachable via a bug.
	Invariant Kind = "InvariantError"
)

// Error carries a Kind, a message, and enough context to point at the
// offending node without any notion of source line/column. There is no
// source text in this domain, only a target and a node id.
type Error struct {
	Kind    Kind
	Message string
	NodeID  int64 // 0 when not applicable
}

func (e *Error) Error() string {
	if e.NodeID != 0 {
		return fmt.Sprintf("%s: %s (node %d)", e.Kind, e.Message, e.NodeID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewValidation builds a Validation error for a bad CLI/target input.
func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NewInvariant builds an Invariant error, tagging the node id that failed
// to resolve (a missing replace_hole target or loop-stack frame target).
func NewInvariant(nodeID int64, format string, args ...any) *Error {
	return &Error{Kind: Invariant, Message: fmt.Sprintf(format, args...), NodeID: nodeID}
}

// Wrap annotates an I/O-originated validation failure (an unreadable
// --journal path, for instance) with a stack-carrying cause, instead of
// inventing a second taxonomy for ambient plumbing errors.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, format, args...)
}

// IsInvariant reports whether err is an Invariant-kind Error.
func IsInvariant(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == Invariant
	}
	return false
}
