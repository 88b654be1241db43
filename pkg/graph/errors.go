package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrSelfLoop     = errors.New("self-loop rejected")
	ErrEmptyID      = errors.New("empty node identity")
)

// Error provides structured error information for graph operations.
type Error struct {
	Op     string // Operation that failed (e.g., "AddNode", "AddEdgeWeight")
	Entity string // Entity type ("node" or "edge")
	ID     string // Entity identity (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}
