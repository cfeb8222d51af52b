package domain

import (
	"errors"
	"fmt"
)

// ErrSnapshotNotFound is returned when a named snapshot cannot be found
// in a store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// NotFoundError reports a caller-supplied id that does not resolve in
// the graph (start state, target state, intermediate state).
type NotFoundError struct {
	Kind string // e.g. "start state", "target state"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.ID)
}

// ValidationError reports malformed caller input (empty condition,
// non-positive partition count, ...). It wraps an underlying sentinel
// where one exists.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
