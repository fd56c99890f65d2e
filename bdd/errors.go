package bdd

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every InvariantError produced by this package.
var ErrInvariant = errors.New("bdd: invariant violated")

// InvariantError reports a breach of one of the ROBDD invariants (I1-I3)
// during make_node or ite. This is always a programmer error: a correctly
// driven BDD can never observe one, so the package panics with this type
// rather than returning it, matching the "fail loud" contract for internal
// invariant breaches.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string { return e.Err.Error() }
func (e *InvariantError) Unwrap() error { return e.Err }

func invariantBreach(format string, args ...interface{}) {
	panic(&InvariantError{Err: fmt.Errorf(format, args...)})
}
