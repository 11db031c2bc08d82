package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownSession is returned when the session id does not name a live
// session (never created, already abandoned, or its result already claimed).
var ErrUnknownSession = errors.New("unknown session")

// StateViolationError reports caller misuse: an operation that is illegal
// for the session's current state, such as an out-of-order answer or a
// submission after completion. It is surfaced directly and never retried.
type StateViolationError struct {
	SessionID uuid.UUID
	State     State
	Op        string
	Reason    string
}

func (e *StateViolationError) Error() string {
	return fmt.Sprintf("session %s: %s rejected in state %s: %s", e.SessionID, e.Op, e.State, e.Reason)
}

// IsStateViolation reports whether err is a StateViolationError.
func IsStateViolation(err error) bool {
	var sv *StateViolationError
	return errors.As(err, &sv)
}
