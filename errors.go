package ledgertypes

import (
	"errors"
	"fmt"
)

// RejectError reports that the ledger refused a transaction. Code is
// the ledger's status code; zero is never used for a rejection.
type RejectError struct {
	Code   uint64
	Reason string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("transaction rejected (code %d): %s", e.Code, e.Reason)
}

// NewRejectError creates a new RejectError.
func NewRejectError(code uint64, reason string) *RejectError {
	return &RejectError{Code: code, Reason: reason}
}

// IsReject checks whether an error is a RejectError and returns it.
func IsReject(err error) (*RejectError, bool) {
	var r *RejectError
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
