package models

import (
	"errors"
	"fmt"
)

// The error taxonomy of the ledger. Every error returned to API users
// wraps exactly one of these.
var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid data")
	ErrConflict         = errors.New("conflict")
	ErrConsistency      = errors.New("inconsistent transaction")
)

// ErrReferenceNotFound is returned when a write references a resource
// that does not exist.
var ErrReferenceNotFound = fmt.Errorf("%w resource referenced in your request", ErrResourceNotFound)

// IsDomainError reports if the error is part of the taxonomy and can be
// shown to the user as is.
func IsDomainError(err error) bool {
	for _, target := range []error{ErrResourceNotFound, ErrValidation, ErrConflict, ErrConsistency} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
