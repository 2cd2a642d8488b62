package store

import "errors"

var (
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrWindowNotSynced     = errors.New("requested dates are not in the synced window")
)
