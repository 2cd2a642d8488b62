package source

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
)

// AccessError reports a failed call to an account source. StatusCode is zero
// for transport failures.
type AccessError struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *AccessError) Error() string {
	msg := fmt.Sprintf("account source %s failed", e.Op)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// NewStatusError maps an HTTP status onto the sentinel errors above.
func NewStatusError(op string, status int, detail string) *AccessError {
	var err error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		err = ErrUnauthorized
	case http.StatusNotFound:
		err = ErrNotFound
	case http.StatusTooManyRequests:
		err = ErrRateLimited
	}
	return &AccessError{Op: op, StatusCode: status, Detail: detail, Err: err}
}
