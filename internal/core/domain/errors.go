package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized  = errors.New("unauthorized access")
	ErrForbidden     = errors.New("forbidden access")
	ErrInvalidID     = errors.New("invalid id")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidClaims = errors.New("invalid claims")
)

// OperationError reports a failed data or provider operation. Message is the
// client-facing summary; Err is echoed back as the raw error.
type OperationError struct {
	Message string
	Err     error
}

// Fail wraps err as an OperationError. Client-fault sentinels pass through
// untouched so they keep their own status codes.
func Fail(message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrInvalidClaims) || errors.Is(err, ErrForbidden) {
		return err
	}
	return &OperationError{Message: message, Err: err}
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
