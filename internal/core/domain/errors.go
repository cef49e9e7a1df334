package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUnknownRole        = errors.New("unknown role")
	ErrSessionNotFound    = errors.New("session not found")

	ErrLayoutNotFound = errors.New("no dashboard layout saved")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("access forbidden")

	ErrSellerNotFound = errors.New("seller not found")
	ErrSellerExists   = errors.New("seller already exists")

	ErrUnknownCategory = errors.New("unknown vehicle category")
)

// StorageError reports a layout read or write failure, carrying the
// underlying driver message and, when available, a diagnostic detail.
// Absence of a record is never a StorageError; that is ErrLayoutNotFound.
type StorageError struct {
	Op      string // "read" or "write"
	Message string
	Detail  string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("layout %s failed: %s (%s)", e.Op, e.Message, e.Detail)
	}
	return fmt.Sprintf("layout %s failed: %s", e.Op, e.Message)
}

func (e *StorageError) Unwrap() error { return e.Err }
