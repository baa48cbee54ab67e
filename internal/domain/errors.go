package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownField         = errors.New("unknown field")
	ErrInvalidPermutation   = errors.New("order is not a permutation of the section")
	ErrExportBlocked        = errors.New("export blocked by quality issues")
	ErrConfirmationRequired = errors.New("export requires confirmation")
	ErrExportInProgress     = errors.New("export already in progress")
	ErrExportFailed         = errors.New("export failed")
)

// Error pairs a sentinel with the message shown to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf returns an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
