// Package errs holds the error kinds shared by the tracking domain.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks input the user can correct: negative goals,
	// negative batch totals, unknown weekdays, dates outside the editable range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageUnavailable marks a failed read or write against the store.
	// Callers may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Storage wraps err as ErrStorageUnavailable while keeping the original
// error reachable through errors.Is / errors.As.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
