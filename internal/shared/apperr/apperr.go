// Package apperr defines error kinds shared across features.
// Feature packages wrap these so that transport code can map them with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation error")

	// ErrPersistence indicates that the record store failed.
	ErrPersistence = errors.New("persistence error")

	// ErrCrypto indicates that key derivation or random salt generation failed.
	ErrCrypto = errors.New("crypto error")
)

// Validation returns an error wrapping ErrValidation with a human-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Persistence wraps a store failure for the named operation.
func Persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Crypto wraps a failure of the key derivation machinery.
func Crypto(err error) error {
	return fmt.Errorf("%w: %w", ErrCrypto, err)
}

// Reason strips the kind prefix from a validation error so the message can be shown to clients.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	prefix := ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
