// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an email is already registered to another user.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidPassword is returned when the password does not match the stored credential.
	ErrInvalidPassword = errors.New("invalid password")
)
