// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrAccountNotFound is returned when an account cannot be found by mobile or ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrMobileAlreadyExists is returned when attempting to create an account with a mobile number that already exists.
	ErrMobileAlreadyExists = errors.New("mobile number already exists")
)
