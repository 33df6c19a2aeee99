// Package usecase implements the business logic for the farmer feature.
package usecase

import "errors"

var (
	// ErrFarmerNotFound is returned when a farmer profile cannot be found by ID.
	ErrFarmerNotFound = errors.New("farmer not found")
)
