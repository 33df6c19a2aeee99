// Package domain defines domain-level errors for the market feature.
package domain

import "errors"

// Domain errors for the market intelligence pipeline.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrSourceNotFound indicates that no price source exists for the requested
	// (region, commodity) pair. Distinct from a discovered source with zero rows.
	ErrSourceNotFound = errors.New("no price source for region and commodity")

	// ErrInsufficientData indicates that a known pair has zero price records.
	// Derivations degrade to neutral defaults instead of failing, but the
	// series builder refuses to proceed on truly empty input.
	ErrInsufficientData = errors.New("no price records available")

	// ErrValidation indicates that caller-supplied parameters (days, page,
	// page_size) are outside their declared bounds. Rejected before any
	// computation begins.
	ErrValidation = errors.New("invalid request parameter")
)
