// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Category sentinels. The HTTP layer maps these to status codes; services wrap
// them with condition-specific messages.
var (
	// ErrValidation indicates bad or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a quantity/availability invariant violation.
	ErrConflict = errors.New("conflict")

	// ErrGateRejected indicates a return image failed the authenticity or
	// similarity gate. Distinct from ErrValidation so callers can surface the
	// gate reason verbatim.
	ErrGateRejected = errors.New("gate rejected")

	// ErrUnauthorized indicates failed authentication or insufficient role.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable indicates a persistence layer failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Condition errors, each wrapping its category.
var (
	ErrToolNotFound   = fmt.Errorf("%w: tool not found", ErrNotFound)
	ErrRentalNotFound = fmt.Errorf("%w: rental not found", ErrNotFound)
	ErrLogNotFound    = fmt.Errorf("%w: log entry not found", ErrNotFound)

	ErrNoImage = fmt.Errorf("%w: no image provided", ErrValidation)

	ErrToolUnavailable     = fmt.Errorf("%w: tool is not available", ErrConflict)
	ErrDuplicateTool       = fmt.Errorf("%w: a tool with this name already exists", ErrConflict)
	ErrQuantityBelowRented = fmt.Errorf("%w: quantity cannot be set below currently rented count", ErrConflict)
	ErrAlreadyReturned     = fmt.Errorf("%w: rental has already been returned", ErrConflict)

	ErrSyntheticImage = fmt.Errorf("%w: image appears to be AI-generated and cannot be accepted", ErrGateRejected)
	ErrImageMismatch  = fmt.Errorf("%w: submitted image does not match the tool on record", ErrGateRejected)
)
