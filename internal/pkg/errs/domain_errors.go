package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrSelfDeletion       = errors.New("a user cannot delete themself")
	ErrCurrentUserMissing = errors.New("current user is required")
	ErrInvalidOldPassword = errors.New("the old password is invalid")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoActiveReservation = errors.New("no reservation is available now")

	// Consumption errors
	ErrConsumptionNotFound = errors.New("consumption not found")

	// Payment errors
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAlreadyPending = errors.New("a pending payment already exists for this reservation")
	ErrPaymentAlreadyDone    = errors.New("the payment is already completed successfully")

	// File errors
	ErrFileNotFound = errors.New("file not found")

	// Security errors
	ErrForbidden = errors.New("forbidden")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
