package usecase

import "errors"

// Request-rejection errors. All are caller-correctable, none are fatal to
// the serving process. Handlers map them to HTTP status codes.
var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrCapacityExceeded = errors.New("guest count exceeds venue capacity")
	ErrDateUnavailable  = errors.New("venue is not available on this date")
	ErrInvalidDate      = errors.New("invalid date")

	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadySaved    = errors.New("venue already saved")
	ErrNotPending      = errors.New("booking is not pending")
	ErrForbidden       = errors.New("not allowed")
)
