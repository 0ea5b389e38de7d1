package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrUserNotFound     = errors.New("user not found")
)

var (
	ErrAlreadyBooked         = errors.New("you have already booked this activity")
	ErrFullyBooked           = errors.New("activity is fully booked")
	ErrCapacityBelowBookings = errors.New("capacity cannot be lower than the number of existing bookings")
	ErrEmailTaken            = errors.New("email is already registered")
)

var (
	ErrUnauthenticated    = errors.New("missing or invalid authorization header")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("admin access required")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrCapacityInvariant signals more bookings than seats; it is never a user-facing outcome.
var ErrCapacityInvariant = errors.New("capacity invariant violated")
