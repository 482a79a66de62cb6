package service

import "errors"

var (
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotBookable        = errors.New("warehouse is not bookable")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrAlreadyPromoted    = errors.New("listing already promoted")
)
