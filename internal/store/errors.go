package store

import "errors"

// Sentinel errors for the taxonomy the handlers map to HTTP statuses.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProductNotFound    = errors.New("product not found")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
)
