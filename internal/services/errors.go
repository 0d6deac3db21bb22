package services

import "errors"

// Sentinel errors returned by the services. Handlers translate these to
// HTTP status codes with errors.Is; anything else is an internal failure.
var (
	// ErrValidation marks malformed or missing input, rejected before any
	// store mutation is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrEmailRegistered is returned when registering an email that already
	// has an account.
	ErrEmailRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure. It is the same
	// whether the email is unknown or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers bad signatures, malformed tokens and tokens
	// whose user no longer exists.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for a correctly signed token past its
	// expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrAlreadyFavorite is returned when the user already has a favorite
	// with the exact same coordinates string.
	ErrAlreadyFavorite = errors.New("location already in favorites")
)
