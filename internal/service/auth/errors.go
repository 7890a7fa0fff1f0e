// Package auth provides password hashing and opaque bearer-token services.
package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the presented token does not match any
	// issued token.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the username/password pair did not
	// verify. Deliberately unspecific about which part was wrong.
	ErrInvalidCredentials = errors.New("unable to log in with provided credentials")
)
