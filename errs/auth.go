package errs

import (
	"errors"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing access token")
	ErrInvalidToken       = errors.New("invalid or expired access token")
)

// NewInvalidCredentialsError is returned for an unknown username and for a
// wrong password alike.
func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		message:    "Invalid credentials",
		kind:       ErrInvalidCredentials,
		Field:      "credentials",
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		message:    "Access token required",
		kind:       ErrMissingToken,
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		message:    "Invalid or expired token",
		kind:       ErrInvalidToken,
		Field:      "authorization",
		Cause:      cause,
	}
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
