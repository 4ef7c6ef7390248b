package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrValidation           = errors.New("validation failed")
	ErrMaxBodySizeExceeded  = errors.New("max body size exceeded")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError reports one or more invalid fields under a single message.
func NewValidationError(message string, fields []FieldError) *ApiErr {
	return &ApiErr{
		StatusCode:  http.StatusBadRequest,
		message:     message,
		kind:        ErrValidation,
		FieldErrors: fields,
	}
}

func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		message:    "Malformed request body",
		kind:       ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName, message string) *ApiErr {
	return &ApiErr{
		StatusCode:  http.StatusBadRequest,
		message:     message,
		kind:        ErrMissingRequiredField,
		Field:       fieldName,
		FieldErrors: []FieldError{{Field: fieldName, Message: "is required"}},
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode:  http.StatusBadRequest,
		message:     fmt.Sprintf("Invalid %s", fieldName),
		kind:        ErrInvalidField,
		Field:       fieldName,
		FieldErrors: []FieldError{{Field: fieldName, Message: reason}},
	}
}

func NewMaxBodySizeExceededError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		message:    "Request body too large",
		kind:       ErrMaxBodySizeExceeded,
		Details:    fmt.Sprintf("Request body size exceeded maximum allowed size of %d bytes", maxSize),
		Field:      "body_size",
	}
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrMissingRequiredField) || errors.Is(err, ErrInvalidField)
}

func IsMaxBodySizeExceededError(err error) bool {
	return errors.Is(err, ErrMaxBodySizeExceeded)
}
