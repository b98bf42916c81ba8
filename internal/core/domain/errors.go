package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication Errors.

	// ErrAuthRequired indicates a session call was made before authentication succeeded.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the platform rejected the credentials
	// or the login handshake could not be completed.
	ErrAuthInvalid = errors.New("authentication invalid")
)

// Platform names used in error messages and logs.
const (
	PlatformSkyeng    = "skyeng"
	PlatformLingualeo = "lingualeo"
)

// TransportError reports an HTTP response whose status was not 200.
type TransportError struct {
	Platform   string
	StatusCode int
	URL        string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: invalid status code %d for url %s", e.Platform, e.StatusCode, e.URL)
}

// ValidationError reports a response body that does not match the
// schema expected for its endpoint.
type ValidationError struct {
	Platform string
	Schema   string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: response does not match %s schema: %v", e.Platform, e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PlatformError reports an operation the platform explicitly refused,
// such as rejected credentials or a non-empty error message.
type PlatformError struct {
	Platform string
	Op       string
	Message  string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Platform, e.Op, e.Message)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewAuthError returns a PlatformError that matches ErrAuthInvalid.
func NewAuthError(platform, message string) *PlatformError {
	return &PlatformError{
		Platform: platform,
		Op:       "auth",
		Message:  message,
		Err:      ErrAuthInvalid,
	}
}

// IsTransport reports whether err is or wraps a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuthInvalid) || errors.Is(err, ErrAuthRequired)
}
