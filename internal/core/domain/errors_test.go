package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrAuthRequired", ErrAuthRequired},
		{"ErrAuthInvalid", ErrAuthInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	errs := []error{ErrNotFound, ErrInvalidInput, ErrAuthRequired, ErrAuthInvalid}
	for i, a := range errs {
		for j, b := range errs {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestTransportError(t *testing.T) {
	err := &TransportError{Platform: PlatformLingualeo, StatusCode: 502, URL: "https://api.lingualeo.com/addword"}

	assert.Equal(t, "lingualeo: invalid status code 502 for url https://api.lingualeo.com/addword", err.Error())

	wrapped := fmt.Errorf("add word: %w", err)
	assert.True(t, IsTransport(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsAuth(wrapped))

	var te *TransportError
	assert.True(t, errors.As(wrapped, &te))
	assert.Equal(t, 502, te.StatusCode)
}

func TestValidationError(t *testing.T) {
	cause := errors.New("missing property 'data'")
	err := &ValidationError{Platform: PlatformSkyeng, Schema: "wordsets", Err: cause}

	assert.Contains(t, err.Error(), "skyeng")
	assert.Contains(t, err.Error(), "wordsets")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsValidation(fmt.Errorf("list word sets: %w", err)))
	assert.False(t, IsTransport(err))
}

func TestPlatformError(t *testing.T) {
	err := &PlatformError{Platform: PlatformLingualeo, Op: "addword", Message: "word is too long"}

	assert.Equal(t, "lingualeo: addword: word is too long", err.Error())
	assert.Nil(t, errors.Unwrap(err))
	assert.False(t, IsAuth(err))
}

func TestNewAuthError(t *testing.T) {
	err := NewAuthError(PlatformSkyeng, "csrf token not found")

	assert.Equal(t, "skyeng: auth: csrf token not found", err.Error())
	assert.ErrorIs(t, err, ErrAuthInvalid)
	assert.True(t, IsAuth(fmt.Errorf("authenticate source: %w", err)))
}

func TestIsAuth_Required(t *testing.T) {
	err := fmt.Errorf("%w: call Authenticate first", ErrAuthRequired)

	assert.True(t, IsAuth(err))
	assert.False(t, IsAuth(ErrNotFound))
	assert.False(t, IsAuth(nil))
}
