package domain

import "fmt"

// Credentials is a username/password pair for one platform.
type Credentials struct {
	Username string
	Password string
}

// Validate checks both fields are present.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// String hides the password so credentials are safe to log.
func (c Credentials) String() string {
	return fmt.Sprintf("%s:****", c.Username)
}
