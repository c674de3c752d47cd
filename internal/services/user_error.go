package services

import "fmt"

// UserError is a validation or wrapped-storage failure carrying the exact
// message a screen shows the user. Any other error escaping a service is an
// internal storage failure the caller did not anticipate.
type UserError struct {
	Message string
}

func (err *UserError) Error() string {
	return err.Message
}

func userErrorf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}
