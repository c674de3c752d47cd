package services

import (
	"errors"
	"unicode"
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordNoDigit  = errors.New("password must contain at least one number")
)

// ValidatePasswordPolicy enforces the sign-up password rules: at least six
// characters, at least one digit.
func ValidatePasswordPolicy(password string) error {
	if len([]rune(password)) < 6 {
		return ErrPasswordTooShort
	}
	for _, char := range password {
		if unicode.IsDigit(char) {
			return nil
		}
	}
	return ErrPasswordNoDigit
}
