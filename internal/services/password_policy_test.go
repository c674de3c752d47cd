package services

import (
	"errors"
	"testing"
)

func TestValidatePasswordPolicy_RejectsShortPasswords(t *testing.T) {
	for _, password := range []string{"", "a1", "abc12"} {
		if err := ValidatePasswordPolicy(password); !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordPolicy_RequiresADigit(t *testing.T) {
	for _, password := range []string{"abcdef", "longpassword", "!@#$%^"} {
		if err := ValidatePasswordPolicy(password); !errors.Is(err, ErrPasswordNoDigit) {
			t.Fatalf("expected ErrPasswordNoDigit for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordPolicy_AcceptsCompliantPasswords(t *testing.T) {
	for _, password := range []string{"abc123", "1abcde", "pass0word"} {
		if err := ValidatePasswordPolicy(password); err != nil {
			t.Fatalf("expected nil error for %q, got %v", password, err)
		}
	}
}
