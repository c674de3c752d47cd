package services

import (
	"errors"
	"testing"
)

func TestValidateUsernameFormat(t *testing.T) {
	testCases := []struct {
		username string
		expected error
	}{
		{"", ErrUsernameEmpty},
		{"   ", ErrUsernameEmpty},
		{"abc", ErrUsernameTooShort},
		{"ann 23", ErrUsernameHasSpaces},
		{"ann23", nil},
	}

	for _, testCase := range testCases {
		if err := ValidateUsernameFormat(testCase.username); !errors.Is(err, testCase.expected) {
			t.Fatalf("username %q: expected %v, got %v", testCase.username, testCase.expected, err)
		}
	}
}

func TestValidateFirstNameFormat(t *testing.T) {
	testCases := []struct {
		firstName string
		expected  error
	}{
		{"", ErrFirstNameEmpty},
		{" ", ErrFirstNameEmpty},
		{"A", ErrFirstNameTooShort},
		{"Ann", nil},
	}

	for _, testCase := range testCases {
		if err := ValidateFirstNameFormat(testCase.firstName); !errors.Is(err, testCase.expected) {
			t.Fatalf("first name %q: expected %v, got %v", testCase.firstName, testCase.expected, err)
		}
	}
}

func TestValidateEmailFormat(t *testing.T) {
	testCases := []struct {
		email    string
		expected error
	}{
		{"", ErrEmailEmpty},
		{"not-an-email", ErrEmailInvalid},
		{"ann@", ErrEmailInvalid},
		{"ann@x.com", nil},
	}

	for _, testCase := range testCases {
		if err := ValidateEmailFormat(testCase.email); !errors.Is(err, testCase.expected) {
			t.Fatalf("email %q: expected %v, got %v", testCase.email, testCase.expected, err)
		}
	}
}
