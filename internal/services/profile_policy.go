package services

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrUsernameEmpty     = errors.New("username is empty")
	ErrUsernameTooShort  = errors.New("username shorter than 4 characters")
	ErrUsernameHasSpaces = errors.New("username contains spaces")
	ErrFirstNameEmpty    = errors.New("first name is empty")
	ErrFirstNameTooShort = errors.New("first name shorter than 2 characters")
	ErrEmailEmpty        = errors.New("email is empty")
	ErrEmailInvalid      = errors.New("email is not a valid address")
)

func ValidateUsernameFormat(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameEmpty
	}
	if len([]rune(username)) < 4 {
		return ErrUsernameTooShort
	}
	if strings.Contains(username, " ") {
		return ErrUsernameHasSpaces
	}
	return nil
}

func ValidateFirstNameFormat(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameEmpty
	}
	if len([]rune(firstName)) < 2 {
		return ErrFirstNameTooShort
	}
	return nil
}

func ValidateEmailFormat(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailEmpty
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}
	return nil
}
