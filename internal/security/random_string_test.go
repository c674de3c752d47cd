package security

import (
	"strings"
	"testing"
	"unicode"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	const alphabet = "abc123"

	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected length 32, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q escaped the alphabet", char)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("expected empty string for zero length, got %q err=%v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatal("expected error for negative length")
	}
	if _, err := RandomString(5, ""); err == nil {
		t.Fatal("expected error for empty alphabet")
	}
}

func TestRandomTemporaryPasswordAlwaysCarriesADigit(t *testing.T) {
	for i := 0; i < 50; i++ {
		password, err := RandomTemporaryPassword(12)
		if err != nil {
			t.Fatalf("temporary password: %v", err)
		}
		if len(password) != 12 {
			t.Fatalf("expected length 12, got %q", password)
		}
		hasDigit := false
		for _, char := range password {
			if unicode.IsDigit(char) {
				hasDigit = true
				break
			}
		}
		if !hasDigit {
			t.Fatalf("password %q has no digit", password)
		}
	}
}

func TestRandomTemporaryPasswordEnforcesMinimumLength(t *testing.T) {
	password, err := RandomTemporaryPassword(3)
	if err != nil {
		t.Fatalf("temporary password: %v", err)
	}
	if len(password) < 8 {
		t.Fatalf("expected at least 8 characters, got %q", password)
	}
}
