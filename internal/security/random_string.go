package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// Ambiguous glyphs (0/O, 1/l/I) are left out so a temporary password can be
// read back over the phone.
const (
	passwordLetters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	passwordDigits  = "23456789"
)

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

// RandomTemporaryPassword returns a password of at least length characters
// that satisfies the sign-up policy: it always carries at least one digit.
func RandomTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	body, err := RandomString(length-1, passwordLetters+passwordDigits)
	if err != nil {
		return "", err
	}
	digit, err := RandomString(1, passwordDigits)
	if err != nil {
		return "", err
	}

	// The guaranteed digit goes to a random position.
	position, err := rand.Int(rand.Reader, big.NewInt(int64(length)))
	if err != nil {
		return "", err
	}
	at := int(position.Int64())
	return body[:at] + digit + body[at:], nil
}
