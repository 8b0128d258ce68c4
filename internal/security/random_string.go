package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Bearer tokens are 48 lowercase hex characters, the width of 24 random
// bytes. They carry no structure; the credential store resolves them by
// table lookup.
const (
	TokenLength   = 48
	tokenAlphabet = "0123456789abcdef"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// NewToken returns a fresh opaque bearer token.
func NewToken() (string, error) {
	return RandomString(TokenLength, tokenAlphabet)
}

// RandomString returns a cryptographically secure, unbiased string of the
// requested length drawn from the alphabet.
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
