package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinTemporaryPasswordLength = 12
	temporaryPasswordAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

var ErrPasswordMismatch = errors.New("password mismatch")

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword returns ErrPasswordMismatch when password does not match
// hash.
func ComparePassword(hash string, password string) error {
	if strings.TrimSpace(hash) == "" {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// TemporaryPassword draws an unambiguous mixed-case password from a
// cryptographic source. It always contains an upper case letter, a lower case
// letter and a digit.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	for {
		candidate, err := randomString(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if strings.ContainsAny(candidate, "ABCDEFGHJKLMNPQRSTUVWXYZ") &&
			strings.ContainsAny(candidate, "abcdefghijkmnopqrstuvwxyz") &&
			strings.ContainsAny(candidate, "23456789") {
			return candidate, nil
		}
	}
}

func randomString(length int, alphabet string) (string, error) {
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
