package services

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrInvalidUsername        = errors.New("username must be 3-32 characters of letters, digits, dot, dash or underscore")
	ErrWeakPassword           = errors.New("password must be at least 8 characters with upper, lower case and a digit")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,32}$`)

func NormalizeUsername(raw string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))
	if !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}
	return username, nil
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username, err := NormalizeUsername(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if err != nil || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, password, nil
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < 8 {
		return ErrWeakPassword
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
