// Package validation holds input validation rules for user-supplied fields.
package validation

import (
	"errors"
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLen = 12
	maxPasswordLen = 128
	minUsernameLen = 3
	maxUsernameLen = 30
	maxEmailLen    = 254
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePassword enforces length and character-class requirements.
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLen {
		return errors.New("Password must be at least 12 characters long")
	}
	if length > maxPasswordLen {
		return errors.New("Password must be at most 128 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return errors.New("Password must contain uppercase, lowercase, digit, and special characters")
	}
	return nil
}

// ValidateUsername allows alphanumerics, underscores and dashes, with an
// alphanumeric first and last character.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return errors.New("Username must be between 3 and 30 characters")
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("Username may only contain letters, digits, underscores, and dashes, and must start and end with a letter or digit")
	}
	return nil
}

// ValidateEmail performs a pragmatic format check rather than full RFC 5322.
func ValidateEmail(email string) error {
	if len(email) > maxEmailLen {
		return errors.New("Email must be at most 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("Invalid email format")
	}
	return nil
}
