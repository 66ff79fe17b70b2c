// Package validation holds the input format checks shared by the console
// menus and the HTTP handlers.
package validation

import (
	"regexp"
	"time"
	"unicode"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	timePattern  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsValidEmail reports whether the address has a plausible mailbox@domain
// shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword enforces the account password policy: at least 4 letters,
// 3 digits and 1 symbol, at most 20 characters total.
func IsValidPassword(password string) bool {
	runes := []rune(password)
	if len(runes) > 20 {
		return false
	}

	var letters, digits, symbols int
	for _, c := range runes {
		switch {
		case unicode.IsLetter(c):
			letters++
		case unicode.IsDigit(c):
			digits++
		default:
			symbols++
		}
	}

	return letters >= 4 && digits >= 3 && symbols >= 1
}

// IsValidTime reports whether s is a valid 24-hour "HH:MM" time.
func IsValidTime(s string) bool {
	if !timePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("15:04", NormalizeTime(s))
	return err == nil
}

// NormalizeTime zero-pads single-digit hours ("8:30" -> "08:30") so that
// normalized times compare correctly as strings.
func NormalizeTime(s string) string {
	if len(s) == 4 {
		return "0" + s
	}
	return s
}
