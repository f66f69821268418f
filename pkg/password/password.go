// Package password holds the credential rules shared by the sign-up and
// change-password flows.
package password

import (
	"errors"
	"unicode"
)

var (
	// ErrTooWeak is returned when a candidate password fails the strength rule.
	ErrTooWeak = errors.New("password must contain an uppercase character, a lowercase character, and a number")
	// ErrConfirmationMismatch is returned when the confirmation does not
	// match the candidate password exactly.
	ErrConfirmationMismatch = errors.New("confirmation does not match password")
)

// CheckStrength rejects a candidate password unless it contains at least one
// uppercase letter, one lowercase letter, and one digit. No minimum length is
// enforced beyond what the rule implies.
func CheckStrength(candidate string) error {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrTooWeak
	}
	return nil
}

// CheckConfirmation requires the confirmation to be character-for-character
// identical to the candidate. No trimming, case-sensitive.
func CheckConfirmation(candidate, confirmation string) error {
	if candidate != confirmation {
		return ErrConfirmationMismatch
	}
	return nil
}
