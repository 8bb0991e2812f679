package service

import (
	dErrors "dealerdesk/pkg/domain-errors"
	"dealerdesk/pkg/email"
)

// validateEmailChange checks the new address shape and, when a confirmation
// echo is supplied, that it is byte-identical. Rules run in order; the first
// failure is returned.
func validateEmailChange(newEmail, confirmEmail string) error {
	if !email.IsValid(newEmail) {
		return dErrors.New(dErrors.CodeInvalidInput, "newEmail must be a valid email address")
	}
	if confirmEmail != "" && confirmEmail != newEmail {
		return dErrors.New(dErrors.CodeInvalidInput, "confirmation does not match the new email")
	}
	return nil
}

// validatePassword enforces the server-side rule set: at least 8 characters
// with an uppercase letter, a lowercase letter, and a digit. The portal's
// strength meter also wants a special character; the server does not require
// one. Rules run in order; the first failure is returned.
func validatePassword(password string) error {
	if len(password) < 8 {
		return dErrors.New(dErrors.CodeInvalidInput, "password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		return dErrors.New(dErrors.CodeInvalidInput, "password must contain an uppercase letter")
	}
	if !hasLower {
		return dErrors.New(dErrors.CodeInvalidInput, "password must contain a lowercase letter")
	}
	if !hasDigit {
		return dErrors.New(dErrors.CodeInvalidInput, "password must contain a digit")
	}
	return nil
}
