// Package validation implements the client-side form rules for the login
// and signup screens. All functions are pure; failures come back as
// per-field messages, never as errors.
package validation

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrorSet maps a form field to its validation message. Every field
// checked by a validator is present; clean fields carry an empty string.
type ErrorSet map[string]string

// HasErrors reports whether any field carries a non-empty message.
func (e ErrorSet) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// ValidateEmail reports whether email looks like local@domain.tld.
// No trimming or case folding is applied; whitespace handling is the
// caller's responsibility.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword enforces the signup password policy: at least 8
// characters with an uppercase letter, a lowercase letter, and a digit.
// Special characters are allowed but not required.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// ValidateLoginForm checks the login form. Login deliberately keeps a
// weaker 6-character password minimum than signup: existing accounts may
// predate the stronger policy.
func ValidateLoginForm(email, password string) ErrorSet {
	errs := ErrorSet{"email": "", "password": ""}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !ValidateEmail(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// ValidateSignupForm checks the signup form with the full password policy.
func ValidateSignupForm(name, email, password, confirmPassword string) ErrorSet {
	errs := ErrorSet{"name": "", "email": "", "password": "", "confirmPassword": ""}

	trimmedName := strings.TrimSpace(name)
	if trimmedName == "" {
		errs["name"] = "Name is required"
	} else if len(trimmedName) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(email) == "" {
		errs["email"] = "Email is required"
	} else if !ValidateEmail(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if password == "" {
		errs["password"] = "Password is required"
	} else if !ValidatePassword(password) {
		errs["password"] = "Password must be at least 8 chars with uppercase, lowercase, and number"
	}

	if confirmPassword == "" {
		errs["confirmPassword"] = "Please confirm your password"
	} else if password != confirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}
