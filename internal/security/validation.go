// Package security provides opt-in input validation for Swatch.
//
// The colour engine never rejects input; callers that want to fail fast on bad
// data run these checks first.
package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidHexColour is returned for anything other than 3 or 6 hex digits.
	ErrInvalidHexColour = errors.New("invalid hex colour")
	// ErrInvalidEmail is returned for malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidPhone is returned for phone numbers not in "+7 (999) 750-66-23" form.
	ErrInvalidPhone = errors.New("invalid phone number")
)

var (
	hexColourPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	phonePattern = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
)

// ValidateHexColour checks that s is a 3 or 6 digit hex colour with an optional "#".
func ValidateHexColour(s string) error {
	if !hexColourPattern.MatchString(s) {
		return fmt.Errorf("%w: %q (expected #rgb or #rrggbb)", ErrInvalidHexColour, s)
	}
	return nil
}

// ValidateHexColours validates every colour and joins the failures.
func ValidateHexColours(colours ...string) error {
	var errs []error
	for _, c := range colours {
		if err := ValidateHexColour(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateEmail checks an email address against a permissive RFC 5322 subset.
func ValidateEmail(s string) error {
	if !emailPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	return nil
}

// ValidatePhone checks a formatted phone number with the +7 country code.
func ValidatePhone(s string) error {
	if !phonePattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, s)
	}
	return nil
}
