package zipcode

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPostalCode = errors.New("postal code must be exactly 5 digits")

	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

// PostalCode is a 5 digit US ZIP code. Values are only built by Parse.
type PostalCode string

func (p PostalCode) String() string {
	return string(p)
}

func Validate(raw string) bool {
	return postalCodePattern.MatchString(raw)
}

// Sanitize drops every character that is not an ASCII digit.
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// Parse validates raw before stripping it, so Sanitize never repairs bad input.
func Parse(raw string) (PostalCode, error) {
	if !Validate(raw) {
		return "", ErrInvalidPostalCode
	}

	sanitized := Sanitize(raw)
	if !Validate(sanitized) {
		return "", ErrInvalidPostalCode
	}

	return PostalCode(sanitized), nil
}
