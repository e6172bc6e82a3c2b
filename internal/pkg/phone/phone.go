// Package phone normalizes phone numbers so that the value stored at
// signup and the value submitted to the account-recovery endpoints
// always compare equal.
package phone

import (
	"errors"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when a number carries no country prefix.
const DefaultRegion = "KR"

var ErrInvalidNumber = errors.New("invalid phone number")

// Normalize parses raw with the default region and returns the number in
// national format (e.g. "010-0000-0000"). Invalid input yields ErrInvalidNumber.
func Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidNumber
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", ErrInvalidNumber
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidNumber
	}

	return phonenumbers.Format(num, phonenumbers.NATIONAL), nil
}
