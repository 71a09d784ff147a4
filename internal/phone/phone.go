package phone

import (
	"errors"
	"strings"
)

// ==============================================
// PHONE NORMALIZER
// ==============================================

// CountryCode is the single supported dialing code (Uganda).
const CountryCode = "256"

// subscriberDigits is the number of digits after the country code.
const subscriberDigits = 9

var ErrInvalidFormat = errors.New("invalid phone number format")

// Normalize converts a raw phone number into the canonical +256XXXXXXXXX form.
//
// Accepted shapes:
//   - "+256700000001" (country-code prefixed)
//   - "256700000001"  (bare country code)
//   - "0700000001"    (local form)
//
// The canonical form is the lookup key for challenges, applicants and
// sessions, so every accepted shape of the same physical number must
// collide to the same string. Anything else fails with ErrInvalidFormat.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	var subscriber string
	switch {
	case strings.HasPrefix(s, "+"+CountryCode):
		subscriber = s[len(CountryCode)+1:]
	case strings.HasPrefix(s, CountryCode):
		subscriber = s[len(CountryCode):]
	case strings.HasPrefix(s, "0"):
		subscriber = s[1:]
	default:
		return "", ErrInvalidFormat
	}

	if len(subscriber) != subscriberDigits || !isDigits(subscriber) {
		return "", ErrInvalidFormat
	}

	return "+" + CountryCode + subscriber, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
