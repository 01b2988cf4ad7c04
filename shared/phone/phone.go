package phone

import (
	"strings"

	"krown/shared/failure"
)

const countryCode = "+91"

// Normalize canonicalizes an Indian mobile number to "+91" followed by
// exactly ten digits. Spaces and hyphens are stripped, and an optional
// leading "+91" or "91" prefix is accepted. Any other shape is rejected.
// Initiation and lookup must both go through here so that redeem queries
// match regardless of how the operator typed the number.
func Normalize(raw string) (string, error) {
	m := strings.NewReplacer(" ", "", "-", "").Replace(raw)

	switch {
	case strings.HasPrefix(m, countryCode):
		m = m[len(countryCode):]
	case strings.HasPrefix(m, "91"):
		m = m[2:]
	}

	if len(m) != 10 || !isDigits(m) {
		return "", failure.UnprocessableEntity("invalid mobile number")
	}

	return countryCode + m, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(s) > 0
}
