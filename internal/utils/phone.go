package utils

import (
	"regexp"
	"strings"
)

const countryCode = "7"
const trunkPrefix = "8"

var phonePattern = regexp.MustCompile(`^\+7\d{10}$`)

// NormalizePhone canonicalizes a raw phone number into the stable identity
// key used across the system. It is total and idempotent: malformed input
// normalizes to a best-effort string and is rejected by ValidatePhone at
// the usecase boundary, never here, because the result is used as a lookup
// key.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, trunkPrefix):
		return "+" + countryCode + digits[1:]
	case strings.HasPrefix(digits, countryCode):
		return "+" + digits
	default:
		return "+" + countryCode + digits
	}
}

// ValidatePhone reports whether a normalized phone number is well-formed
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
