// Package phone normalizes Uzbek mobile numbers to the canonical
// +998XXXXXXXXX form.
package phone

import "strings"

// Operator prefixes assigned to Uzbek mobile carriers. Numbers outside this
// allow-list are rejected even when the length checks out.
var operatorCodes = map[string]bool{
	"90": true,
	"91": true,
	"93": true,
	"94": true,
	"95": true,
	"97": true,
	"98": true,
	"99": true,
}

// Normalize returns the canonical +998XXXXXXXXX form of an Uzbek mobile
// number, accepting the number with or without the country code and with
// common separators mixed in. The second return value is false when the input
// is not a valid Uzbek mobile number.
func Normalize(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "").Replace(raw)

	var digits string
	switch {
	case strings.HasPrefix(cleaned, "+998"):
		digits = cleaned[4:]
	case strings.HasPrefix(cleaned, "998"):
		digits = cleaned[3:]
	case strings.HasPrefix(cleaned, "9"):
		digits = cleaned
	default:
		return "", false
	}

	if len(digits) != 9 || !isDigits(digits) {
		return "", false
	}
	if !operatorCodes[digits[:2]] {
		return "", false
	}
	return "+998" + digits, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
