package bookings

import (
	"regexp"
	"strings"

	"courtside/internal/shared/apperrors"
)

// Pakistani mobile numbers: 03XX-XXXXXXX after normalization.
var phonePattern = regexp.MustCompile(`^03[0-9]{9}$`)

// NormalizePhone canonicalizes a customer phone number to local
// 03XXXXXXXXX form, accepting +92/92/0092 international prefixes and
// incidental spaces or dashes.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(cleaned, "+92"):
		cleaned = "0" + cleaned[3:]
	case strings.HasPrefix(cleaned, "0092"):
		cleaned = "0" + cleaned[4:]
	case strings.HasPrefix(cleaned, "92") && len(cleaned) == 12:
		cleaned = "0" + cleaned[2:]
	}

	if !phonePattern.MatchString(cleaned) {
		return "", apperrors.NewValidationError("customer_phone", "must be a valid Pakistani mobile number (03XXXXXXXXX)")
	}
	return cleaned, nil
}
