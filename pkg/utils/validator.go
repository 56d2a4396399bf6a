package utils

import (
	"fmt"
	"regexp"
)

var nipRegex = regexp.MustCompile(`^[0-9]{18}$`)

// ValidateNIP validates an Indonesian civil-servant identification number
// (18 digits).
func ValidateNIP(nip string) error {
	if !nipRegex.MatchString(nip) {
		return fmt.Errorf("NIP must be 18 digits: %s", nip)
	}
	return nil
}

// ValidateDate validates an ISO calendar date string (YYYY-MM-DD). The empty
// string is accepted as "not set".
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if !regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`).MatchString(date) {
		return fmt.Errorf("date must be YYYY-MM-DD: %s", date)
	}
	return nil
}

// SanitizeString removes potentially harmful characters
func SanitizeString(s string) string {
	// Remove control characters and potential SQL injection patterns
	sanitized := regexp.MustCompile(`[\x00-\x1f\x7f]`).ReplaceAllString(s, "")
	return sanitized
}
