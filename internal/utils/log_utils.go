package utils

import (
	"strings"
	"unicode"
)

// MaxLogStringLength defines the maximum length for user-provided strings in logs
const MaxLogStringLength = 200

// SanitizeLogString sanitizes a user-controlled string for safe logging.
// It replaces control characters, limits string length, and escapes
// format specifiers.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength] + "... (truncated)"
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return strings.ReplaceAll(sanitized, "%", "%%")
}
