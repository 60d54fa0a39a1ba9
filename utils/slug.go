package utils

import (
	"strings"
	"unicode"
)

// Slugify lowercases a name and collapses everything non-alphanumeric into
// single dashes, e.g. "Café del Mar " -> "caf-del-mar".
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
