package util

import (
	"fmt"
	"strings"
)

// TruncateAt truncates a string to the given length in runes, ending it in
// an ellipsis ("...") if anything had to be cut.
// Lengths shorter than the ellipsis yield prefixes of it, down to the empty
// string.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}

	ellipsis := "..."
	if length <= 0 {
		return ""
	}
	if length < len(ellipsis) {
		return ellipsis[:length]
	}

	return string(append(r[:length-3], []rune(ellipsis)...))
}

// DurationToString returns a given duration in minutes formatted as a more
// human-readable string of hours and minutes.
func DurationToString(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%dh %dmin", hours, mins)
}

// Enquote returns the string wrapped in double quotes, CSV-style: any
// double quote inside it is doubled.
func Enquote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
