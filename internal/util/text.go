package util

import "strings"

// TruncateAt truncates the string to at most length runes.
func TruncateAt(s string, length int) string {
	r := []rune(s)
	if length < 0 {
		return ""
	}
	if len(r) <= length {
		return s
	}
	return string(r[:length])
}

// PadCenter centers the string in a field of the given width, truncating it
// if it does not fit.
func PadCenter(s string, width int) string {
	s = TruncateAt(s, width)
	pad := width - len([]rune(s))
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
