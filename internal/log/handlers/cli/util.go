package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiEscape matches the SGR sequences emitted by fatih/color.
var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

// EscapeAwareRuneCountInString counts the runes of str ignoring the
// color escape sequences.
func EscapeAwareRuneCountInString(str string) int {
	return utf8.RuneCountInString(ansiEscape.ReplaceAllString(str, ""))
}

// RightPad pads str with spaces up to length visible runes.
func RightPad(str string, length int) string {
	padding := length - EscapeAwareRuneCountInString(str)
	if padding <= 0 {
		return str
	}
	return str + strings.Repeat(" ", padding)
}
