package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString cuts s to at most width terminal cells, appending tail when
// something was cut. s must be plain text.
func TruncateString(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, tail)
}

// PadRight pads plain text s with spaces to width cells.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
