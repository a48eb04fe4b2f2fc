package position

import (
	"strings"
	"unicode/utf8"
)

// LineCol converts a byte offset in s to a 1-based line and a 1-based column
// counted in characters, the way editors report positions.
// Offsets past the end of s are clamped.
func LineCol(s string, byteOffset int) (line, col int) {
	if byteOffset < 0 {
		byteOffset = 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}

	before := s[:byteOffset]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = utf8.RuneCountInString(before[lineStart:]) + 1
	return line, col
}
