package extract

import (
	"fmt"
	"strings"

	"bennypowers.dev/webviewui/internal/log"
	"bennypowers.dev/webviewui/internal/position"
	"bennypowers.dev/webviewui/internal/source"
)

// Concatenate joins segment contents in order, with no separator
func Concatenate(segments []source.Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}

// CombinedDocument locates sig in text and returns the concatenation of the
// d-delimited raw strings in its body. path is only used in error messages.
func CombinedDocument(path, text string, sig source.Signature, d source.Delimiter) (string, error) {
	fn, err := source.LocateFunction(text, sig)
	if err != nil {
		return "", NewPatternNotFoundError(path, sig.Name+" function", err)
	}
	line, col := position.LineCol(text, fn.Offset)
	log.Debug("%s body at line %d, column %d (%d bytes)", sig, line, col, len(fn.Body))

	segments, err := source.LocateSegments(fn.Body, d)
	if err != nil {
		return "", NewPatternNotFoundError(path, fmt.Sprintf("%s content in %s", d.Tag, sig.Name), err)
	}
	for i, s := range segments {
		line, col := position.LineCol(text, fn.Offset+s.Offset)
		log.Debug("segment %d at line %d, column %d (%d bytes)", i, line, col, len(s.Content))
	}

	return Concatenate(segments), nil
}
