package source

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for the two lookup stages
var (
	// ErrFunctionNotFound indicates the signature does not occur in the source
	ErrFunctionNotFound = errors.New("function not found")

	// ErrUnterminatedBody indicates the function's opening brace is never closed
	ErrUnterminatedBody = errors.New("unterminated function body")

	// ErrNoSegments indicates the function body holds no delimited raw strings
	ErrNoSegments = errors.New("no raw string segments found")
)

// rawPrefixes are the identifiers that turn a following quote into a raw string literal
var rawPrefixes = map[string]bool{
	"R":   true,
	"LR":  true,
	"uR":  true,
	"UR":  true,
	"u8R": true,
}

// signaturePattern compiles the pattern that finds sig followed by its opening brace
func signaturePattern(sig Signature) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(sig.ReturnType) +
		`\s+` + regexp.QuoteMeta(sig.Class) +
		`::` + regexp.QuoteMeta(sig.Name) +
		`\(\)\s*\{`)
}

// LocateFunction finds the first definition of sig in text and returns its body.
// The body ends at the brace that balances the opening one; braces inside
// comments, string, character and raw string literals are not counted.
func LocateFunction(text string, sig Signature) (Function, error) {
	loc := signaturePattern(sig).FindStringIndex(text)
	if loc == nil {
		return Function{}, fmt.Errorf("%w: %s", ErrFunctionNotFound, sig)
	}

	start := loc[1]
	end, ok := newScanner(text, start).matchingBrace()
	if !ok {
		return Function{}, fmt.Errorf("%w: %s", ErrUnterminatedBody, sig)
	}

	return Function{Body: text[start:end], Offset: start}, nil
}

// LocateSegments returns the contents of every d-delimited raw string in body,
// left to right. Each segment stops at the nearest close token.
func LocateSegments(body string, d Delimiter) ([]Segment, error) {
	open, closing := d.Open(), d.Close()

	var segments []Segment
	pos := 0
	for {
		i := strings.Index(body[pos:], open)
		if i < 0 {
			break
		}
		contentStart := pos + i + len(open)
		j := strings.Index(body[contentStart:], closing)
		if j < 0 {
			break
		}
		segments = append(segments, Segment{
			Content: body[contentStart : contentStart+j],
			Offset:  contentStart,
		})
		pos = contentStart + j + len(closing)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no %s...%s literal", ErrNoSegments, open, closing)
	}
	return segments, nil
}

// scanner walks C++ text just far enough to tell code braces from braces in
// comments and literals
type scanner struct {
	src string
	pos int
}

func newScanner(src string, pos int) *scanner {
	return &scanner{src: src, pos: pos}
}

// matchingBrace returns the offset of the '}' closing a block whose '{' was
// already consumed
func (s *scanner) matchingBrace() (int, bool) {
	depth := 1
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case c == '"':
			s.skipQuoted('"')
		case c == '\'':
			s.skipQuoted('\'')
		case isIdentStart(c):
			s.skipIdentifier()
		case isDigit(c):
			s.skipNumber()
		case c == '{':
			depth++
			s.pos++
		case c == '}':
			depth--
			if depth == 0 {
				return s.pos, true
			}
			s.pos++
		default:
			s.pos++
		}
	}
	return 0, false
}

func (s *scanner) peek(n int) byte {
	if s.pos+n < len(s.src) {
		return s.src[s.pos+n]
	}
	return 0
}

func (s *scanner) skipLineComment() {
	if i := strings.IndexByte(s.src[s.pos:], '\n'); i >= 0 {
		s.pos += i + 1
		return
	}
	s.pos = len(s.src)
}

func (s *scanner) skipBlockComment() {
	if i := strings.Index(s.src[s.pos+2:], "*/"); i >= 0 {
		s.pos += 2 + i + 2
		return
	}
	s.pos = len(s.src)
}

// skipQuoted skips a string or character literal. An unescaped newline also ends it.
func (s *scanner) skipQuoted(quote byte) {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case quote:
			s.pos++
			return
		case '\n':
			return
		}
		s.pos++
	}
}

// skipIdentifier consumes an identifier, and the raw string literal it
// introduces when the identifier is a raw prefix directly followed by a quote
func (s *scanner) skipIdentifier() {
	start := s.pos
	for s.pos < len(s.src) && isIdentChar(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && s.src[s.pos] == '"' && rawPrefixes[s.src[start:s.pos]] {
		s.skipRawString()
	}
}

// skipRawString skips "d( ... )d" starting at the quote
func (s *scanner) skipRawString() {
	open := strings.IndexByte(s.src[s.pos:], '(')
	if open < 0 {
		s.pos = len(s.src)
		return
	}
	tag := s.src[s.pos+1 : s.pos+open]
	body := s.pos + open + 1
	if i := strings.Index(s.src[body:], ")"+tag+`"`); i >= 0 {
		s.pos = body + i + len(tag) + 2
		return
	}
	s.pos = len(s.src)
}

// skipNumber consumes a numeric literal, including C++14 digit separators
func (s *scanner) skipNumber() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isIdentChar(c) || c == '.' {
			s.pos++
			continue
		}
		if c == '\'' && isIdentChar(s.peek(1)) {
			s.pos++
			continue
		}
		return
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
