package source

import "fmt"

// Signature identifies the member function holding the embedded document,
// e.g. std::wstring WebViewWindow::GetEmbeddedHTML()
type Signature struct {
	ReturnType string
	Class      string
	Name       string
}

// String renders the signature the way it appears in the source
func (s Signature) String() string {
	return fmt.Sprintf("%s %s::%s()", s.ReturnType, s.Class, s.Name)
}

// Delimiter describes a raw string literal such as LR"HTML( ... )HTML"
type Delimiter struct {
	// Prefix is the encoding/raw prefix before the quote, e.g. "LR"
	Prefix string
	// Tag is the d-char sequence between the quote and the parenthesis
	Tag string
}

// Open returns the literal token that starts a segment
func (d Delimiter) Open() string {
	return d.Prefix + `"` + d.Tag + "("
}

// Close returns the literal token that ends a segment
func (d Delimiter) Close() string {
	return ")" + d.Tag + `"`
}

// Function is the body of the designated function, without its braces
type Function struct {
	Body string
	// Offset is the byte offset of Body within the source text
	Offset int
}

// Segment is the content of one raw string literal
type Segment struct {
	Content string
	// Offset is the byte offset of Content within the text that was scanned
	Offset int
}
