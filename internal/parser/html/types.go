package html

// RegionKind identifies the element a region was found in
type RegionKind int

const (
	// UnknownRegion is the zero value, indicating an uninitialized region kind
	UnknownRegion RegionKind = iota
	// StyleRegion represents a <style>...</style> pair
	StyleRegion
	// ScriptRegion represents a <script>...</script> pair
	ScriptRegion
)

// String returns the element name for the kind
func (k RegionKind) String() string {
	switch k {
	case StyleRegion:
		return "style"
	case ScriptRegion:
		return "script"
	default:
		return "unknown"
	}
}

// OpenTag returns the literal open tag for the kind
func (k RegionKind) OpenTag() string {
	return "<" + k.String() + ">"
}

// CloseTag returns the literal close tag for the kind
func (k RegionKind) CloseTag() string {
	return "</" + k.String() + ">"
}

// Region is one open/close tag pair in an HTML document.
// All offsets are byte offsets into the scanned source.
type Region struct {
	Kind RegionKind
	// Start and End span the open tag through the close tag
	Start int
	End   int
	// ContentStart and ContentEnd span the text between the tags
	ContentStart int
	ContentEnd   int
}

// Content returns the text of the region within source
func (r Region) Content(source string) string {
	return source[r.ContentStart:r.ContentEnd]
}

// Summary describes an HTML document for the run report
type Summary struct {
	// Elements counts every element node, including style and script
	Elements int
	// IDs counts id="..." attributes
	IDs int
}
