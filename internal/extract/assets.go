package extract

import (
	"fmt"
	"strings"

	"bennypowers.dev/webviewui/internal/parser/html"
)

const (
	// StylesheetLink replaces the first style element in the development document
	StylesheetLink = `<link rel="stylesheet" href="styles.css">`

	// ScriptInclude is inserted before </body> in the development document
	ScriptInclude = "    <script src=\"app.js\"></script>\n"

	closeBody = "</body>"
)

// Assets are the files derived from the combined document
type Assets struct {
	// CSS is the styles.css content, empty when the document has no style element
	CSS string
	// JS is the app.js content, empty when the document has no script element
	JS string
	// Dev is the index_dev.html content
	Dev string

	StyleBlocks  int
	ScriptBlocks int
}

// Derive splits the style and script blocks out of document
func Derive(document, title string) Assets {
	styles := trimmedContents(document, html.StyleRegion)
	scripts := trimmedContents(document, html.ScriptRegion)

	return Assets{
		CSS:          joinBlocks(fmt.Sprintf("/* Extracted CSS from %s */", title), styles),
		JS:           joinBlocks(fmt.Sprintf("// Extracted JavaScript from %s", title), scripts),
		Dev:          DevelopmentDocument(document),
		StyleBlocks:  len(styles),
		ScriptBlocks: len(scripts),
	}
}

func trimmedContents(document string, kind html.RegionKind) []string {
	var blocks []string
	for _, r := range html.FindRegions(document, kind) {
		blocks = append(blocks, strings.TrimSpace(r.Content(document)))
	}
	return blocks
}

// joinBlocks writes header and a blank line, then each block followed by a
// blank line. No blocks means no file, so the result is empty.
func joinBlocks(header string, blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	for _, block := range blocks {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	return b.String()
}

// DevelopmentDocument rewrites document to load its assets externally, in
// four passes over the text: the first style block becomes a stylesheet link,
// the remaining style blocks are dropped, then every script block is dropped,
// and a script include goes before the first </body>. Each pass sees the
// output of the one before.
func DevelopmentDocument(document string) string {
	dev := html.ReplaceRegions(document, html.StyleRegion, StylesheetLink, "", 1)
	dev = html.ReplaceRegions(dev, html.StyleRegion, "", "", -1)
	dev = html.ReplaceRegions(dev, html.ScriptRegion, "", "", -1)
	return strings.Replace(dev, closeBody, ScriptInclude+closeBody, 1)
}
