package extract

import (
	"fmt"

	"bennypowers.dev/webviewui/internal/log"
	"bennypowers.dev/webviewui/internal/parser/css"
	"bennypowers.dev/webviewui/internal/parser/html"
	"bennypowers.dev/webviewui/internal/parser/js"
)

var descriptions = map[string]string{
	IndexFile:  "Complete HTML as embedded in C++",
	DevFile:    "Development version with external CSS/JS",
	StylesFile: "Extracted CSS styles",
	ScriptFile: "Extracted JavaScript code",
}

// Describe returns one line per written file, with counts for the document,
// stylesheet and script. Counting problems never fail a run; they only shorten the line.
func (r *Result) Describe() []string {
	lines := make([]string, 0, len(r.Files))
	for _, name := range r.Files {
		line := fmt.Sprintf("  - %-16s: %s", name, descriptions[name])
		switch name {
		case IndexFile:
			line += r.documentCounts()
		case StylesFile:
			line += r.styleCounts()
		case ScriptFile:
			line += r.scriptCounts()
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Result) documentCounts() string {
	parser := html.AcquireParser()
	defer html.ReleaseParser(parser)

	summary, err := parser.Summarize(r.Document)
	if err != nil {
		log.Warn("skipping document summary: %v", err)
		return ""
	}
	return fmt.Sprintf(" (%d elements, %d ids)", summary.Elements, summary.IDs)
}

func (r *Result) styleCounts() string {
	parser := css.AcquireParser()
	defer css.ReleaseParser(parser)

	summary, err := parser.Summarize(r.Assets.CSS)
	if err != nil {
		log.Warn("skipping stylesheet summary: %v", err)
		return ""
	}
	return fmt.Sprintf(" (%d blocks, %d rules, %d custom properties, %d colors)",
		r.Assets.StyleBlocks, summary.Rules, summary.CustomProperties, summary.Colors)
}

func (r *Result) scriptCounts() string {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	summary, err := parser.Summarize(r.Assets.JS)
	if err != nil {
		log.Warn("skipping script summary: %v", err)
		return ""
	}
	return fmt.Sprintf(" (%d blocks, %d functions, %d listeners)",
		r.Assets.ScriptBlocks, summary.Functions, summary.Listeners)
}

// LogReport prints the closing summary of a successful run
func LogReport(r *Result) {
	log.Info("")
	log.Info("Extraction complete!")
	log.Info("")
	log.Info("Files created:")
	for _, line := range r.Describe() {
		log.Info("%s", line)
	}
	log.Info("")
	log.Info("You can now edit these files directly for development.")
}
