package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bennypowers.dev/webviewui/internal/log"
	"bennypowers.dev/webviewui/internal/source"
)

// Output file names, relative to the output directory
const (
	IndexFile  = "index.html"
	StylesFile = "styles.css"
	ScriptFile = "app.js"
	DevFile    = "index_dev.html"
)

// Options configures a single extraction run
type Options struct {
	SourcePath string
	OutputDir  string
	Signature  source.Signature
	Delimiter  source.Delimiter
	// Title names the product in the asset header comments
	Title string
	// ConfigOrigin names where the settings came from, for error suggestions
	ConfigOrigin string
}

// Extractor pulls the embedded web UI out of a C++ source file
type Extractor struct {
	opts Options
}

// Result describes a completed run
type Result struct {
	Document string
	Assets   Assets
	// Files lists the written files in write order
	Files []string
}

// New creates an extractor for opts
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Run reads the source file, rebuilds the embedded document and writes
// index.html, styles.css, app.js and index_dev.html to the output directory.
// Nothing is written unless both the function and its segments are found.
func (e *Extractor) Run() (*Result, error) {
	if _, err := os.Stat(e.opts.SourcePath); errors.Is(err, fs.ErrNotExist) {
		return nil, NewMissingInputError(e.opts.SourcePath)
	}

	log.Info("Extracting HTML from: %s", e.opts.SourcePath)
	log.Info("Output directory: %s", e.opts.OutputDir)

	data, err := os.ReadFile(e.opts.SourcePath) //nolint:gosec // G304: source path from project config
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", e.opts.SourcePath, err)
	}

	document, err := CombinedDocument(e.opts.SourcePath, string(data), e.opts.Signature, e.opts.Delimiter)
	if err != nil {
		var notFound *PatternNotFoundError
		if errors.As(err, &notFound) {
			notFound.ConfigOrigin = e.opts.ConfigOrigin
		}
		return nil, err
	}

	result := &Result{
		Document: document,
		Assets:   Derive(document, e.opts.Title),
	}
	if err := e.write(result); err != nil {
		return result, err
	}
	return result, nil
}

// write creates the output directory and writes every derived file
func (e *Extractor) write(result *Result) error {
	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil { //nolint:gosec // G301: output is plain web assets
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := e.writeFile(result, IndexFile, result.Document)
	if err != nil {
		return err
	}
	log.Info("Successfully extracted HTML to: %s", path)

	if result.Assets.CSS != "" {
		path, err := e.writeFile(result, StylesFile, result.Assets.CSS)
		if err != nil {
			return err
		}
		log.Info("Extracted CSS to: %s", path)
	}

	if result.Assets.JS != "" {
		path, err := e.writeFile(result, ScriptFile, result.Assets.JS)
		if err != nil {
			return err
		}
		log.Info("Extracted JavaScript to: %s", path)
	}

	path, err = e.writeFile(result, DevFile, result.Assets.Dev)
	if err != nil {
		return err
	}
	log.Info("Created development HTML: %s", path)

	return nil
}

func (e *Extractor) writeFile(result *Result, name, content string) (string, error) {
	path := filepath.Join(e.opts.OutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // G306: output is plain web assets
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	result.Files = append(result.Files, name)
	return path, nil
}
