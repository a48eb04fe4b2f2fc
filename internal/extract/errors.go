package extract

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal failure kinds
var (
	// ErrMissingInput indicates the C++ source file does not exist
	ErrMissingInput = errors.New("missing input")

	// ErrPatternNotFound indicates the function or its raw string segments could not be located
	ErrPatternNotFound = errors.New("pattern not found")
)

// MissingInputError represents an absent source file
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("C++ file not found: %s", e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// NewMissingInputError creates a new missing input error
func NewMissingInputError(path string) error {
	return &MissingInputError{Path: path}
}

// PatternNotFoundError represents a lookup stage that came up empty
type PatternNotFoundError struct {
	Path string
	// What names the thing that was looked for, e.g. "GetEmbeddedHTML function"
	What string
	// Err is the underlying lookup error from the source scanner
	Err error
	// ConfigOrigin names the config the settings came from, empty for built-in defaults
	ConfigOrigin string
}

func (e *PatternNotFoundError) Error() string {
	origin := "the built-in defaults"
	if e.ConfigOrigin != "" {
		origin = e.ConfigOrigin
	}
	return fmt.Sprintf("could not find %s in %s: %v\nSuggestion: check functionName, rawPrefix and delimiter (settings from %s)",
		e.What, e.Path, e.Err, origin)
}

func (e *PatternNotFoundError) Unwrap() []error {
	return []error{ErrPatternNotFound, e.Err}
}

// NewPatternNotFoundError creates a new pattern not found error
func NewPatternNotFoundError(path, what string, err error) error {
	return &PatternNotFoundError{
		Path: path,
		What: what,
		Err:  err,
	}
}
