package js

// Summary describes an extracted script for the run report
type Summary struct {
	// Functions counts declarations, expressions, arrow functions and methods
	Functions int
	// Listeners counts addEventListener calls
	Listeners int
}
