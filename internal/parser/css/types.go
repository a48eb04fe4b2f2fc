package css

// Summary describes an extracted stylesheet for the run report
type Summary struct {
	// Rules counts rule sets, including those nested in at-rules
	Rules int
	// CustomProperties counts --name declarations
	CustomProperties int
	// Colors counts distinct color values, compared by their hex form
	// so #f00, red and rgb(255, 0, 0) are one color
	Colors int
}
