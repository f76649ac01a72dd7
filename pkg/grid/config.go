// Package grid locates the nine cells of a 3x3 contact-sheet composite.
//
// The composite is expected to contain nine sub-images separated by thin
// near-white gutters of unknown thickness and position. Detection degrades
// gracefully: missing, single, or surplus gutters all resolve to a usable
// set of dividers via geometric fallbacks and pairwise scoring, so none of
// the functions in this package return errors.
package grid

// Config holds the brightness thresholds and scan limits used by detection.
type Config struct {
	// Border scan (outer margin removal).
	BorderBrightness  uint8   // near-white cutoff for margin pixels
	BorderFraction    float64 // fraction of probes that must qualify per depth
	BorderMaxFraction float64 // deepest scan, as a fraction of the dimension
	BorderLookahead   int     // failing depths tolerated before the scan stops
	BorderProbes      int     // samples taken across the perpendicular axis

	// Gutter candidate detection over projection profiles. Slightly more
	// permissive than the border threshold so faint gutters still register.
	GutterBrightness   uint8
	MinGutterThickness int
	EdgeGuard          int // profile units near either end where runs are ignored

	// Residual margin trimming inside the chosen cell.
	TrimBrightness uint8
	TrimFraction   float64
	TrimFloor      int // per-dimension floor the trimmer must not cross
}

// DefaultConfig returns the thresholds tuned for near-white gutters on
// non-white content.
func DefaultConfig() Config {
	return Config{
		BorderBrightness:   235,
		BorderFraction:     0.90,
		BorderMaxFraction:  0.15,
		BorderLookahead:    3,
		BorderProbes:       32,
		GutterBrightness:   220,
		MinGutterThickness: 2,
		EdgeGuard:          20,
		TrimBrightness:     240,
		TrimFraction:       0.92,
		TrimFloor:          50,
	}
}
