// Package typeset implements the text layout engine used to compose cover
// letter PDFs: glyph-width driven word wrapping, full justification with
// inter-word gap redistribution, and page-break management against a fixed
// page height.
//
// The package is deliberately independent of any PDF backend. Text is
// measured through the Metrics interface and drawn through the Canvas
// interface; pkg/letterpdf provides the fpdf-backed implementation.
//
// Key Features:
//
// - Greedy word wrap with explicit newlines preserved as forced breaks
// - Full justification that leaves the last line of a paragraph natural
// - A vertical cursor with per-line page-break checks
// - Restartable, side-effect free layout (same input, same fragments)
//
// Main Types:
//
// - Wrap: breaks text into width-constrained line fragments
// - PlaceLine: converts one fragment into positioned word runs
// - Cursor: owns the vertical position and page-break policy for one render
package typeset

import "errors"

// Font identifies one of the typefaces the layout engine can measure and draw.
// Exactly two faces are supported; anything else is a layout bug.
type Font int

const (
	// FontBody is the regular serif face used for body text.
	FontBody Font = iota
	// FontBold is the bold serif face used for headings and emphasis.
	FontBold
)

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Black is the default text color.
var Black = Color{0, 0, 0}

var (
	// ErrUnknownFont is returned when metrics or drawing are requested for a
	// font the backend does not supply.
	ErrUnknownFont = errors.New("unknown font")

	// ErrNegativeGap is returned when justification would need to shrink
	// inter-word gaps below zero. Wrapping guarantees this cannot happen, so
	// hitting it means the width budget was violated upstream.
	ErrNegativeGap = errors.New("negative justification gap")
)

// Metrics measures the advance width of rendered text in points.
// Implementations must be deterministic and free of side effects.
type Metrics interface {
	Width(text string, font Font, size float64) (float64, error)
}

// Canvas is the drawing surface the layout engine composes onto. It extends
// Metrics with draw commands and a page-break signal. Coordinates are in
// points with y measured up from the bottom of the page.
type Canvas interface {
	Metrics

	// SetFont selects the face and size for subsequent Text calls.
	SetFont(font Font, size float64) error

	// SetColor selects the fill color for subsequent Text calls.
	SetColor(c Color)

	// Text places a text run with its baseline at (x, y).
	Text(x, y float64, s string)

	// PageBreak closes the current page and starts a fresh one.
	PageBreak()
}
