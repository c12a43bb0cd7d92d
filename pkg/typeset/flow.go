package typeset

// Breaker receives page-break signals from the cursor. Canvas satisfies it.
type Breaker interface {
	PageBreak()
}

// Cursor owns the vertical position and page-break policy for a single
// render. Coordinates are in points with y decreasing toward the bottom
// margin; between draw operations bottom <= y <= top always holds.
//
// A cursor is created fresh per render and never shared between renders.
type Cursor struct {
	y      float64
	top    float64
	bottom float64
	page   int
	sink   Breaker
}

// NewCursor returns a cursor positioned at the top of the first page.
func NewCursor(top, bottom float64, sink Breaker) *Cursor {
	return &Cursor{y: top, top: top, bottom: bottom, page: 1, sink: sink}
}

// EnsureSpace starts a new page when fewer than h points remain above the
// bottom margin. Callers size h per line they are about to draw, not per
// whole paragraph, so paragraphs may legally split across pages.
func (c *Cursor) EnsureSpace(h float64) {
	if c.y-h <= c.bottom {
		c.sink.PageBreak()
		c.y = c.top
		c.page++
	}
}

// Advance moves the cursor down by delta. It never breaks the page on its
// own; callers check EnsureSpace before placing content.
func (c *Cursor) Advance(delta float64) {
	c.y -= delta
}

// Y reports the current baseline position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Page reports the 1-based index of the page the cursor is on.
func (c *Cursor) Page() int {
	return c.page
}
