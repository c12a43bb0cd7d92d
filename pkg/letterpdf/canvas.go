package letterpdf

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/teitur/lettersmith/pkg/lettertpl"
	"github.com/teitur/lettersmith/pkg/typeset"
)

// pdfCanvas implements typeset.Canvas on top of an fpdf document.
//
// The layout engine works with y growing up from the page bottom; fpdf
// measures from the top, so Text flips the coordinate. fpdf has no getter
// for the active font, so the canvas tracks it itself to restore it after
// width measurements.
type pdfCanvas struct {
	pdf  *fpdf.Fpdf
	font FontConfig

	active     typeset.Font
	activeSize float64
	fontSet    bool
}

func (c *pdfCanvas) face(f typeset.Font) (family, style string, err error) {
	switch f {
	case typeset.FontBody:
		return c.font.Family, "", nil
	case typeset.FontBold:
		return c.font.Family, "B", nil
	}
	return "", "", fmt.Errorf("%w: font id %d", typeset.ErrUnknownFont, f)
}

// Width implements typeset.Metrics using fpdf's core font metrics. The
// string is measured in the encoding it will be drawn with.
func (c *pdfCanvas) Width(text string, f typeset.Font, size float64) (float64, error) {
	family, style, err := c.face(f)
	if err != nil {
		return 0, err
	}
	c.pdf.SetFont(family, style, size)
	w := c.pdf.GetStringWidth(encodeLatin1(text))

	// Measuring changes fpdf state; put the drawing font back.
	if c.fontSet {
		if family, style, err = c.face(c.active); err == nil {
			c.pdf.SetFont(family, style, c.activeSize)
		}
	}
	return w, nil
}

// SetFont implements typeset.Canvas.
func (c *pdfCanvas) SetFont(f typeset.Font, size float64) error {
	family, style, err := c.face(f)
	if err != nil {
		return err
	}
	c.pdf.SetFont(family, style, size)
	c.active, c.activeSize, c.fontSet = f, size, true
	return nil
}

// SetColor implements typeset.Canvas.
func (c *pdfCanvas) SetColor(col typeset.Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

// Text implements typeset.Canvas. y is measured up from the page bottom.
func (c *pdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, lettertpl.PageHeight-y, encodeLatin1(s))
}

// PageBreak implements typeset.Canvas.
func (c *pdfCanvas) PageBreak() {
	c.pdf.AddPage()
}

// encodeLatin1 converts text to ISO-8859-1 for the built-in PDF fonts,
// falling back to the raw string when a character has no mapping.
func encodeLatin1(s string) string {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return latin1
}
