// Package letterpdf renders letter records to PDF.
//
// It supplies the fpdf-backed page sink for the layout engine in
// pkg/typeset and the top-level Render facade that drives a layout template
// against it. Output is a single finished PDF byte stream; page count is
// whatever the content overflow demands.
//
// Text is measured with fpdf's core font metrics and encoded to ISO-8859-1
// before drawing, matching the built-in Times faces. The document creation
// and modification dates are pinned to the letter date, so rendering the
// same record twice yields byte-identical output.
package letterpdf

import (
	"bytes"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/lettertpl"
)

// FontConfig selects the fpdf core font family the letter is set in. The
// bold face is the family's "B" style.
type FontConfig struct {
	Family string
}

// DefaultFont is the serif face both layout templates were designed around.
var DefaultFont = FontConfig{Family: "Times"}

// Options control PDF output.
type Options struct {
	// Date is the letter date printed in the header. The zero value means
	// time.Now(); pin it for reproducible output.
	Date time.Time
	Font FontConfig
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{Font: DefaultFont}
}

// Render lays out the record with the named template ("classic" or
// "minimal", case-insensitive) and returns the finished PDF. Unknown
// template names fail with lettertpl.ErrUnsupportedTemplate before any
// drawing begins. On error no partial output is returned.
func Render(rec *letter.Record, templateName string, opts Options) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", letter.ErrInvalidInput)
	}
	tpl, err := lettertpl.ForName(templateName)
	if err != nil {
		return nil, err
	}

	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}
	font := opts.Font
	if font.Family == "" {
		font.Family = DefaultFont.Family
	}

	cv := newCanvas(font, date)
	if err := tpl.Render(cv, rec, date); err != nil {
		return nil, fmt.Errorf("layout failed: %w", err)
	}

	var buf bytes.Buffer
	if err := cv.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// newCanvas opens a one-page US Letter document in point units with manual
// page-break control; the layout cursor owns all break decisions.
func newCanvas(font FontConfig, date time.Time) *pdfCanvas {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(date)
	pdf.SetModificationDate(date)
	pdf.AddPage()
	return &pdfCanvas{pdf: pdf, font: font}
}
