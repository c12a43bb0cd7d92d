// Package lettertpl provides the page layout templates that turn a letter
// record into draw commands on a typeset.Canvas.
//
// Two templates exist, selected by case-insensitive name:
//
//   - "classic": bold name and uppercase role header, a two-column band with
//     date/company details on the left and a CONTACT INFO table on the right,
//     then a justified body opened by an uppercase salutation.
//   - "minimal": a plain top-left contact block, a company/date row, a
//     "Dear <name>," salutation line, and a justified body.
//
// Both templates share the same contract: header information, at most three
// body paragraphs, then a fixed "Sincerely," sign-off with the applicant
// name when it is known. Absent fields omit their line entirely.
package lettertpl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/typeset"
)

// ErrUnsupportedTemplate is returned for template names that are not
// registered. Callers wanting lenient behavior should default to "classic"
// themselves; silent substitution here would hide caller bugs.
var ErrUnsupportedTemplate = errors.New("unsupported template")

// US Letter geometry in points, 1-inch margins on all sides.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 72.0

	ContentWidth = PageWidth - 2*Margin // 6.5 inches, centered
	TopY         = PageHeight - Margin
	BottomY      = Margin
)

// Template lays out one letter record onto a canvas. Implementations create
// their own cursor, so every render starts from a fresh page state.
type Template interface {
	// Name reports the selector this template is registered under.
	Name() string

	// Render draws the full letter. The date is injected by the caller so
	// output stays reproducible.
	Render(cv typeset.Canvas, rec *letter.Record, date time.Time) error
}

// ForName resolves a template selector. The match is case-insensitive.
func ForName(name string) (Template, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic{}, nil
	case "minimal":
		return Minimal{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTemplate, name)
}

// bodyParagraphs returns the cleaned, non-empty paragraphs a template will
// lay out. Paragraphs beyond the third are ignored entirely.
func bodyParagraphs(rec *letter.Record) []string {
	paragraphs := rec.CoverLetter.Paragraphs
	if len(paragraphs) > 3 {
		paragraphs = paragraphs[:3]
	}
	var out []string
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
