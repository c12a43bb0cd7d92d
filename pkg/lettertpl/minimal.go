package lettertpl

import (
	"fmt"
	"strings"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/typeset"
)

// Minimal is the plain business-letter layout: a contact block at the top
// left, a company/date row, a single salutation line, then justified body
// paragraphs with the last line of each left natural.
type Minimal struct{}

const (
	minimalSize    = 10.0
	minimalLeading = 12.0
)

// Name implements Template.
func (Minimal) Name() string { return "minimal" }

// Render implements Template.
func (Minimal) Render(cv typeset.Canvas, rec *letter.Record, date time.Time) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", letter.ErrInvalidInput)
	}
	f := rec.Extracted
	cur := typeset.NewCursor(TopY, BottomY, cv)
	st := textStyle{typeset.FontBody, minimalSize, minimalLeading, typeset.Black}

	// Contact block, top left.
	if f.ApplicantName != "" {
		if err := drawLine(cv, cur, f.ApplicantName, Margin, st); err != nil {
			return err
		}
	}
	for _, ln := range contactLines(f) {
		if err := drawLine(cv, cur, ln, Margin, st); err != nil {
			return err
		}
	}
	cur.Advance(minimalLeading * 1.5)

	// Company on the left, date right-aligned on the same baseline.
	if err := cv.SetFont(st.font, st.size); err != nil {
		return err
	}
	cv.SetColor(st.color)
	cur.EnsureSpace(minimalLeading)
	if f.CompanyName != "" {
		cv.Text(Margin, cur.Y(), f.CompanyName+",")
	}
	dateStr := date.Format("02.01.2006")
	dateW, err := cv.Width(dateStr, st.font, st.size)
	if err != nil {
		return err
	}
	cv.Text(PageWidth-Margin-dateW, cur.Y(), dateStr)
	cur.Advance(minimalLeading * 4.5)

	// Salutation, drawn exactly once here.
	if err := drawLine(cv, cur, "Dear "+f.HiringManager()+",", Margin, st); err != nil {
		return err
	}
	cur.Advance(minimalLeading)

	// Body paragraphs, justified except each paragraph's last line.
	for i, p := range bodyParagraphs(rec) {
		if i == 0 {
			// The model sometimes writes its own "Dear ...," into the first
			// paragraph; drop it so the letter greets only once.
			if p = stripSalutation(p); p == "" {
				continue
			}
		}
		if err := drawFlowed(cv, cur, p, Margin, ContentWidth, st, true); err != nil {
			return err
		}
		cur.Advance(minimalLeading)
	}

	// Sign-off.
	if err := drawLine(cv, cur, "Sincerely,", Margin, st); err != nil {
		return err
	}
	cur.Advance(minimalLeading * 0.5)
	if f.ApplicantName != "" {
		if err := drawLine(cv, cur, f.ApplicantName, Margin, st); err != nil {
			return err
		}
	}
	return nil
}

// contactLines lists the non-empty contact block lines under the name:
// address lines first, then email, then phone.
func contactLines(f letter.Fields) []string {
	lines := f.AddressLines()
	if f.ApplicantEmail != "" {
		lines = append(lines, f.ApplicantEmail)
	}
	if f.ApplicantPhone != "" {
		lines = append(lines, f.ApplicantPhone)
	}
	return lines
}

// stripSalutation removes a leading "Dear ...," clause. The match is a
// case-insensitive prefix check; the clause is stripped through the first
// comma, falling back to the first newline, and the whole paragraph is
// dropped when nothing remains.
func stripSalutation(p string) string {
	s := strings.TrimSpace(p)
	if !strings.HasPrefix(strings.ToLower(s), "dear ") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return ""
}
