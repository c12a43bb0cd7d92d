package lettertpl

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/typeset"
)

// Classic is the letterhead-style layout: bold name and uppercase role at
// the top, a two-column band with the date and company details on the left
// and a CONTACT INFO table on the right, then a justified body opened by an
// uppercase "DEAR <NAME>" line.
type Classic struct{}

const (
	classicBodySize    = 11.5
	classicNameSize    = 18.0
	classicRoleSize    = 9.5
	classicSectionSize = 10.5
	classicLeading     = 14.0
	classicParaGap     = 8.0
)

var (
	headingGray = typeset.Color{R: 0x4D, G: 0x4D, B: 0x4D}
	subtleGray  = typeset.Color{R: 0x77, G: 0x77, B: 0x77}
)

// Name implements Template.
func (Classic) Name() string { return "classic" }

// Render implements Template.
func (Classic) Render(cv typeset.Canvas, rec *letter.Record, date time.Time) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", letter.ErrInvalidInput)
	}
	f := rec.Extracted
	cur := typeset.NewCursor(TopY, BottomY, cv)

	body := textStyle{typeset.FontBody, classicBodySize, classicLeading, typeset.Black}
	section := textStyle{typeset.FontBold, classicSectionSize, classicLeading, typeset.Black}

	// Name and role header.
	if f.ApplicantName != "" {
		st := textStyle{typeset.FontBold, classicNameSize, 22, headingGray}
		if err := drawLine(cv, cur, f.ApplicantName, Margin, st); err != nil {
			return err
		}
	}
	if f.ApplicantStatusOrRole != "" {
		st := textStyle{typeset.FontBody, classicRoleSize, 18, subtleGray}
		if err := drawLine(cv, cur, strings.ToUpper(f.ApplicantStatusOrRole), Margin, st); err != nil {
			return err
		}
	}
	cur.Advance(10)

	if err := drawDetailBand(cv, cur, f, date); err != nil {
		return err
	}

	// Body: uppercase salutation, then up to three justified paragraphs.
	salutation := "DEAR " + strings.ToUpper(f.HiringManager())
	if err := drawFlowed(cv, cur, salutation, Margin, ContentWidth, section, false); err != nil {
		return err
	}
	cur.Advance(6)

	paragraphs := bodyParagraphs(rec)
	if len(paragraphs) == 0 {
		paragraphs = []string{""} // header/sign-off-only letter keeps its blank body line
	}
	for _, p := range paragraphs {
		if err := drawFlowed(cv, cur, p, Margin, ContentWidth, body, true); err != nil {
			return err
		}
		cur.Advance(classicParaGap)
	}

	// Sign-off.
	if err := drawFlowed(cv, cur, "Sincerely,", Margin, ContentWidth, body, false); err != nil {
		return err
	}
	cur.Advance(18) // signature area
	if f.ApplicantName != "" {
		if err := drawFlowed(cv, cur, f.ApplicantName, Margin, ContentWidth, body, false); err != nil {
			return err
		}
	}
	return nil
}

// bandLine is one left-column entry of the detail band, pre-wrapped so the
// band height is known before anything is drawn.
type bandLine struct {
	frags []typeset.LineFragment
	st    textStyle
}

// contactRow is one label/value pair of the CONTACT INFO column.
type contactRow struct {
	label string
	frags []typeset.LineFragment // value, wrapped to the value column
}

// drawDetailBand lays out the two-column block under the header: date,
// company, location and job title on the left, the CONTACT INFO table on the
// right. The two columns keep independent cursors; the page cursor resumes
// at the lower of their two ending positions. The band cannot split across a
// page boundary, so its full height is reserved up front.
func drawDetailBand(cv typeset.Canvas, cur *typeset.Cursor, f letter.Fields, date time.Time) error {
	leftW := ContentWidth * 0.56
	rightW := ContentWidth * 0.40
	colGap := ContentWidth - leftW - rightW
	xLeft := Margin
	xRight := Margin + leftW + colGap

	dateStyle := textStyle{typeset.FontBold, classicSectionSize, classicLeading, typeset.Black}
	lineStyle := textStyle{typeset.FontBody, classicBodySize, classicLeading, typeset.Black}
	labelStyle := textStyle{typeset.FontBody, classicRoleSize, classicLeading, subtleGray}
	valueStyle := textStyle{typeset.FontBody, classicRoleSize, classicLeading, typeset.Black}

	// Left column: date in bold, then company, location and job title.
	var left []bandLine
	addLeft := func(text string, st textStyle) error {
		if text == "" {
			return nil
		}
		frags, err := typeset.Wrap(cv, text, st.font, st.size, leftW)
		if err != nil {
			return err
		}
		left = append(left, bandLine{frags, st})
		return nil
	}
	if err := addLeft(date.Format("02/01/2006"), dateStyle); err != nil {
		return err
	}
	for _, text := range []string{f.CompanyName, f.CompanyLocation, f.JobTitle} {
		if err := addLeft(text, lineStyle); err != nil {
			return err
		}
	}

	// Right column rows: phone, email, first address line.
	labelW := rightW * 0.30
	valueW := rightW - labelW
	var rows []contactRow
	addRow := func(label, value string) error {
		if value == "" {
			return nil
		}
		frags, err := typeset.Wrap(cv, value, valueStyle.font, valueStyle.size, valueW)
		if err != nil {
			return err
		}
		rows = append(rows, contactRow{label, frags})
		return nil
	}
	if err := addRow("Phone", f.ApplicantPhone); err != nil {
		return err
	}
	if err := addRow("Email", f.ApplicantEmail); err != nil {
		return err
	}
	if lines := f.AddressLines(); len(lines) > 0 {
		if err := addRow("Location", lines[0]); err != nil {
			return err
		}
	}

	// Reserve the whole band before drawing anything.
	leftH := 0.0
	for _, ln := range left {
		leftH += classicLeading * float64(len(ln.frags))
	}
	rightH := classicLeading + 4 // CONTACT INFO heading
	for _, row := range rows {
		rightH += classicLeading * float64(len(row.frags))
	}
	cur.EnsureSpace(math.Max(leftH, rightH))

	// Left column.
	yLeft := cur.Y()
	for _, ln := range left {
		if err := cv.SetFont(ln.st.font, ln.st.size); err != nil {
			return err
		}
		cv.SetColor(ln.st.color)
		for _, frag := range ln.frags {
			if len(frag.Words) > 0 {
				cv.Text(xLeft, yLeft, strings.Join(frag.Words, " "))
			}
			yLeft -= classicLeading
		}
	}

	// Right column heading, right-aligned against the column edge.
	yRight := cur.Y()
	const heading = "CONTACT INFO"
	if err := cv.SetFont(typeset.FontBold, classicSectionSize); err != nil {
		return err
	}
	headingW, err := cv.Width(heading, typeset.FontBold, classicSectionSize)
	if err != nil {
		return err
	}
	cv.SetColor(headingGray)
	cv.Text(xRight+rightW-headingW, yRight, heading)
	yRight -= classicLeading + 4

	// Label/value rows; values wrap within the narrower value column.
	for _, row := range rows {
		if err := cv.SetFont(labelStyle.font, labelStyle.size); err != nil {
			return err
		}
		cv.SetColor(labelStyle.color)
		cv.Text(xRight, yRight, row.label)

		if err := cv.SetFont(valueStyle.font, valueStyle.size); err != nil {
			return err
		}
		cv.SetColor(valueStyle.color)
		for i, frag := range row.frags {
			if i > 0 {
				yRight -= classicLeading
			}
			if len(frag.Words) > 0 {
				cv.Text(xRight+labelW, yRight, strings.Join(frag.Words, " "))
			}
		}
		yRight -= classicLeading
	}

	// Resume the page cursor below the taller column.
	endY := math.Min(yLeft, yRight)
	cur.Advance(cur.Y() - endY + 18)
	return nil
}
