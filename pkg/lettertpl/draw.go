package lettertpl

import (
	"github.com/teitur/lettersmith/pkg/typeset"
)

// textStyle bundles the font parameters a block of text is drawn with.
type textStyle struct {
	font    typeset.Font
	size    float64
	leading float64
	color   typeset.Color
}

// drawFlowed wraps text to maxWidth and draws it line by line at x, advancing
// the cursor. Every line checks remaining page space before it is placed, so
// long text splits cleanly across pages. When justify is set, all lines but
// the last are stretched to maxWidth; the last line always keeps natural
// spacing. Blank lines (consecutive newlines in the source) advance the
// cursor without drawing.
func drawFlowed(cv typeset.Canvas, cur *typeset.Cursor, text string, x, maxWidth float64, st textStyle, justify bool) error {
	frags, err := typeset.Wrap(cv, text, st.font, st.size, maxWidth)
	if err != nil {
		return err
	}
	if err := cv.SetFont(st.font, st.size); err != nil {
		return err
	}
	cv.SetColor(st.color)

	for i, frag := range frags {
		cur.EnsureSpace(st.leading)
		if len(frag.Words) == 0 {
			cur.Advance(st.leading)
			continue
		}
		last := i == len(frags)-1
		runs, err := typeset.PlaceLine(cv, frag, st.font, st.size, maxWidth, justify && !last)
		if err != nil {
			return err
		}
		for _, r := range runs {
			cv.Text(x+r.X, cur.Y(), r.Text)
		}
		cur.Advance(st.leading)
	}
	return nil
}

// drawLine places a single pre-formatted line at x without wrapping.
func drawLine(cv typeset.Canvas, cur *typeset.Cursor, s string, x float64, st textStyle) error {
	if err := cv.SetFont(st.font, st.size); err != nil {
		return err
	}
	cv.SetColor(st.color)
	cur.EnsureSpace(st.leading)
	cv.Text(x, cur.Y(), s)
	cur.Advance(st.leading)
	return nil
}
