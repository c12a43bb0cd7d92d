package typeset

import "strings"

// LineFragment is one wrapped line: its word tokens plus the total measured
// width of the words alone, inter-word gaps excluded. A fragment with no
// words represents a blank line. Fragments are immutable once produced.
type LineFragment struct {
	Words     []string
	WordWidth float64
}

// Wrap breaks text into line fragments that fit within maxWidth when drawn
// with the given font and size.
//
// Explicit newlines are honored first: each segment wraps independently, so
// author-intended breaks (multi-line addresses, blank lines) survive. Within
// a segment, words accumulate greedily while the line plus a space plus the
// next word still fits. A single word wider than maxWidth is placed alone on
// its own line, never truncated or split. An empty segment yields one empty
// fragment, preserving vertical blank-line spacing.
func Wrap(m Metrics, text string, font Font, size, maxWidth float64) ([]LineFragment, error) {
	spaceW, err := m.Width(" ", font, size)
	if err != nil {
		return nil, err
	}

	var frags []LineFragment
	for _, segment := range strings.Split(text, "\n") {
		words := strings.Fields(segment)
		if len(words) == 0 {
			frags = append(frags, LineFragment{})
			continue
		}

		var cur LineFragment
		lineW := 0.0 // words plus gaps of the open line
		for _, w := range words {
			ww, err := m.Width(w, font, size)
			if err != nil {
				return nil, err
			}
			switch {
			case len(cur.Words) == 0:
				cur = LineFragment{Words: []string{w}, WordWidth: ww}
				lineW = ww
			case lineW+spaceW+ww <= maxWidth:
				cur.Words = append(cur.Words, w)
				cur.WordWidth += ww
				lineW += spaceW + ww
			default:
				frags = append(frags, cur)
				cur = LineFragment{Words: []string{w}, WordWidth: ww}
				lineW = ww
			}
		}
		frags = append(frags, cur)
	}
	return frags, nil
}
