package typeset

import (
	"fmt"
	"strings"
)

// WordRun is a word (or a whole left-aligned line) placed at a horizontal
// offset from the start of its line.
type WordRun struct {
	X    float64
	Text string
}

// PlaceLine converts one line fragment into positioned word runs.
//
// When justify is false, or the fragment holds a single word, the words are
// emitted as one run with natural single-space gaps. Otherwise the leftover
// width is redistributed evenly across the inter-word gaps so the line spans
// exactly maxWidth. Callers must pass justify=false for the last line of a
// paragraph; short trailing lines are never stretched.
//
// An empty fragment yields no runs.
func PlaceLine(m Metrics, frag LineFragment, font Font, size, maxWidth float64, justify bool) ([]WordRun, error) {
	if len(frag.Words) == 0 {
		return nil, nil
	}
	if !justify || len(frag.Words) == 1 {
		return []WordRun{{X: 0, Text: strings.Join(frag.Words, " ")}}, nil
	}

	gaps := len(frag.Words) - 1
	gapW := (maxWidth - frag.WordWidth) / float64(gaps)
	if gapW < 0 {
		return nil, fmt.Errorf("%w: line of %d words is %.2fpt over budget",
			ErrNegativeGap, len(frag.Words), frag.WordWidth-maxWidth)
	}

	runs := make([]WordRun, 0, len(frag.Words))
	x := 0.0
	for _, w := range frag.Words {
		runs = append(runs, WordRun{X: x, Text: w})
		ww, err := m.Width(w, font, size)
		if err != nil {
			return nil, err
		}
		x += ww + gapW
	}
	return runs, nil
}
