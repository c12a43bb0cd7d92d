package typeset

import "testing"

type countingBreaker struct {
	breaks int
}

func (b *countingBreaker) PageBreak() { b.breaks++ }

func TestCursorEnsureSpace(t *testing.T) {
	b := &countingBreaker{}
	cur := NewCursor(720, 72, b)

	if cur.Y() != 720 || cur.Page() != 1 {
		t.Fatalf("fresh cursor at y=%.0f page=%d", cur.Y(), cur.Page())
	}

	// Plenty of room: no break.
	cur.EnsureSpace(14)
	if b.breaks != 0 {
		t.Fatalf("unexpected break with %d points of room", 720-72)
	}

	// Walk down to just above the bottom margin.
	cur.Advance(630) // y = 90
	cur.EnsureSpace(14)
	if b.breaks != 0 {
		t.Errorf("broke page with 18 points left for a 14 point line")
	}

	cur.Advance(14) // y = 76
	cur.EnsureSpace(14)
	if b.breaks != 1 {
		t.Fatalf("expected a page break, got %d", b.breaks)
	}
	if cur.Y() != 720 {
		t.Errorf("cursor not reset to top: y=%.0f", cur.Y())
	}
	if cur.Page() != 2 {
		t.Errorf("page index %d, want 2", cur.Page())
	}
}

func TestCursorBreaksOnExactFit(t *testing.T) {
	// y - h == bottom counts as overflow: the baseline would sit on the margin.
	b := &countingBreaker{}
	cur := NewCursor(720, 72, b)
	cur.Advance(720 - 86) // y = 86
	cur.EnsureSpace(14)
	if b.breaks != 1 {
		t.Errorf("expected break when line lands exactly on the bottom margin")
	}
}

func TestCursorAdvanceIsUnconditional(t *testing.T) {
	b := &countingBreaker{}
	cur := NewCursor(720, 72, b)
	cur.Advance(700)
	if cur.Y() != 20 {
		t.Errorf("y=%.0f, want 20", cur.Y())
	}
	if b.breaks != 0 {
		t.Errorf("Advance must never break pages on its own")
	}
	// The next EnsureSpace corrects the transient violation.
	cur.EnsureSpace(14)
	if cur.Y() != 720 || b.breaks != 1 {
		t.Errorf("EnsureSpace did not recover: y=%.0f breaks=%d", cur.Y(), b.breaks)
	}
}
