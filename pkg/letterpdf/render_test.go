package letterpdf

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/lettertpl"
	"github.com/teitur/lettersmith/pkg/typeset"
)

func testRecord() *letter.Record {
	return &letter.Record{
		Extracted: letter.Fields{
			ApplicantName:         "Jane Doe",
			ApplicantEmail:        "jane@example.com",
			ApplicantPhone:        "555-1234",
			ApplicantAddress:      "12 Elm Street\nSpringfield NSW",
			ApplicantStatusOrRole: "Software Engineer",
			CompanyName:           "Acme Corp",
			CompanyLocation:       "Sydney",
			HiringManagerName:     "Ms Lee",
			JobTitle:              "Staff Engineer",
		},
		CoverLetter: letter.CoverLetter{Paragraphs: []string{
			"I am excited to apply for this role at Acme Corp.",
			"My background fits the requirements well.",
		}},
	}
}

func fixedOptions() Options {
	opts := DefaultOptions()
	opts.Date = time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	return opts
}

func TestRenderProducesPDF(t *testing.T) {
	for _, tpl := range []string{"classic", "minimal"} {
		out, err := Render(testRecord(), tpl, fixedOptions())
		if err != nil {
			t.Fatalf("Render(%s): %v", tpl, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("Render(%s): output is not a PDF, starts %q", tpl, out[:min(8, len(out))])
		}
		if len(out) < 1000 {
			t.Errorf("Render(%s): suspiciously small output, %d bytes", tpl, len(out))
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	// With the date pinned, the creation and modification timestamps are
	// fixed too, so two renders must agree byte for byte.
	a, err := Render(testRecord(), "classic", fixedOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b, err := Render(testRecord(), "classic", fixedOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated renders of the same record differ")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	out, err := Render(testRecord(), "fancy", fixedOptions())
	if !errors.Is(err, lettertpl.ErrUnsupportedTemplate) {
		t.Errorf("got %v, want ErrUnsupportedTemplate", err)
	}
	if out != nil {
		t.Error("partial output returned on error")
	}
}

func TestRenderNilRecord(t *testing.T) {
	if _, err := Render(nil, "classic", fixedOptions()); !errors.Is(err, letter.ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestRenderSparseRecord(t *testing.T) {
	// An all-empty record still renders: default hiring manager greeting,
	// sign-off, no crash on missing fields.
	for _, tpl := range []string{"classic", "minimal"} {
		out, err := Render(&letter.Record{}, tpl, fixedOptions())
		if err != nil {
			t.Fatalf("Render(%s) on empty record: %v", tpl, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("Render(%s): empty record output is not a PDF", tpl)
		}
	}
}

func TestCanvasUnknownFont(t *testing.T) {
	cv := newCanvas(DefaultFont, time.Now())
	if err := cv.SetFont(typeset.Font(99), 10); !errors.Is(err, typeset.ErrUnknownFont) {
		t.Errorf("SetFont: got %v, want ErrUnknownFont", err)
	}
	if _, err := cv.Width("x", typeset.Font(99), 10); !errors.Is(err, typeset.ErrUnknownFont) {
		t.Errorf("Width: got %v, want ErrUnknownFont", err)
	}
}

func TestCanvasWidthRestoresDrawingFont(t *testing.T) {
	cv := newCanvas(DefaultFont, time.Now())
	if err := cv.SetFont(typeset.FontBold, 12); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	if _, err := cv.Width("measure me", typeset.FontBody, 9); err != nil {
		t.Fatalf("Width: %v", err)
	}
	if cv.active != typeset.FontBold || cv.activeSize != 12 {
		t.Errorf("drawing font lost after measurement: %v/%v", cv.active, cv.activeSize)
	}
}
