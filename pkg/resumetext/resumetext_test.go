package resumetext

import (
	"strings"
	"testing"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/letterpdf"
)

func TestFromPDFEmptyData(t *testing.T) {
	if _, err := FromPDF(nil); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestFromPDFGarbage(t *testing.T) {
	if _, err := FromPDF([]byte("this is not a pdf")); err == nil {
		t.Error("expected error for non-PDF data")
	}
}

func TestFromPDFRoundTrip(t *testing.T) {
	// Render a letter with the in-house backend and read its text layer
	// back; enough to prove digitally produced PDFs extract cleanly.
	rec := &letter.Record{
		Extracted: letter.Fields{
			ApplicantName: "Jane Doe",
			CompanyName:   "Acme Corp",
		},
		CoverLetter: letter.CoverLetter{Paragraphs: []string{
			"I build reliable backend services in Go.",
		}},
	}
	opts := letterpdf.DefaultOptions()
	opts.Date = time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	data, err := letterpdf.Render(rec, "minimal", opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	text, err := FromPDF(data)
	if err != nil {
		t.Fatalf("FromPDF: %v", err)
	}
	for _, want := range []string{"Jane Doe", "Sincerely,"} {
		if !strings.Contains(text, want) {
			t.Errorf("extracted text missing %q:\n%s", want, text)
		}
	}
}
