// Package resumetext extracts the embedded text layer from resume PDFs.
//
// Only digitally produced PDFs carry a text layer; scanned, image-only
// resumes yield no text and are reported as an error rather than silently
// producing an empty extraction.
package resumetext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF returns the plain text of every page that has any, joined with
// blank lines in page order.
func FromPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("resume PDF data is empty")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open resume PDF: %w", err)
	}

	fonts := make(map[string]*pdf.Font)
	var parts []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := p.Font(name)
				fonts[name] = &f
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		if t := strings.TrimSpace(text); t != "" {
			parts = append(parts, t)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text layer found in resume PDF")
	}
	return strings.Join(parts, "\n\n"), nil
}
