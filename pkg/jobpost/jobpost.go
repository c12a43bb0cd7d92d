// Package jobpost loads job descriptions from plain text files or saved
// HTML job postings.
package jobpost

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Load reads a job description from path. Files with an .html or .htm
// extension, or whose content starts with an HTML document marker, are
// reduced to their visible text; anything else is returned as-is.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".html" || ext == ".htm" || looksLikeHTML(data) {
		text, err := FromHTML(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse job posting HTML: %w", err)
		}
		return text, nil
	}
	return strings.TrimSpace(string(data)), nil
}

// FromHTML extracts the visible text of an HTML job posting. Script, style
// and head content is skipped; block-level elements become line breaks so
// list-style requirements stay readable for the extractor.
func FromHTML(data []byte) (string, error) {
	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head", "noscript":
				return
			case "br", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
				b.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseBlank(b.String()), nil
}

func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 256)]))
	return strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html")
}

// collapseBlank trims every line and squeezes runs of blank lines down to
// one, which keeps LLM prompts compact.
func collapseBlank(s string) string {
	var out []string
	blank := true
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, ln)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
