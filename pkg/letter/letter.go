// Package letter defines the structured cover letter record that flows from
// an extractor into the layout templates.
//
// A record carries the contact fields pulled from a resume, up to three body
// paragraphs, and any follow-up questions the extractor could not answer
// from its inputs. Records are read-only for the duration of a render.
//
// Decoding is deliberately lenient: extractors (LLMs in particular) produce
// imperfect JSON, so malformed sub-structures collapse to their empty state
// instead of failing the whole pipeline. Only a record that is not a JSON
// object at all is rejected outright.
package letter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when record data is not a JSON object.
var ErrInvalidInput = errors.New("invalid letter record")

// Record is the structured document an extractor produces and a layout
// template consumes.
type Record struct {
	Extracted            Fields      `json:"extracted"`
	CoverLetter          CoverLetter `json:"cover_letter"`
	MissingInfoQuestions []string    `json:"missing_info_questions,omitempty"`
}

// Fields holds the contact and position details pulled from the resume and
// job description. An empty string means the field is unknown; templates
// omit the corresponding line rather than render a blank.
type Fields struct {
	ApplicantName         string `json:"applicant_name,omitempty"`
	ApplicantEmail        string `json:"applicant_email,omitempty"`
	ApplicantPhone        string `json:"applicant_phone,omitempty"`
	ApplicantAddress      string `json:"applicant_address,omitempty"` // may span lines
	ApplicantStatusOrRole string `json:"applicant_status_or_role,omitempty"`
	CompanyName           string `json:"company_name,omitempty"`
	CompanyLocation       string `json:"company_location,omitempty"`
	HiringManagerName     string `json:"hiring_manager_name,omitempty"`
	JobTitle              string `json:"job_title,omitempty"`
}

// CoverLetter carries the drafted body paragraphs. Internal newlines inside
// a paragraph are preserved as forced line breaks.
type CoverLetter struct {
	Paragraphs []string `json:"paragraphs"`
}

// HiringManager returns the addressee, defaulting to "Hiring Manager" when
// the extractor found none.
func (f Fields) HiringManager() string {
	if f.HiringManagerName == "" {
		return "Hiring Manager"
	}
	return f.HiringManagerName
}

// AddressLines splits the applicant address into trimmed, non-empty lines.
func (f Fields) AddressLines() []string {
	var lines []string
	for _, ln := range strings.Split(f.ApplicantAddress, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// Merge overlays non-empty fields from over onto f. Used to refine
// LLM-extracted contact details with values read straight from the resume.
func (f *Fields) Merge(over Fields) {
	dst := []*string{
		&f.ApplicantName, &f.ApplicantEmail, &f.ApplicantPhone,
		&f.ApplicantAddress, &f.ApplicantStatusOrRole, &f.CompanyName,
		&f.CompanyLocation, &f.HiringManagerName, &f.JobTitle,
	}
	src := []string{
		over.ApplicantName, over.ApplicantEmail, over.ApplicantPhone,
		over.ApplicantAddress, over.ApplicantStatusOrRole, over.CompanyName,
		over.CompanyLocation, over.HiringManagerName, over.JobTitle,
	}
	for i, s := range src {
		if s != "" {
			*dst[i] = s
		}
	}
}

// Clean normalizes an extracted value: nil becomes the empty string, strings
// are whitespace-trimmed, and any other scalar is stringified.
func Clean(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// Decode parses record JSON. The top level must be an object; inside it,
// a missing or malformed "extracted" mapping, "cover_letter" object or
// "paragraphs" array is coerced to its empty state.
func Decode(data []byte) (*Record, error) {
	// Unmarshal treats a top-level null as a no-op on the staging struct,
	// so the object check has to happen before it runs.
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidInput)
	}

	var raw struct {
		Extracted   json.RawMessage `json:"extracted"`
		CoverLetter json.RawMessage `json:"cover_letter"`
		Missing     json.RawMessage `json:"missing_info_questions"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rec := &Record{}

	var extracted map[string]any
	if len(raw.Extracted) > 0 {
		// A non-object value leaves the map nil and every field empty.
		_ = json.Unmarshal(raw.Extracted, &extracted)
	}
	rec.Extracted = fieldsFromMap(extracted)

	var cover struct {
		Paragraphs json.RawMessage `json:"paragraphs"`
	}
	if len(raw.CoverLetter) > 0 {
		_ = json.Unmarshal(raw.CoverLetter, &cover)
	}
	var paragraphs []any
	if len(cover.Paragraphs) > 0 {
		_ = json.Unmarshal(cover.Paragraphs, &paragraphs)
	}
	for _, p := range paragraphs {
		rec.CoverLetter.Paragraphs = append(rec.CoverLetter.Paragraphs, Clean(p))
	}

	var questions []any
	if len(raw.Missing) > 0 {
		_ = json.Unmarshal(raw.Missing, &questions)
	}
	for _, q := range questions {
		if s := Clean(q); s != "" {
			rec.MissingInfoQuestions = append(rec.MissingInfoQuestions, s)
		}
	}

	return rec, nil
}

func fieldsFromMap(m map[string]any) Fields {
	return Fields{
		ApplicantName:         Clean(m["applicant_name"]),
		ApplicantEmail:        Clean(m["applicant_email"]),
		ApplicantPhone:        Clean(m["applicant_phone"]),
		ApplicantAddress:      Clean(m["applicant_address"]),
		ApplicantStatusOrRole: Clean(m["applicant_status_or_role"]),
		CompanyName:           Clean(m["company_name"]),
		CompanyLocation:       Clean(m["company_location"]),
		HiringManagerName:     Clean(m["hiring_manager_name"]),
		JobTitle:              Clean(m["job_title"]),
	}
}
