// Package extract produces structured letter records from resume text and a
// job description.
//
// The Extractor interface decouples the rendering pipeline from whichever
// model backs it; the LLM implementation here drives an injected
// langchaingo chat model, so callers own client construction and no global
// client state exists.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"github.com/teitur/lettersmith/pkg/letter"
)

// Extractor turns resume text and a job description into a letter record.
type Extractor interface {
	Extract(ctx context.Context, resumeText, jobDescription string) (*letter.Record, error)
}

// LLMExtractor drafts the cover letter and pulls the contact fields with a
// chat model. The model is injected; construct it with whatever provider
// and options the caller needs.
type LLMExtractor struct {
	model llms.Model
}

// NewLLMExtractor wraps an injected chat model.
func NewLLMExtractor(model llms.Model) *LLMExtractor {
	return &LLMExtractor{model: model}
}

// Extract implements Extractor. The model is asked for strict JSON matching
// the letter record shape; its answer is decoded with the same lenient
// rules as any other record source.
func (e *LLMExtractor) Extract(ctx context.Context, resumeText, jobDescription string) (*letter.Record, error) {
	if e.model == nil {
		return nil, fmt.Errorf("no chat model configured")
	}

	prompt := buildPrompt(resumeText, jobDescription)
	out, err := llms.GenerateFromSinglePrompt(ctx, e.model, prompt, llms.WithJSONMode())
	if err != nil {
		return nil, fmt.Errorf("llm generation failed: %w", err)
	}

	rec, err := letter.Decode([]byte(stripFences(out)))
	if err != nil {
		return nil, fmt.Errorf("llm returned unusable record: %w", err)
	}
	return rec, nil
}

const promptTemplate = `You are an assistant that writes cover letters.

Using the resume and the job description below, respond with a single JSON
object and nothing else, in exactly this shape:

{
  "extracted": {
    "applicant_name": string or null,
    "applicant_email": string or null,
    "applicant_phone": string or null,
    "applicant_address": string or null,
    "applicant_status_or_role": string or null,
    "company_name": string or null,
    "company_location": string or null,
    "hiring_manager_name": string or null,
    "job_title": string or null
  },
  "cover_letter": {
    "paragraphs": [up to 3 strings: opening, body, closing]
  },
  "missing_info_questions": [strings]
}

Rules:
- Use null for any field the resume or job description does not state.
- Never invent contact details, names or addresses.
- Do not start the first paragraph with a "Dear ..." salutation; the
  letter template adds its own.
- List anything you would need to ask the applicant in
  missing_info_questions.

RESUME:
%s

JOB DESCRIPTION:
%s
`

func buildPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(resumeText), strings.TrimSpace(jobDescription))
}

// stripFences removes a Markdown code fence some models wrap around JSON
// despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
