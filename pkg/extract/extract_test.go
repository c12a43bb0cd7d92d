package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/teitur/lettersmith/pkg/letter"
)

// cannedModel answers every prompt with a fixed string and records the last
// prompt it saw.
type cannedModel struct {
	answer string
	err    error
	prompt string
}

func (m *cannedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, opts ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if t, ok := part.(llms.TextContent); ok {
				m.prompt = t.Text
			}
		}
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.answer}},
	}, nil
}

func (m *cannedModel) Call(ctx context.Context, prompt string, opts ...llms.CallOption) (string, error) {
	m.prompt = prompt
	return m.answer, m.err
}

const cannedJSON = `{
	"extracted": {"applicant_name": "Jane Doe", "company_name": "Acme Corp"},
	"cover_letter": {"paragraphs": ["I am excited to apply."]},
	"missing_info_questions": ["What is your phone number?"]
}`

func TestExtract(t *testing.T) {
	m := &cannedModel{answer: cannedJSON}
	rec, err := NewLLMExtractor(m).Extract(context.Background(), "Jane Doe\nGo engineer", "Acme Corp is hiring")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.Extracted.ApplicantName != "Jane Doe" || rec.Extracted.CompanyName != "Acme Corp" {
		t.Errorf("fields not decoded: %+v", rec.Extracted)
	}
	if len(rec.CoverLetter.Paragraphs) != 1 {
		t.Errorf("paragraphs: %v", rec.CoverLetter.Paragraphs)
	}
	if len(rec.MissingInfoQuestions) != 1 {
		t.Errorf("questions: %v", rec.MissingInfoQuestions)
	}

	// Both inputs must reach the model.
	if !strings.Contains(m.prompt, "Go engineer") || !strings.Contains(m.prompt, "Acme Corp is hiring") {
		t.Errorf("prompt missing inputs:\n%s", m.prompt)
	}
}

func TestExtractStripsCodeFences(t *testing.T) {
	m := &cannedModel{answer: "```json\n" + cannedJSON + "\n```"}
	rec, err := NewLLMExtractor(m).Extract(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if rec.Extracted.ApplicantName != "Jane Doe" {
		t.Errorf("fenced response not decoded: %+v", rec.Extracted)
	}
}

func TestExtractUnusableResponse(t *testing.T) {
	m := &cannedModel{answer: "Sorry, I cannot help with that."}
	_, err := NewLLMExtractor(m).Extract(context.Background(), "resume", "job")
	if !errors.Is(err, letter.ErrInvalidInput) {
		t.Errorf("got %v, want wrapped ErrInvalidInput", err)
	}
}

func TestExtractModelError(t *testing.T) {
	m := &cannedModel{err: errors.New("rate limited")}
	if _, err := NewLLMExtractor(m).Extract(context.Background(), "resume", "job"); err == nil {
		t.Error("expected generation error to propagate")
	}
}

func TestExtractNilModel(t *testing.T) {
	if _, err := (&LLMExtractor{}).Extract(context.Background(), "resume", "job"); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
