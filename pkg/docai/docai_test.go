package docai

import (
	"testing"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

func entity(typ, mention string) *documentaipb.Document_Entity {
	return &documentaipb.Document_Entity{Type: typ, MentionText: mention}
}

func TestConfigAddressing(t *testing.T) {
	cfg := &Config{ProjectID: "my-project", Location: "eu", ProcessorID: "abc123"}
	if got, want := cfg.endpoint(), "eu-documentai.googleapis.com:443"; got != want {
		t.Errorf("endpoint: got %q, want %q", got, want)
	}
	if got, want := cfg.processorName(), "projects/my-project/locations/eu/processors/abc123"; got != want {
		t.Errorf("processorName: got %q, want %q", got, want)
	}
}

func TestConfigCredentials(t *testing.T) {
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/env/key.json")
	cfg := &Config{}
	if got := cfg.credentials(); got != "/env/key.json" {
		t.Errorf("env fallback: got %q", got)
	}
	cfg.CredentialsFile = "/explicit/key.json"
	if got := cfg.credentials(); got != "/explicit/key.json" {
		t.Errorf("explicit path did not win: got %q", got)
	}
}

func TestFieldsFromDocument(t *testing.T) {
	doc := &documentaipb.Document{
		Entities: []*documentaipb.Document_Entity{
			entity("applicant_name", "  Jane Doe "),
			entity("applicant_phone", "555-1234"),
			entity("applicant_phone", "555-9999"), // later mention loses
			entity("company_name", "Acme Corp"),
			entity("shoe_size", "42"), // unknown type ignored
		},
	}
	f := FieldsFromDocument(doc)
	if f.ApplicantName != "Jane Doe" {
		t.Errorf("name not cleaned: %q", f.ApplicantName)
	}
	if f.ApplicantPhone != "555-1234" {
		t.Errorf("first mention did not win: %q", f.ApplicantPhone)
	}
	if f.CompanyName != "Acme Corp" {
		t.Errorf("company: %q", f.CompanyName)
	}
	if f.ApplicantEmail != "" || f.JobTitle != "" {
		t.Errorf("absent entities produced values: %+v", f)
	}
}

func TestFieldsFromDocumentEmptyMentionSkipped(t *testing.T) {
	doc := &documentaipb.Document{
		Entities: []*documentaipb.Document_Entity{
			entity("applicant_email", ""),
			entity("applicant_email", "jane@example.com"),
		},
	}
	if f := FieldsFromDocument(doc); f.ApplicantEmail != "jane@example.com" {
		t.Errorf("empty first mention blocked the real one: %q", f.ApplicantEmail)
	}
}

func TestFieldsFromDocumentNil(t *testing.T) {
	var zero = FieldsFromDocument(nil)
	if zero != FieldsFromDocument(&documentaipb.Document{}) {
		t.Error("nil document should yield empty fields")
	}
}
