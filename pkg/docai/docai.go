// Package docai refines letter contact fields with a Google Document AI
// custom extractor run against the original resume PDF.
//
// An LLM working from extracted plain text occasionally garbles phone
// numbers or drops address lines; a custom extractor processor reads them
// off the PDF itself. The entity types configured on the processor are
// expected to match the letter record's extracted field names.
//
// Authentication uses the service account key named in the Config, falling
// back to the GOOGLE_APPLICATION_CREDENTIALS environment variable.
package docai

import (
	"context"
	"fmt"
	"os"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/teitur/lettersmith/pkg/letter"
)

// Config identifies the Document AI processor to call and how to
// authenticate against it.
type Config struct {
	ProjectID   string
	Location    string
	ProcessorID string

	// CredentialsFile is the path to a service account key. When empty the
	// GOOGLE_APPLICATION_CREDENTIALS environment variable is used.
	CredentialsFile string
}

// endpoint returns the regional API endpoint for the configured location.
func (c *Config) endpoint() string {
	return fmt.Sprintf("%s-documentai.googleapis.com:443", c.Location)
}

// processorName returns the fully qualified resource name of the processor.
func (c *Config) processorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s",
		c.ProjectID, c.Location, c.ProcessorID)
}

func (c *Config) credentials() string {
	if c.CredentialsFile != "" {
		return c.CredentialsFile
	}
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
}

// ProcessResume sends resume PDF bytes to Document AI and returns the raw
// Document proto response.
func ProcessResume(ctx context.Context, pdfBytes []byte, cfg *Config) (*documentaipb.Document, error) {
	if cfg == nil {
		return nil, fmt.Errorf("docai config is nil")
	}

	client, err := documentai.NewDocumentProcessorClient(
		ctx,
		option.WithEndpoint(cfg.endpoint()),
		option.WithCredentialsFile(cfg.credentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	defer client.Close()

	resp, err := client.ProcessDocument(ctx, &documentaipb.ProcessRequest{
		Name: cfg.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdfBytes,
				MimeType: "application/pdf",
			},
		},
		SkipHumanReview: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process resume: %w", err)
	}
	return resp.Document, nil
}

// FieldsFromDocument maps custom-extractor entities onto letter fields.
// Entity types that do not correspond to a letter field are ignored; when a
// type appears more than once the first non-empty mention wins.
func FieldsFromDocument(doc *documentaipb.Document) letter.Fields {
	var f letter.Fields
	if doc == nil {
		return f
	}

	set := func(dst *string, value string) {
		if *dst == "" {
			*dst = letter.Clean(value)
		}
	}
	for _, entity := range doc.Entities {
		switch entity.Type {
		case "applicant_name":
			set(&f.ApplicantName, entity.MentionText)
		case "applicant_email":
			set(&f.ApplicantEmail, entity.MentionText)
		case "applicant_phone":
			set(&f.ApplicantPhone, entity.MentionText)
		case "applicant_address":
			set(&f.ApplicantAddress, entity.MentionText)
		case "applicant_status_or_role":
			set(&f.ApplicantStatusOrRole, entity.MentionText)
		case "company_name":
			set(&f.CompanyName, entity.MentionText)
		case "company_location":
			set(&f.CompanyLocation, entity.MentionText)
		case "hiring_manager_name":
			set(&f.HiringManagerName, entity.MentionText)
		case "job_title":
			set(&f.JobTitle, entity.MentionText)
		}
	}
	return f
}

// RefineFields runs the processor and overlays whatever it found onto the
// record's extracted fields.
func RefineFields(ctx context.Context, rec *letter.Record, pdfBytes []byte, cfg *Config) error {
	doc, err := ProcessResume(ctx, pdfBytes, cfg)
	if err != nil {
		return err
	}
	rec.Extracted.Merge(FieldsFromDocument(doc))
	return nil
}

// DebugJSON renders the raw Document AI response for inspection.
func DebugJSON(doc *documentaipb.Document) (string, error) {
	data, err := protojson.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
