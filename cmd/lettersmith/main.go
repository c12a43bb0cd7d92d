// lettersmith is a command-line tool that turns a resume PDF and a job
// description into a typeset cover letter PDF.
//
// The tool extracts the resume's text layer, asks a chat model to draft the
// letter and pull out the contact fields, then lays the result out with one
// of the built-in templates. Contact fields can optionally be refined with
// a Google Document AI custom extractor run against the resume PDF itself.
//
// Configuration:
//
// The tool requires a YAML configuration file with the model settings:
//
//	llm:
//	  model: "gpt-4o-mini"
//	  base_url: ""          # optional, for OpenAI-compatible endpoints
//	docai:                  # optional, only needed with -docai
//	  project_id: "your-gcp-project-id"
//	  location: "us"
//	  processor_id: "your-processor-id"
//	  credentials_file: ""  # optional, defaults to GOOGLE_APPLICATION_CREDENTIALS
//
// Usage:
//
//	lettersmith -config config.yml -resume resume.pdf -job job.txt -output letter.pdf [options]
//
// Required flags:
//
//	-config string    Path to the YAML configuration file
//	-resume string    Path to the resume PDF
//	-job string       Path to the job description (.txt, .html or .htm)
//	-output string    Output PDF path
//
// Options:
//
//	-template string  Layout template, "classic" or "minimal" (default "classic")
//	-record string    Path to save the extracted record as JSON
//	-docai            Refine contact fields with Google Document AI
//	-date string      Letter date as YYYY-MM-DD (default: today)
//	-overwrite        Overwrite the output PDF if it exists
//
// Authentication:
//
// The chat model reads its API key from the provider's usual environment
// variable (OPENAI_API_KEY for OpenAI). Document AI uses the configured
// credentials_file, or GOOGLE_APPLICATION_CREDENTIALS when unset.
//
// Example:
//
//	export OPENAI_API_KEY=sk-...
//	lettersmith -config config.yml -resume resume.pdf -job posting.html -template minimal -output letter.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tmc/langchaingo/llms/openai"
	"gopkg.in/yaml.v3"

	"github.com/teitur/lettersmith/pkg/docai"
	"github.com/teitur/lettersmith/pkg/extract"
	"github.com/teitur/lettersmith/pkg/jobpost"
	"github.com/teitur/lettersmith/pkg/letterpdf"
	"github.com/teitur/lettersmith/pkg/resumetext"
)

type yamlConfig struct {
	LLM struct {
		Model   string `yaml:"model"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"llm"`
	DocAI struct {
		ProjectID       string `yaml:"project_id"`
		Location        string `yaml:"location"`
		ProcessorID     string `yaml:"processor_id"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"docai"`
}

// loadConfig reads the YAML configuration file.
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file (required)")
	resumePath := flag.String("resume", "", "Path to the resume PDF (required)")
	jobPath := flag.String("job", "", "Path to the job description file (required)")
	outputPath := flag.String("output", "", "Output PDF path (required)")
	templateName := flag.String("template", "classic", "Layout template: classic or minimal")
	recordPath := flag.String("record", "", "Path to save the extracted record JSON")
	useDocai := flag.Bool("docai", false, "Refine contact fields with Google Document AI")
	dateStr := flag.String("date", "", "Letter date as YYYY-MM-DD (default: today)")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	flag.Parse()

	if *configPath == "" || *resumePath == "" || *jobPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config, -resume, -job and -output are required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*outputPath); err == nil && !*overwrite {
		fmt.Printf("Output file %s already exists. Use -overwrite to overwrite.\n", *outputPath)
		os.Exit(1)
	}

	var date time.Time
	if *dateStr != "" {
		var err error
		if date, err = time.Parse("2006-01-02", *dateStr); err != nil {
			log.Fatalf("Invalid -date value %q: %v", *dateStr, err)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.LLM.Model == "" {
		log.Fatalf("Config is missing llm.model")
	}

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("Failed to read resume PDF: %v", err)
	}

	fmt.Println("Extracting resume text:", *resumePath)
	resumeText, err := resumetext.FromPDF(resumeBytes)
	if err != nil {
		log.Fatalf("Failed to extract resume text: %v", err)
	}

	jobText, err := jobpost.Load(*jobPath)
	if err != nil {
		log.Fatalf("Failed to load job description: %v", err)
	}
	if jobText == "" {
		log.Fatalf("Job description %s is empty", *jobPath)
	}

	opts := []openai.Option{openai.WithModel(cfg.LLM.Model)}
	if cfg.LLM.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.LLM.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create chat model: %v", err)
	}

	ctx := context.Background()
	fmt.Println("Drafting cover letter with model:", cfg.LLM.Model)
	rec, err := extract.NewLLMExtractor(model).Extract(ctx, resumeText, jobText)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	if *useDocai {
		if cfg.DocAI.ProcessorID == "" {
			log.Fatalf("-docai requires a docai section in the config")
		}
		fmt.Println("Refining contact fields with Document AI")
		err := docai.RefineFields(ctx, rec, resumeBytes, &docai.Config{
			ProjectID:       cfg.DocAI.ProjectID,
			Location:        cfg.DocAI.Location,
			ProcessorID:     cfg.DocAI.ProcessorID,
			CredentialsFile: cfg.DocAI.CredentialsFile,
		})
		if err != nil {
			log.Fatalf("Document AI refinement failed: %v", err)
		}
	}

	if *recordPath != "" {
		recordJSON, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode record JSON: %v", err)
		}
		if err := os.WriteFile(*recordPath, recordJSON, 0644); err != nil {
			log.Fatalf("Failed to write record JSON: %v", err)
		}
		fmt.Println("Extracted record saved to:", *recordPath)
	}

	pdfBytes, err := letterpdf.Render(rec, *templateName, letterpdf.Options{Date: date})
	if err != nil {
		log.Fatalf("Failed to render cover letter: %v", err)
	}
	if err := os.WriteFile(*outputPath, pdfBytes, 0644); err != nil {
		log.Fatalf("Failed to write output PDF: %v", err)
	}
	fmt.Println("Cover letter saved to:", *outputPath)

	for _, q := range rec.MissingInfoQuestions {
		fmt.Println("Missing info:", q)
	}
}
