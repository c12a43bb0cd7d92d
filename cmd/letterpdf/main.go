// letterpdf is a command-line tool that renders an extracted letter record
// to a cover letter PDF, without calling any model.
//
// It is the offline half of the lettersmith pipeline: feed it the record
// JSON that lettersmith saves with -record (or any JSON matching the record
// shape) and it lays the letter out with one of the built-in templates.
//
// Usage:
//
//	letterpdf -record record.json -output letter.pdf [options]
//
// Required flags:
//
//	-record string    Path to the letter record JSON
//	-output string    Output PDF path
//
// Options:
//
//	-template string  Layout template, "classic" or "minimal" (default "classic")
//	-date string      Letter date as YYYY-MM-DD (default: today)
//	-overwrite        Overwrite the output PDF if it exists
//
// Example:
//
//	letterpdf -record record.json -template minimal -date 2026-08-23 -output letter.pdf
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/teitur/lettersmith/pkg/letter"
	"github.com/teitur/lettersmith/pkg/letterpdf"
)

func main() {
	recordPath := flag.String("record", "", "Path to the letter record JSON (required)")
	outputPath := flag.String("output", "", "Output PDF path (required)")
	templateName := flag.String("template", "classic", "Layout template: classic or minimal")
	dateStr := flag.String("date", "", "Letter date as YYYY-MM-DD (default: today)")
	overwrite := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	flag.Parse()

	if *recordPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -record and -output are required")
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

	data, err := os.ReadFile(*recordPath)
	if err != nil {
		log.Fatalf("Failed to read record JSON: %v", err)
	}
	rec, err := letter.Decode(data)
	if err != nil {
		log.Fatalf("Failed to decode record: %v", err)
	}

	pdfBytes, err := letterpdf.Render(rec, *templateName, letterpdf.Options{Date: date})
	if err != nil {
		log.Fatalf("Failed to render cover letter: %v", err)
	}
	if err := os.WriteFile(*outputPath, pdfBytes, 0644); err != nil {
		log.Fatalf("Failed to write output PDF: %v", err)
	}
	fmt.Println("Cover letter saved to:", *outputPath)
}
