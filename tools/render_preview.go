package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/preview"
)

// Renders a resume document JSON file to HTML with the built-in templates.
// -preview fills empty fields with sample content the way the editor does.
func main() {
	in := flag.String("in", "resume.json", "document JSON file")
	out := flag.String("out", "resume.html", "output HTML file")
	asPreview := flag.Bool("preview", false, "apply the sample overlay")
	width := flag.Int("width", export.DefaultRasterOptions().WidthPx, "page width in px")
	flag.Parse()

	b, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read document: %v\n", err)
		os.Exit(2)
	}
	if err := model.ValidateDocument(b); err != nil {
		fmt.Fprintf(os.Stderr, "invalid document: %v\n", err)
		os.Exit(2)
	}
	doc := domain.NewDocument()
	if err := json.Unmarshal(b, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}
	if *asPreview {
		var filled []string
		doc, filled = preview.Overlay(doc)
		fmt.Printf("placeholders: %v\n", filled)
	}

	ts, err := export.LoadTemplates("", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load templates: %v\n", err)
		os.Exit(2)
	}
	html, err := ts.Render(doc, *width, *asPreview)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(*out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", *out)
}
