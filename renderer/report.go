// Package renderer turns a classified batch into a human-readable markdown
// report, suitable for the terminal (rendered with glamour by the CLI) or
// for pasting into notes.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/folioscan"
)

//go:embed templates/*.md
var templates embed.FS

// Row is the render model for one classified line item.
type Row struct {
	Index     int
	Token     string
	Category  string
	ISIN      string
	Ticker    string
	Weight    string
	Valuation string
	Note      string
}

// Report is the render model for one classified batch.
type Report struct {
	// Source names the input (image or file); empty hides it from the title.
	Source string
	Rows   []Row
	// TotalWeight is the sum of the batch weights. Under the
	// externally-supplied percentage policy it may legitimately differ
	// from 100%.
	TotalWeight folioscan.Percent
}

// NewReport builds the render model from a classified batch. values carries
// the raw valuation signals in batch order and may be nil; currency is only
// used to format monetary valuations.
func NewReport(source, currency string, batch []folioscan.ClassifiedAsset, values []folioscan.RawValue) *Report {
	r := &Report{Source: source}
	for i, a := range batch {
		row := Row{
			Index:     i + 1,
			Token:     a.OriginalValue,
			Category:  a.Category.String(),
			ISIN:      orDash(a.ISIN),
			Ticker:    orDash(a.Ticker),
			Weight:    "-",
			Valuation: "-",
		}
		if a.Weight != nil {
			w := folioscan.WeightPercent(*a.Weight)
			row.Weight = w.String()
			r.TotalWeight += w
		}
		if i < len(values) && values[i].Kind() == folioscan.ValueNumber {
			row.Valuation = folioscan.M(values[i].Number(), currency).String()
		}
		if a.ErrorMessage != nil {
			row.Note = *a.ErrorMessage
		}
		r.Rows = append(r.Rows, row)
	}
	return r
}

// ClassificationMarkdown renders the report to a markdown string.
func ClassificationMarkdown(r *Report) string {
	return renderTemplate("classification", "templates/report.md", r)
}

// renderTemplate is a small utility to render one embedded template.
func renderTemplate(templateName, mainFile string, data any) string {
	content, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
