package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/folioscan"
)

func ptr(s string) *string { return &s }

func weight(w float64) *float64 { return &w }

func TestClassificationMarkdown(t *testing.T) {
	batch := []folioscan.ClassifiedAsset{
		{
			OriginalValue: "US0378331005",
			Category:      folioscan.CategoryISIN,
			ISIN:          ptr("US0378331005"),
			Weight:        weight(0.60),
		},
		{
			OriginalValue: "MSFT",
			Category:      folioscan.CategoryTicker,
			Ticker:        ptr("MSFT"),
			ISIN:          ptr("US5949181045"),
			Weight:        weight(0.40),
		},
		{
			OriginalValue: "???",
			Category:      folioscan.CategoryUnknown,
			Weight:        weight(0),
			ErrorMessage:  ptr("unrecognized asset type"),
		},
	}
	values := []folioscan.RawValue{
		folioscan.NumberValue(6000),
		folioscan.NumberValue(4000),
		folioscan.NullValue(),
	}

	got := ClassificationMarkdown(NewReport("broker.png", "EUR", batch, values))

	for _, want := range []string{
		"# Portfolio Classification for broker.png",
		"| 1 | US0378331005 | ISIN | US0378331005 | - | 60.00% |",
		"| 2 | MSFT | TICKER | US5949181045 | MSFT | 40.00% |",
		"| 3 | ??? | UNKNOWN | - | - | 0.00% | - | unrecognized asset type |",
		"Total weight: **100.00%**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("report contains a template error:\n%s", got)
	}
}

func TestClassificationMarkdownNoSource(t *testing.T) {
	got := ClassificationMarkdown(NewReport("", "EUR", nil, nil))
	if !strings.Contains(got, "# Portfolio Classification\n") {
		t.Errorf("title should omit the source when empty:\n%s", got)
	}
}
