package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/folioscan"
	"github.com/google/subcommands"
)

func TestClassifyCmd(t *testing.T) {
	tmp := t.TempDir()
	in := filepath.Join(tmp, "extraction.json")
	out := filepath.Join(tmp, "result.json")

	extraction := `{"assets": [{"US0378331005": 1500}, {"MSFT": 2500}, {"Vanguard S&P 500 ETF": 1000}]}`
	if err := os.WriteFile(in, []byte(extraction), 0644); err != nil {
		t.Fatal(err)
	}

	c := &classifyCmd{}
	f := flag.NewFlagSet("classify", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-no-enrich", "-o", out, in}); err != nil {
		t.Fatal(err)
	}

	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("classify exited with %v", status)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	batch, err := folioscan.DecodeClassifications(file)
	if err != nil {
		t.Fatalf("cannot decode result: %v", err)
	}

	if len(batch) != 3 {
		t.Fatalf("got %d positions, want 3", len(batch))
	}
	wantCategories := []folioscan.AssetCategory{folioscan.CategoryISIN, folioscan.CategoryTicker, folioscan.CategoryName}
	wantWeights := []float64{0.30, 0.50, 0.20}
	for i, a := range batch {
		if a.Category != wantCategories[i] {
			t.Errorf("position %d: got category %s, want %s", i, a.Category, wantCategories[i])
		}
		if a.Weight == nil || *a.Weight != wantWeights[i] {
			t.Errorf("position %d: got weight %v, want %v", i, a.Weight, wantWeights[i])
		}
	}
}
