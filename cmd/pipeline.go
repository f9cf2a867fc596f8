package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/folioscan"
	"github.com/etnz/folioscan/lookup"
	"github.com/etnz/folioscan/renderer"
	"github.com/google/subcommands"
)

// pipelineFlags is the flag set shared by the commands that run the
// classification pipeline (classify and scan).
type pipelineFlags struct {
	output        string
	currency      string
	noEnrich      bool
	enrichUnknown bool
	strictISIN    bool
	markdown      bool
	parallel      int
	timeout       time.Duration
}

func (p *pipelineFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write the JSON result to this file instead of stdout")
	f.StringVar(&p.currency, "currency", "USD", "Currency of the monetary amounts in the source")
	f.BoolVar(&p.noEnrich, "no-enrich", false, "Skip the ISIN lookup for tickers and names")
	f.BoolVar(&p.enrichUnknown, "enrich-unknown", false, "Also attempt the ISIN lookup for UNKNOWN values")
	f.BoolVar(&p.strictISIN, "strict-isin", false, "Verify the ISIN check digit, not only the format")
	f.BoolVar(&p.markdown, "md", false, "Render a markdown report instead of JSON")
	f.IntVar(&p.parallel, "parallel", 0, "Maximum concurrent ISIN lookups (0 for the default)")
	f.DurationVar(&p.timeout, "timeout", 15*time.Second, "Timeout of a single ISIN lookup")
}

// run classifies one extraction document and writes the result. source names
// the input in the markdown report title.
func (p *pipelineFlags) run(ctx context.Context, source string, data []byte) subcommands.ExitStatus {
	items, err := folioscan.ParseExtraction(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing extraction: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := folioscan.Options{
		Classifier:    &folioscan.Classifier{StrictISIN: p.strictISIN},
		EnrichUnknown: p.enrichUnknown,
		MaxParallel:   p.parallel,
	}
	if !p.noEnrich {
		opts.Lookup = lookup.New(p.timeout)
	}
	batch := folioscan.ProcessItems(ctx, items, opts)

	if p.markdown {
		values := make([]folioscan.RawValue, len(items))
		for i, item := range items {
			values[i] = item.Value
		}
		printMarkdown(renderer.ClassificationMarkdown(renderer.NewReport(source, p.currency, batch, values)))
		return subcommands.ExitSuccess
	}

	var out io.Writer = os.Stdout
	if p.output != "" {
		f, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		out = f
	}
	if err := folioscan.EncodeClassifications(out, batch); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
