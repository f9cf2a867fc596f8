package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folioscan/ocr"
	"github.com/google/subcommands"
)

type scanCmd struct {
	pipelineFlags
	backend     string
	model       string
	temperature float64
	raw         bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "extract and classify positions from a screenshot" }
func (*scanCmd) Usage() string {
	return `fsc scan [-backend gemini|openrouter] <screenshot>

  Sends a portfolio screenshot to a vision model, extracts the visible
  positions as JSON, and runs them through the classification pipeline.
  The gemini backend requires GEMINI_API_KEY, the openrouter backend
  requires OPENROUTER_API_KEY.

Usage Examples:
$ fsc scan portfolio.png
$ fsc scan -backend openrouter -md broker.jpg
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	c.pipelineFlags.SetFlags(f)
	f.StringVar(&c.backend, "backend", "gemini", "Vision backend: gemini or openrouter")
	f.StringVar(&c.model, "model", "", "Model name (the backend default when empty)")
	f.Float64Var(&c.temperature, "temperature", 0, "Generation temperature")
	f.BoolVar(&c.raw, "raw", false, "Print the extraction JSON without classifying it")
}

func (c *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a screenshot file is required.")
		return subcommands.ExitUsageError
	}
	imagePath := f.Arg(0)

	var extractor ocr.Extractor
	switch c.backend {
	case "gemini":
		extractor = &ocr.Gemini{Model: c.model, Temperature: float32(c.temperature)}
	case "openrouter":
		extractor = &ocr.OpenRouter{Model: c.model, Temperature: float32(c.temperature)}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (want gemini or openrouter).\n", c.backend)
		return subcommands.ExitUsageError
	}

	doc, err := extractor.Extract(ctx, imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting from %q: %v\n", imagePath, err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Println(doc)
		return subcommands.ExitSuccess
	}

	return c.run(ctx, imagePath, []byte(doc))
}
