package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type classifyCmd struct {
	pipelineFlags
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify a JSON portfolio extraction" }
func (*classifyCmd) Usage() string {
	return `fsc classify [<extraction.json>]

  Reads a JSON extraction of portfolio positions (from the given file, or
  stdin), classifies every position into ISIN, TICKER, NAME or UNKNOWN,
  resolves identifiers to ISINs, and attaches a normalized weight.
  Prints the classified batch as JSON.

Usage Examples:
# Classify an extraction produced by 'fsc scan -raw'.
$ fsc scan -raw portfolio.png > extraction.json
$ fsc classify extraction.json

# Straight from stdin, without the ISIN lookup.
$ echo '{"assets": [{"AAPL": 1500}]}' | fsc classify -no-enrich
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	c.pipelineFlags.SetFlags(f)
}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var data []byte
	var err error
	source := ""
	switch f.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		source = f.Arg(0)
		data, err = os.ReadFile(source)
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one extraction file is expected.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading extraction: %v\n", err)
		return subcommands.ExitFailure
	}

	return c.run(ctx, source, data)
}
