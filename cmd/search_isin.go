package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/folioscan"
	"github.com/etnz/folioscan/lookup"
	"github.com/google/subcommands"
)

type searchISINCmd struct {
	timeout time.Duration
}

func (*searchISINCmd) Name() string     { return "search-isin" }
func (*searchISINCmd) Synopsis() string { return "look up the ISIN of a ticker or a name" }
func (*searchISINCmd) Usage() string {
	return `fsc search-isin <ticker or name>

  Resolves a ticker or an instrument name to its ISIN by scanning web
  search results. Prints the ISIN and, when the result reveals it, the
  instrument category (equity, etf, bond, commodity).

Usage Examples:
$ fsc search-isin AAPL
$ fsc search-isin Vanguard FTSE All-World
`
}

func (c *searchISINCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 15*time.Second, "Timeout of the lookup")
}

func (c *searchISINCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	var classifier folioscan.Classifier
	hint := classifier.Classify(query).Category

	result, err := lookup.New(c.timeout).LookupISIN(ctx, query, hint)
	if errors.Is(err, lookup.ErrNoMatch) {
		fmt.Printf("No match found for '%s'.\n", query)
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching ISIN: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("➡️   ISIN     : %s\n", result.ISIN)
	if result.Category != "" {
		fmt.Printf("    Category : %s\n", result.Category)
	}
	return subcommands.ExitSuccess
}
