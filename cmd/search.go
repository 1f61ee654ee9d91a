package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search coins by name or symbol" }
func (*searchCmd) Usage() string {
	return `cfo search <query>

  Searches coins by name or symbol and shows the matches as market rows.

Usage Examples:
$ cfo search doge
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (*searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.TrimSpace(strings.Join(f.Args(), " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}

	markets, err := newGateway().Search(query)
	if err != nil {
		fmt.Fprintln(os.Stderr, retryHint(err))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MarketsMarkdown(fmt.Sprintf("Search: %s", query), markets))
	return subcommands.ExitSuccess
}
