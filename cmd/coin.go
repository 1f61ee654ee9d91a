package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type coinCmd struct{}

func (*coinCmd) Name() string     { return "coin" }
func (*coinCmd) Synopsis() string { return "show the detail of a single coin" }
func (*coinCmd) Usage() string {
	return `cfo coin <id>

  Shows the detail view of a coin: price, market cap, rank, recent changes,
  the 7-day trend and a short description.

Usage Examples:
$ cfo coin bitcoin
`
}

func (*coinCmd) SetFlags(f *flag.FlagSet) {}

func (*coinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one coin id is required.")
		return subcommands.ExitUsageError
	}

	detail, err := newGateway().CoinDetail(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, retryHint(err))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CoinDetailMarkdown(detail))
	return subcommands.ExitSuccess
}
