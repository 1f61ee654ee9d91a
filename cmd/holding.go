package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "show the portfolio grouped by coin" }
func (*holdingCmd) Usage() string {
	return `cfo holding

  Shows one line per coin held: total quantity, total investment and the
  coin's share of the portfolio. Coins appear in the order they were first
  bought.
`
}

func (*holdingCmd) SetFlags(f *flag.FlagSet) {}

func (*holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	records, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	groups := cryptofolio.GroupByCoin(records)
	summary := cryptofolio.Summarize(records)
	printMarkdown(renderer.HoldingsMarkdown(groups, summary))
	return subcommands.ExitSuccess
}
