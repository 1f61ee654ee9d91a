package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
)

type marketsCmd struct {
	page    int
	perPage int
	mine    bool
}

func (*marketsCmd) Name() string     { return "markets" }
func (*marketsCmd) Synopsis() string { return "show the top coins by market cap" }
func (*marketsCmd) Usage() string {
	return `cfo markets [-page <n>] [-n <per page>] [-mine]

  Shows current prices, 24h and 7d changes and a 7-day trend for the top
  coins by market cap. With -mine, only the coins held in the portfolio
  are shown.
`
}

func (c *marketsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.page, "page", 1, "Page to show.")
	f.IntVar(&c.perPage, "n", 10, "Number of coins per page.")
	f.BoolVar(&c.mine, "mine", false, "Show only the coins held in the portfolio.")
}

func (c *marketsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params := coingecko.MarketsParams{Page: c.page, PerPage: c.perPage}
	title := "Markets"

	if c.mine {
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
		params.IDs = cryptofolio.HeldCoinIDs(records)
		if len(params.IDs) == 0 {
			fmt.Println("Your portfolio is empty. Use `cfo add` to record your first buy.")
			return subcommands.ExitSuccess
		}
		params.PerPage = len(params.IDs)
		title = "My Coins"
	}

	markets, err := newGateway().ListMarkets(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, retryHint(err))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MarketsMarkdown(title, markets))
	return subcommands.ExitSuccess
}
