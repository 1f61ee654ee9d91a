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

type addCmd struct {
	coin     string
	name     string
	symbol   string
	image    string
	quantity float64
	cost     float64
	date     string
	notes    string
	resolve  bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a buy transaction in the portfolio" }
func (*addCmd) Usage() string {
	return `cfo add -coin <id> -quantity <q> [-cost <unit price>] [-d <date>] [-notes <text>] [-resolve]

  Records that you acquired a quantity of a coin at a unit cost. With
  -resolve, the coin name, symbol, image and, when -cost is omitted, the
  current price are fetched from the market data provider.

Usage Examples:
# Record half a bitcoin bought at 50000 USD.
$ cfo add -coin bitcoin -quantity 0.5 -cost 50000

# Record two ether at today's price.
$ cfo add -coin ethereum -quantity 2 -resolve
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.coin, "coin", "", "Coin identifier, e.g. \"bitcoin\" (required)")
	f.StringVar(&c.name, "name", "", "Coin display name (defaults to the identifier, or resolved)")
	f.StringVar(&c.symbol, "symbol", "", "Coin symbol (defaults to the identifier, or resolved)")
	f.StringVar(&c.image, "image", "", "Coin image URL (optional)")
	f.Float64Var(&c.quantity, "quantity", 0, "Quantity acquired (required, positive)")
	f.Float64Var(&c.cost, "cost", 0, "Unit price paid in USD (required unless -resolve)")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today, cannot be in the future)")
	f.StringVar(&c.notes, "notes", "", "Free-text note attached to the record")
	f.BoolVar(&c.resolve, "resolve", false, "Fetch coin metadata and current price from the market data provider")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := cryptofolio.Today()
	if c.date != "" {
		var err error
		day, err = cryptofolio.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	name, symbol, image, cost := c.name, c.symbol, c.image, c.cost
	if c.resolve && c.coin != "" {
		markets, err := newGateway().ListMarkets(coingecko.MarketsParams{IDs: []string{c.coin}, PerPage: 1})
		if err != nil {
			fmt.Fprintln(os.Stderr, retryHint(err))
			return subcommands.ExitFailure
		}
		if len(markets) == 0 {
			fmt.Fprintf(os.Stderr, "Error: coin %q not found.\n", c.coin)
			return subcommands.ExitFailure
		}
		m := markets[0]
		if name == "" {
			name = m.Name
		}
		if symbol == "" {
			symbol = m.Symbol
		}
		if image == "" {
			image = m.Image
		}
		if cost == 0 {
			cost = m.CurrentPrice
		}
	}
	if name == "" {
		name = c.coin
	}
	if symbol == "" {
		symbol = c.coin
	}

	rec := cryptofolio.NewTransactionRecord(
		c.coin, name, symbol, image,
		cryptofolio.Q(c.quantity), cryptofolio.USD(cost),
		day, c.notes,
	)
	if err := rec.Validate(); err != nil {
		printFieldErrors(err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Append(rec); err != nil {
		// A failed save keeps the previous collection intact.
		fmt.Fprintf(os.Stderr, "Error: transaction not saved: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.TransactionMarkdown(rec))
	return subcommands.ExitSuccess
}

// printFieldErrors prints validation errors one per line, next to the field
// they belong to. Joined errors are walked recursively.
func printFieldErrors(err error) {
	if list, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range list.Unwrap() {
			printFieldErrors(e)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
