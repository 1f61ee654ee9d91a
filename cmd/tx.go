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

type txCmd struct {
	coin  string
	start string
	date  string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the portfolio" }
func (*txCmd) Usage() string {
	return `cfo tx [-coin <id>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transaction records, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.coin, "coin", "", "Show only transactions for this coin identifier.")
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var from, to cryptofolio.Date
	var err error
	if p.start != "" {
		if from, err = cryptofolio.ParseDate(p.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if p.date != "" {
		if to, err = cryptofolio.ParseDate(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := store.Ledger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filters := []func(cryptofolio.TransactionRecord) bool{cryptofolio.InRange(from, to)}
	if p.coin != "" {
		filters = []func(cryptofolio.TransactionRecord) bool{
			func(rec cryptofolio.TransactionRecord) bool {
				return cryptofolio.ByCoin(p.coin)(rec) && cryptofolio.InRange(from, to)(rec)
			},
		}
	}

	var records []cryptofolio.TransactionRecord
	for _, rec := range ledger.Records(filters...) {
		records = append(records, rec)
	}

	if p.head > 0 && len(records) > p.head {
		records = records[:p.head]
	}
	if p.tail > 0 && len(records) > p.tail {
		records = records[len(records)-p.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(records))

	return subcommands.ExitSuccess
}
