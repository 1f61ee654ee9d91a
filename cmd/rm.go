package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction from the portfolio" }
func (*rmCmd) Usage() string {
	return `cfo rm [-y] <transaction id>

  Deletes the transaction with the given identifier. Asks for confirmation
  unless -y is passed. Use 'cfo tx' to list identifiers.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

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
	rec, ok := ledger.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q.\n", id)
		return subcommands.ExitFailure
	}

	if !c.yes {
		question := fmt.Sprintf("Delete %s %s bought on %s?", rec.Quantity, rec.CoinSymbol, rec.Date)
		if !confirm(question) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	removed, err := store.Remove(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: transaction not deleted: %v\n", err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q.\n", id)
		return subcommands.ExitFailure
	}
	fmt.Println("Transaction deleted.")
	return subcommands.ExitSuccess
}
