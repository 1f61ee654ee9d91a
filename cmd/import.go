package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore a backup, replacing the stored state" }
func (*importCmd) Usage() string {
	return `cfo import [-y] <backup file>

  Restores a backup document written by 'cfo export'. The imported state
  REPLACES the stored transactions and settings; asks for confirmation
  unless -y is passed. Pass "-" to read from stdin.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one backup file is required.")
		return subcommands.ExitUsageError
	}

	var r io.Reader = os.Stdin
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening backup file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	records, settings, err := cryptofolio.Import(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		question := fmt.Sprintf("Replace the stored portfolio with %d imported transactions?", len(records))
		if !confirm(question) {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Save(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.SaveSettings(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions.\n", len(records))
	return subcommands.ExitSuccess
}
