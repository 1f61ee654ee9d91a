package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type settingsCmd struct {
	theme    string
	currency string
	refresh  int
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the stored preferences" }
func (*settingsCmd) Usage() string {
	return `cfo settings [-theme <name>] [-currency <code>] [-refresh <seconds>]

  Without flags, shows the current settings. With flags, changes the named
  settings and leaves the others untouched.

  theme:    system, dark or light
  currency: usd, ngn, eur or gbp (prices are shown in USD regardless)
  refresh:  30, 60, 120 or 300 seconds between market refreshes

Usage Examples:
$ cfo settings -refresh 120
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Display theme.")
	f.StringVar(&c.currency, "currency", "", "Display currency.")
	f.IntVar(&c.refresh, "refresh", 0, "Market refresh period in seconds.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	settings, err := store.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.theme != "" {
		settings.Theme = c.theme
		changed = true
	}
	if c.currency != "" {
		settings.Currency = c.currency
		changed = true
	}
	if c.refresh != 0 {
		settings.RefreshInterval = c.refresh
		changed = true
	}

	if changed {
		if err := store.SaveSettings(settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error: settings not saved: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Println("theme:    " + settings.Theme)
	fmt.Println("currency: " + settings.Currency)
	fmt.Println("refresh:  " + strconv.Itoa(settings.RefreshInterval) + "s")
	return subcommands.ExitSuccess
}
