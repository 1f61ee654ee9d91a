// Package cmd implements the CLI application to track a crypto portfolio.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/coingecko"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order.
// A main package iterates it to register them all.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&rmCmd{},
	&clearCmd{},
	&summaryCmd{},
	&holdingCmd{},
	&marketsCmd{},
	&searchCmd{},
	&coinCmd{},
	&exportCmd{},
	&importCmd{},
	&settingsCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storageDir = flag.String("storage-dir", defaultStorageDir(), "Directory holding the stored transactions and settings")

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cryptofolio"
	}
	return filepath.Join(home, ".cryptofolio")
}

// openStore is the central function to open the local store.
func openStore() (*cryptofolio.Store, error) {
	return cryptofolio.OpenStore(*storageDir)
}

// loadSettings reads the stored settings, falling back to defaults when the
// store itself cannot be opened.
func loadSettings() cryptofolio.Settings {
	store, err := openStore()
	if err != nil {
		return cryptofolio.DefaultSettings()
	}
	settings, err := store.LoadSettings()
	if err != nil {
		return cryptofolio.DefaultSettings()
	}
	return settings
}

// newGateway creates the market data client, its cache expiring with the
// configured refresh interval.
func newGateway() *coingecko.Client {
	settings := loadSettings()
	return coingecko.NewClient(time.Duration(settings.RefreshInterval) * time.Second)
}

// printMarkdown renders markdown to the terminal. When rendering fails the
// raw markdown is printed instead, never nothing.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// confirm asks the user a yes/no question on the terminal and reports the
// answer. Anything but an explicit yes is a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// retryHint decorates a gateway error with the retry affordance: network
// failures are never fatal, the user just runs the command again.
func retryHint(err error) string {
	return fmt.Sprintf("Error: %v\nCheck your connection and try again.", err)
}
