package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptofolio"
	"github.com/etnz/cryptofolio/agent"
	"github.com/etnz/cryptofolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an analyst about the portfolio" }
func (*assistCmd) Usage() string {
	return `cfo assist [question ...]

  Starts an interactive chat with a portfolio analyst that already knows
  your holdings. Questions given as arguments are answered first; type
  'bye' or Ctrl+D to leave.

  Requires the GEMINI_API_KEY environment variable.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Seed the analyst with the same views the user sees.
	groups := cryptofolio.GroupByCoin(records)
	summary := cryptofolio.Summarize(records)
	portfolio := renderer.HoldingsMarkdown(groups, summary) + "\n" +
		renderer.SummaryMarkdown(summary, cryptofolio.Today())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the assistant client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Start(ctx, client, portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the assistant: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := a.Run(ctx, f.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
