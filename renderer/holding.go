package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the per-coin groups with each coin's share of
// the total investment. Groups appear in first-seen order.
func HoldingsMarkdown(groups []cryptofolio.CoinGroup, summary cryptofolio.PortfolioSummary) string {
	if len(groups) == 0 {
		return "Your portfolio is empty. Use `cfo add` to record your first buy.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Coin", "Quantity", "Investment", "Share", "Buys"},
	}
	for _, g := range groups {
		share := "-"
		if summary.TotalInvestment.IsPositive() {
			share = g.TotalInvestment.PercentOf(summary.TotalInvestment).String()
		}
		table.Rows = append(table.Rows, []string{
			g.CoinName + " (" + g.CoinSymbol + ")",
			g.TotalQuantity.String(),
			g.TotalInvestment.String(),
			share,
			fmt.Sprintf("%d", len(g.Records)),
		})
	}
	doc.Table(table)

	if summary.TopHolding != nil {
		doc.PlainText(fmt.Sprintf("Top holding: %s (%s) with %s invested.",
			summary.TopHolding.CoinName,
			summary.TopHolding.CoinSymbol,
			summary.TopHolding.TotalInvestment))
	}

	return doc.String()
}
