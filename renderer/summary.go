package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the derived portfolio totals.
//
// Value equals investment in this design (no live re-pricing), so the
// profit/loss rows read flat until a mark-to-market view exists.
func SummaryMarkdown(s cryptofolio.PortfolioSummary, on cryptofolio.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", ""},
		Rows: [][]string{
			{md.Bold("Total Value"), s.TotalValue.String()},
			{"Total Investment", s.TotalInvestment.String()},
			{"Profit / Loss", s.TotalProfitLoss.SignedString()},
			{"Profit / Loss %", s.TotalProfitLossPercent.SignedString()},
			{"Distinct Coins", fmt.Sprintf("%d", s.DistinctCoinCount)},
		},
	}
	if s.TopHolding != nil {
		table.Rows = append(table.Rows, []string{
			"Top Holding",
			fmt.Sprintf("%s (%s)", s.TopHolding.CoinName, s.TopHolding.CoinSymbol),
		})
	}
	doc.Table(table)

	return doc.String()
}
