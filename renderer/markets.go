package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio/coingecko"
	md "github.com/nao1215/markdown"
)

// sparkWidth is the column budget for the 7-day trend glyphs.
const sparkWidth = 16

// MarketsMarkdown renders a page of market snapshots: rank, price, 24h and
// 7d changes, market cap and a 7-day trend drawn from the sparkline.
func MarketsMarkdown(title string, markets []coingecko.Market) string {
	if len(markets) == 0 {
		return "No coins found.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Coin", "Price", "24h", "7d", "Market Cap", "7d Trend"},
	}
	for _, m := range markets {
		change24 := m.PriceChange24hInCurrency
		if change24 == 0 {
			change24 = m.PriceChange24h
		}
		var trend string
		if m.Sparkline != nil {
			trend = sparkline(m.Sparkline.Price, sparkWidth)
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", m.MarketCapRank),
			fmt.Sprintf("%s (%s)", m.Name, strings.ToUpper(m.Symbol)),
			formatPrice(m.CurrentPrice),
			formatChange(change24),
			formatChange(m.PriceChange7dInCurrency),
			formatCompact(m.MarketCap),
			trend,
		})
	}
	doc.Table(table)

	return doc.String()
}
