package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/cryptofolio/coingecko"
	md "github.com/nao1215/markdown"
)

// descriptionBudget caps the coin description; the API returns several
// paragraphs of HTML-flavored prose.
const descriptionBudget = 600

// CoinDetailMarkdown renders the detail view of a single coin.
func CoinDetailMarkdown(d *coingecko.CoinDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", d.Name, strings.ToUpper(d.Symbol)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"", ""},
		Rows: [][]string{
			{md.Bold("Price"), formatPrice(d.CurrentPrice)},
			{"Market Cap", formatCompact(d.MarketCap)},
			{"Rank", fmt.Sprintf("#%d", d.MarketCapRank)},
			{"24h Change", formatChange(d.PriceChange24h)},
			{"7d Change", formatChange(d.PriceChange7d)},
		},
	}
	doc.Table(table)

	if len(d.Sparkline) > 0 {
		doc.H2("7-Day Trend")
		doc.PlainText(sparkline(d.Sparkline, 48))
	}

	if d.Description != "" {
		doc.H2("About")
		doc.PlainText(clip(stripTags(d.Description), descriptionBudget))
	}
	if d.Homepage != "" {
		doc.PlainText("Homepage: " + d.Homepage)
	}

	return doc.String()
}

// stripTags removes the anchor markup CoinGecko embeds in descriptions.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clip truncates s to at most n runes at a word boundary.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	clipped := string(runes[:n])
	if i := strings.LastIndex(clipped, " "); i > 0 {
		clipped = clipped[:i]
	}
	return clipped + "…"
}
