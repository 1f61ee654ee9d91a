package renderer

import (
	"bytes"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the record list as a markdown table, in the
// collection's insertion order.
func TransactionsMarkdown(records []cryptofolio.TransactionRecord) string {
	if len(records) == 0 {
		return "No transactions recorded yet. Use `cfo add` to record your first buy.\n"
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Coin", "Quantity", "Avg Cost", "Total", "ID"},
	}
	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			rec.Date.String(),
			rec.CoinName + " (" + rec.CoinSymbol + ")",
			rec.Quantity.String(),
			rec.AverageCost.String(),
			rec.TotalValue.String(),
			rec.ID,
		})
	}
	doc.Table(table)

	return doc.String()
}

// TransactionMarkdown renders a one-line description of a single record,
// used for confirmations.
func TransactionMarkdown(rec cryptofolio.TransactionRecord) string {
	return "Bought " + rec.Quantity.String() + " " + rec.CoinSymbol +
		" at " + rec.AverageCost.String() + " on " + rec.Date.String() +
		" (total " + rec.TotalValue.String() + ")"
}
