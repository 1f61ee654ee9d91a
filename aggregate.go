package cryptofolio

// This file is the aggregation engine: pure, deterministic transformations
// from a record snapshot to derived views. Nothing here is cached; callers
// recompute on every read so the views can never drift from the stored
// collection.

// CoinGroup aggregates all records sharing a coin identifier. It is derived,
// never persisted.
type CoinGroup struct {
	CoinID          string
	CoinName        string
	CoinSymbol      string
	CoinImage       string
	TotalQuantity   Quantity
	TotalInvestment Money
	Records         []TransactionRecord
}

// PortfolioSummary holds the derived totals over the whole collection.
//
// TotalValue is defined as exactly TotalInvestment: there is no live
// re-pricing in this design, so profit/loss is always zero. This is a
// deliberate placeholder kept from the tracked behavior, not a bug.
type PortfolioSummary struct {
	TotalValue             Money
	TotalInvestment        Money
	TotalProfitLoss        Money
	TotalProfitLossPercent Percent
	TopHolding             *CoinGroup
	DistinctCoinCount      int
}

// GroupByCoin groups records by coin identifier, preserving first-seen
// insertion order. Records without a coin identifier are grouped under the
// "unknown" sentinel, not dropped. Identical input (including order) always
// yields identical output.
func GroupByCoin(records []TransactionRecord) []CoinGroup {
	groups := make([]CoinGroup, 0)
	byCoin := make(map[string]int) // coin id to position in groups

	for _, rec := range records {
		key := rec.CoinID
		if key == "" {
			key = UnknownCoinID
		}
		i, ok := byCoin[key]
		if !ok {
			i = len(groups)
			byCoin[key] = i
			name, symbol := rec.CoinName, rec.CoinSymbol
			if name == "" {
				name = unknownCoinName
			}
			if symbol == "" {
				symbol = unknownCoinSymbol
			}
			groups = append(groups, CoinGroup{
				CoinID:          key,
				CoinName:        name,
				CoinSymbol:      symbol,
				CoinImage:       rec.CoinImage,
				TotalInvestment: USD(0),
			})
		}
		g := &groups[i]
		g.TotalQuantity = g.TotalQuantity.Add(contributionQuantity(rec))
		g.TotalInvestment = g.TotalInvestment.Add(contributionValue(rec))
		g.Records = append(g.Records, rec)
	}
	return groups
}

// Summarize derives the portfolio summary from a record snapshot. An empty
// snapshot yields all-zero totals and no top holding.
func Summarize(records []TransactionRecord) PortfolioSummary {
	s := PortfolioSummary{
		TotalValue:      USD(0),
		TotalInvestment: USD(0),
		TotalProfitLoss: USD(0),
	}
	if len(records) == 0 {
		return s
	}

	for _, rec := range records {
		s.TotalInvestment = s.TotalInvestment.Add(contributionValue(rec))
	}

	// No live re-pricing: the current value of the portfolio is its
	// investment, and profit/loss stays at zero.
	s.TotalValue = s.TotalInvestment
	s.TotalProfitLoss = s.TotalValue.Sub(s.TotalInvestment)
	if s.TotalInvestment.IsPositive() {
		s.TotalProfitLossPercent = s.TotalProfitLoss.PercentOf(s.TotalInvestment)
	}

	groups := GroupByCoin(records)
	s.DistinctCoinCount = len(groups)

	// Top holding is the group with the strictly greatest investment;
	// first-seen order wins ties.
	top := 0
	for i := 1; i < len(groups); i++ {
		if groups[i].TotalInvestment.GreaterThan(groups[top].TotalInvestment) {
			top = i
		}
	}
	s.TopHolding = &groups[top]
	return s
}

// HeldCoinIDs returns the distinct coin identifiers present in the records,
// in first-seen order. The "unknown" sentinel is skipped: it is not a real
// identifier a market data provider could resolve.
func HeldCoinIDs(records []TransactionRecord) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.CoinID == "" || rec.CoinID == UnknownCoinID || seen[rec.CoinID] {
			continue
		}
		seen[rec.CoinID] = true
		ids = append(ids, rec.CoinID)
	}
	return ids
}

// contributionValue is the amount a record adds to investment totals.
// Records that slipped past validation (legacy blobs sanitized on load)
// contribute zero rather than a negative or garbage amount.
func contributionValue(rec TransactionRecord) Money {
	if rec.TotalValue.IsNegative() {
		return USD(0)
	}
	return rec.TotalValue
}

// contributionQuantity mirrors contributionValue for quantities.
func contributionQuantity(rec TransactionRecord) Quantity {
	if rec.Quantity.IsNegative() {
		return Q(0)
	}
	return rec.Quantity
}
