package cryptofolio

// rec builds a record with a deterministic ID, for tests that care about
// identity and ordering.
func rec(id, coinID string, quantity, cost float64, day string) TransactionRecord {
	r := NewTransactionRecord(coinID, coinID, coinID, "", Q(quantity), USD(cost), MustParseDate(day), "")
	r.ID = id
	return r
}
