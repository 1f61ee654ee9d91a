package cryptofolio

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file implements the lenient-read policy for the stored record
// collection: corruption degrades data, it never crashes the read path.
// The rules are deliberately explicit and unit-testable rather than ad hoc
// coercion at the call sites:
//
//   - an entry that is not a JSON object, or has no usable id, is dropped;
//   - an entry whose id was already seen is dropped, first occurrence wins;
//   - missing or unparseable numeric fields are coerced to zero;
//   - missing strings fall back to sentinel values ("unknown" coin);
//   - a missing or unparseable date defaults to the current day.

// jsonRecord mirrors the stored layout with every field optional, so a
// partially corrupted entry can still be read.
type jsonRecord struct {
	ID          json.RawMessage `json:"id"`
	CoinID      string          `json:"coinId"`
	CoinName    string          `json:"coinName"`
	CoinSymbol  string          `json:"coinSymbol"`
	CoinImage   string          `json:"coinImage"`
	Quantity    json.RawMessage `json:"quantity"`
	AverageCost json.RawMessage `json:"averageCost"`
	TotalValue  json.RawMessage `json:"totalValue"`
	Date        string          `json:"date"`
	Notes       string          `json:"notes"`
	CreatedAt   string          `json:"createdAt"`
}

// sanitizeRecords applies the lenient-read rules to a decoded collection.
// The input order is preserved for surviving entries. Surviving ids are
// unique, so the result always loads into a Ledger.
func sanitizeRecords(raws []json.RawMessage) []TransactionRecord {
	records := make([]TransactionRecord, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		rec, ok := sanitizeRecord(raw)
		if !ok || seen[rec.ID] {
			continue
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records
}

// sanitizeRecord reads one stored entry. ok is false when the entry must be
// dropped (not an object, or no id).
func sanitizeRecord(raw json.RawMessage) (rec TransactionRecord, ok bool) {
	var jr jsonRecord
	if err := json.Unmarshal(raw, &jr); err != nil {
		return TransactionRecord{}, false
	}
	id := sanitizeID(jr.ID)
	if id == "" {
		return TransactionRecord{}, false
	}

	rec = TransactionRecord{
		ID:          id,
		CoinID:      jr.CoinID,
		CoinName:    jr.CoinName,
		CoinSymbol:  strings.ToUpper(jr.CoinSymbol),
		CoinImage:   jr.CoinImage,
		Quantity:    Quantity{value: sanitizeNumber(jr.Quantity)},
		AverageCost: M(sanitizeNumber(jr.AverageCost), ReportingCurrency),
		TotalValue:  M(sanitizeNumber(jr.TotalValue), ReportingCurrency),
		Notes:       jr.Notes,
	}
	if rec.CoinID == "" {
		rec.CoinID = UnknownCoinID
	}
	if rec.CoinName == "" {
		rec.CoinName = unknownCoinName
	}
	if rec.CoinSymbol == "" {
		rec.CoinSymbol = unknownCoinSymbol
	}

	if day, err := ParseDate(jr.Date); err == nil {
		rec.Date = day
	} else {
		rec.Date = Today()
	}
	if at, err := time.Parse(time.RFC3339, jr.CreatedAt); err == nil {
		rec.CreatedAt = at
	}
	return rec, true
}

// sanitizeID accepts the id as a JSON string or number; anything else is
// unusable and the entry is dropped.
func sanitizeID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// sanitizeNumber reads a stored numeric field, accepting a bare number or a
// numeric string, and coerces anything else to zero.
func sanitizeNumber(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	// last chance: a float-formatted token the decimal parser rejected.
	s := strings.Trim(string(raw), `"`)
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return decimal.NewFromFloat(f)
	}
	return decimal.Zero
}
