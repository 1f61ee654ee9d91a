package cryptofolio

import (
	"encoding/json"
	"testing"
)

func raws(entries ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(entries))
	for _, e := range entries {
		out = append(out, json.RawMessage(e))
	}
	return out
}

func TestSanitizeRecords_DropRules(t *testing.T) {
	records := sanitizeRecords(raws(
		`{"id":"keep","coinId":"bitcoin","quantity":1,"averageCost":100,"totalValue":100,"date":"2025-01-10"}`,
		`{"coinId":"bitcoin","quantity":1}`, // no id: dropped
		`"just a string"`,                   // not an object: dropped
		`42`,                                // not an object: dropped
		`{"id":123,"coinId":"ethereum"}`,    // numeric id is usable
	))

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].ID != "keep" || records[1].ID != "123" {
		t.Errorf("surviving ids = [%s %s], want [keep 123]", records[0].ID, records[1].ID)
	}
}

func TestSanitizeRecords_DuplicateIDs(t *testing.T) {
	records := sanitizeRecords(raws(
		`{"id":"dup","coinId":"bitcoin","quantity":1}`,
		`{"id":"other","coinId":"ethereum","quantity":2}`,
		`{"id":"dup","coinId":"cardano","quantity":3}`,
	))

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].ID != "dup" || records[1].ID != "other" {
		t.Errorf("surviving ids = [%s %s], want [dup other]", records[0].ID, records[1].ID)
	}
	// The first occurrence wins.
	if records[0].CoinID != "bitcoin" {
		t.Errorf("kept coin = %q, want the first occurrence bitcoin", records[0].CoinID)
	}

	// Survivors always load into a ledger.
	if _, err := NewLedger(records...); err != nil {
		t.Errorf("sanitized records must load into a ledger: %v", err)
	}
}

func TestSanitizeRecord_Defaults(t *testing.T) {
	records := sanitizeRecords(raws(`{"id":"t1"}`))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]

	if r.CoinID != UnknownCoinID {
		t.Errorf("coin id = %q, want %q", r.CoinID, UnknownCoinID)
	}
	if r.CoinName != "Unknown Coin" || r.CoinSymbol != "UNKNOWN" {
		t.Errorf("coin metadata = %q %q, want sentinels", r.CoinName, r.CoinSymbol)
	}
	if !r.Quantity.IsZero() || !r.AverageCost.IsZero() || !r.TotalValue.IsZero() {
		t.Errorf("missing numerics must coerce to zero: %+v", r)
	}
	if !r.Date.IsToday() {
		t.Errorf("missing date = %s, want today", r.Date)
	}
}

func TestSanitizeRecord_Numerics(t *testing.T) {
	testCases := []struct {
		name  string
		entry string
		want  Quantity
	}{
		{"bare number", `{"id":"t","quantity":12.5}`, Q(12.5)},
		{"numeric string", `{"id":"t","quantity":"12.5"}`, Q(12.5)},
		{"garbage string", `{"id":"t","quantity":"abc"}`, Q(0)},
		{"null", `{"id":"t","quantity":null}`, Q(0)},
		{"object", `{"id":"t","quantity":{"nested":1}}`, Q(0)},
		{"nan string", `{"id":"t","quantity":"NaN"}`, Q(0)},
		{"infinity string", `{"id":"t","quantity":"Inf"}`, Q(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := sanitizeRecords(raws(tc.entry))
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if got := records[0].Quantity; !got.Equal(tc.want) {
				t.Errorf("quantity = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSanitizeRecord_Date(t *testing.T) {
	records := sanitizeRecords(raws(
		`{"id":"t1","date":"2025-01-10"}`,
		`{"id":"t2","date":"yesterday-ish"}`,
	))
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if got := records[0].Date.String(); got != "2025-01-10" {
		t.Errorf("valid date = %s, want 2025-01-10", got)
	}
	if !records[1].Date.IsToday() {
		t.Errorf("unparseable date = %s, want today", records[1].Date)
	}
}

func TestSanitizeRecord_CreatedAt(t *testing.T) {
	records := sanitizeRecords(raws(
		`{"id":"t1","createdAt":"2025-01-10T12:34:56Z"}`,
		`{"id":"t2","createdAt":"last tuesday"}`,
	))
	if records[0].CreatedAt.IsZero() {
		t.Error("a valid createdAt must be kept")
	}
	if !records[1].CreatedAt.IsZero() {
		t.Error("an unparseable createdAt must stay zero")
	}
}

func TestSanitizeRecord_SymbolUpperCased(t *testing.T) {
	records := sanitizeRecords(raws(`{"id":"t1","coinSymbol":"btc"}`))
	if got := records[0].CoinSymbol; got != "BTC" {
		t.Errorf("symbol = %q, want BTC", got)
	}
}

func TestSanitize_SurvivorsRoundTrip(t *testing.T) {
	// A record written by this code reads back unchanged.
	r := rec("t1", "bitcoin", 0.5, 50000, "2025-01-10")
	r.CoinName, r.CoinSymbol, r.Notes = "Bitcoin", "BTC", "first buy"

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	records := sanitizeRecords(raws(string(data)))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]

	if got.ID != r.ID || got.CoinID != r.CoinID || got.CoinName != r.CoinName ||
		got.CoinSymbol != r.CoinSymbol || got.Notes != r.Notes || got.Date != r.Date {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", got, r)
	}
	if !got.Quantity.Equal(r.Quantity) || !got.AverageCost.Equal(r.AverageCost) || !got.TotalValue.Equal(r.TotalValue) {
		t.Errorf("round trip changed the amounts: %+v", got)
	}
}
