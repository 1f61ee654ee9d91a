package cryptofolio

import (
	"encoding/json"
	"strings"
	"testing"
)

// fields collects the field names of all FieldErrors inside err, walking
// nested joins.
func fields(err error) []string {
	if err == nil {
		return nil
	}
	if fe, ok := err.(FieldError); ok {
		return []string{fe.Field}
	}
	var names []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			names = append(names, fields(e)...)
		}
	}
	return names
}

func TestTransactionRecord_Validate(t *testing.T) {
	valid := rec("t1", "bitcoin", 0.5, 50000, "2025-01-10")

	testCases := []struct {
		name       string
		mutate     func(*TransactionRecord)
		wantFields []string
	}{
		{
			name:   "valid record",
			mutate: func(r *TransactionRecord) {},
		},
		{
			name:       "missing id",
			mutate:     func(r *TransactionRecord) { r.ID = "" },
			wantFields: []string{"id"},
		},
		{
			name:       "missing coin",
			mutate:     func(r *TransactionRecord) { r.CoinID = "" },
			wantFields: []string{"coin"},
		},
		{
			name:       "unknown coin sentinel",
			mutate:     func(r *TransactionRecord) { r.CoinID = UnknownCoinID },
			wantFields: []string{"coin"},
		},
		{
			name: "zero quantity",
			mutate: func(r *TransactionRecord) {
				r.Quantity = Q(0)
				r.TotalValue = r.AverageCost.Mul(r.Quantity)
			},
			wantFields: []string{"quantity"},
		},
		{
			name: "negative quantity",
			mutate: func(r *TransactionRecord) {
				r.Quantity = Q(-1)
				r.TotalValue = r.AverageCost.Mul(r.Quantity)
			},
			wantFields: []string{"quantity"},
		},
		{
			name: "zero cost",
			mutate: func(r *TransactionRecord) {
				r.AverageCost = USD(0)
				r.TotalValue = r.AverageCost.Mul(r.Quantity)
			},
			wantFields: []string{"averageCost"},
		},
		{
			name:       "future date",
			mutate:     func(r *TransactionRecord) { r.Date = Today().Add(1) },
			wantFields: []string{"date"},
		},
		{
			name:       "missing date",
			mutate:     func(r *TransactionRecord) { r.Date = Date{} },
			wantFields: []string{"date"},
		},
		{
			name:       "tampered total value",
			mutate:     func(r *TransactionRecord) { r.TotalValue = USD(1) },
			wantFields: []string{"totalValue"},
		},
		{
			name: "multiple failures reported together",
			mutate: func(r *TransactionRecord) {
				r.CoinID = ""
				r.Quantity = Q(0)
				r.TotalValue = USD(0)
			},
			wantFields: []string{"coin", "quantity"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := r.Validate()
			if len(tc.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			got := fields(err)
			for _, want := range tc.wantFields {
				found := false
				for _, f := range got {
					if f == want {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("Validate() fields = %v, want %q reported", got, want)
				}
			}
		})
	}
}

func TestNewTransactionRecord(t *testing.T) {
	r := NewTransactionRecord("bitcoin", "Bitcoin", "btc", "img", Q(0.5), USD(50000), MustParseDate("2025-01-10"), "first buy")

	if r.ID == "" {
		t.Error("a new record must have an id")
	}
	if r.CoinSymbol != "BTC" {
		t.Errorf("symbol = %q, want upper-cased %q", r.CoinSymbol, "BTC")
	}
	if !r.TotalValue.Equal(USD(25000)) {
		t.Errorf("total value = %s, want %s", r.TotalValue, USD(25000))
	}
	if r.CreatedAt.IsZero() {
		t.Error("a new record must carry a creation timestamp")
	}

	// A zero date defaults to today.
	r = NewTransactionRecord("bitcoin", "Bitcoin", "btc", "", Q(1), USD(1), Date{}, "")
	if !r.Date.IsToday() {
		t.Errorf("date = %s, want today", r.Date)
	}

	// Two records created from the same input never share an id.
	a := NewTransactionRecord("bitcoin", "Bitcoin", "btc", "", Q(1), USD(1), Today(), "")
	b := NewTransactionRecord("bitcoin", "Bitcoin", "btc", "", Q(1), USD(1), Today(), "")
	if a.ID == b.ID {
		t.Errorf("two records share id %q", a.ID)
	}
}

func TestTransactionRecord_MarshalJSON(t *testing.T) {
	r := rec("t1", "bitcoin", 0.5, 50000, "2025-01-10")
	r.CoinName = "Bitcoin"
	r.CoinSymbol = "BTC"

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Stable field order keeps the stored file diffable.
	s := string(data)
	order := []string{`"id"`, `"coinId"`, `"coinName"`, `"coinSymbol"`, `"quantity"`, `"averageCost"`, `"totalValue"`, `"date"`, `"createdAt"`}
	last := -1
	for _, key := range order {
		i := strings.Index(s, key)
		if i < 0 {
			t.Fatalf("marshal output misses %s: %s", key, s)
		}
		if i < last {
			t.Errorf("field %s out of order in %s", key, s)
		}
		last = i
	}

	// Empty optional fields are omitted entirely.
	if strings.Contains(s, "coinImage") || strings.Contains(s, "notes") {
		t.Errorf("empty optional fields must be omitted: %s", s)
	}

	// Numeric fields are bare numbers, not strings.
	if !strings.Contains(s, `"quantity":0.5`) {
		t.Errorf("quantity must be a bare number: %s", s)
	}
	if !strings.Contains(s, `"totalValue":25000`) {
		t.Errorf("total value must be a bare number: %s", s)
	}
}
