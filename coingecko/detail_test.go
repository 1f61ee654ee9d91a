package coingecko

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestCoinDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin" {
			t.Errorf("path = %q, want /coins/bitcoin", r.URL.Path)
		}
		q := r.URL.Query()
		for key, want := range map[string]string{
			"localization":   "false",
			"tickers":        "false",
			"market_data":    "true",
			"community_data": "false",
			"developer_data": "false",
			"sparkline":      "true",
		} {
			if got := q.Get(key); got != want {
				t.Errorf("query %s = %q, want %q", key, got, want)
			}
		}
		fmt.Fprint(w, `{
		  "id": "bitcoin",
		  "symbol": "btc",
		  "name": "Bitcoin",
		  "market_cap_rank": 1,
		  "image": {"large": "https://img/btc-large.png"},
		  "description": {"en": "Bitcoin is the first cryptocurrency."},
		  "links": {"homepage": ["https://bitcoin.org", ""]},
		  "market_data": {
		    "current_price": {"usd": 65000.5, "eur": 60000},
		    "market_cap": {"usd": 1280000000000},
		    "price_change_percentage_24h": 1.2,
		    "price_change_percentage_7d": -3.4,
		    "sparkline_7d": {"price": [64000, 64500, 65000]}
		  }
		}`)
	}))
	defer server.Close()

	d, err := NewTestClient(server.URL).CoinDetail("bitcoin")
	if err != nil {
		t.Fatalf("CoinDetail: %v", err)
	}

	if d.ID != "bitcoin" || d.Symbol != "btc" || d.Name != "Bitcoin" {
		t.Errorf("identity fields: %+v", d)
	}
	if d.Image != "https://img/btc-large.png" {
		t.Errorf("image = %q", d.Image)
	}
	if d.Description != "Bitcoin is the first cryptocurrency." {
		t.Errorf("description = %q", d.Description)
	}
	if d.Homepage != "https://bitcoin.org" {
		t.Errorf("homepage = %q", d.Homepage)
	}
	if d.CurrentPrice != 65000.5 || d.MarketCap != 1280000000000 || d.MarketCapRank != 1 {
		t.Errorf("market fields: %+v", d)
	}
	if d.PriceChange24h != 1.2 || d.PriceChange7d != -3.4 {
		t.Errorf("change fields: %+v", d)
	}
	if want := []float64{64000, 64500, 65000}; !reflect.DeepEqual(d.Sparkline, want) {
		t.Errorf("sparkline = %v, want %v", d.Sparkline, want)
	}
}

func TestCoinDetail_PartialDocument(t *testing.T) {
	// Missing branches degrade to zero values, never to a panic.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "obscure-coin", "symbol": "obs", "name": "Obscure"}`)
	}))
	defer server.Close()

	d, err := NewTestClient(server.URL).CoinDetail("obscure-coin")
	if err != nil {
		t.Fatalf("CoinDetail: %v", err)
	}
	if d.CurrentPrice != 0 || d.Description != "" || d.Homepage != "" || d.Sparkline != nil {
		t.Errorf("missing fields must stay zero: %+v", d)
	}
}

func TestCoinDetail_Malformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": "coin not found"}`)
	}))
	defer server.Close()

	if _, err := NewTestClient(server.URL).CoinDetail("nope"); err == nil {
		t.Error("a document without an id must surface as an error")
	}
}

func TestCoinDetail_EmptyID(t *testing.T) {
	if _, err := NewTestClient("http://unused").CoinDetail(""); err == nil {
		t.Error("an empty coin id must fail before any request")
	}
}
