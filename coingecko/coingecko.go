// Package coingecko is the market data gateway: a thin, read-only client
// for the public CoinGecko REST API.
//
// It exposes the operations the tracker consumes (market listings,
// free-text search, per-coin detail) and nothing else. Responses are
// passed through with no retry or rate-limiting policy; a failed call is
// returned to the caller to surface as a retryable error. A small disk
// cache keyed on the configured refresh interval keeps repeated views from
// re-fetching the same snapshot.
package coingecko

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// apiKeyEnv optionally carries a demo API key to lift the anonymous quota.
const apiKeyEnv = "COINGECKO_API_KEY"

// Client talks to the CoinGecko API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client whose cached responses expire every refresh
// interval. The COINGECKO_API_KEY environment variable, when set, is sent
// along with every request.
func NewClient(refresh time.Duration) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		apiKey:  os.Getenv(apiKeyEnv),
		http:    newCachingClient(refresh),
	}
}

// NewTestClient creates a client against a fake endpoint with no caching.
// It is meant for tests.
func NewTestClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: http.DefaultClient}
}

// Market is one row of the /coins/markets response, the snapshot consumed
// by the market table and the add-transaction pre-fill.
type Market struct {
	ID                       string     `json:"id"`
	Symbol                   string     `json:"symbol"`
	Name                     string     `json:"name"`
	Image                    string     `json:"image"`
	CurrentPrice             float64    `json:"current_price"`
	MarketCap                float64    `json:"market_cap"`
	MarketCapRank            int        `json:"market_cap_rank"`
	PriceChange24h           float64    `json:"price_change_percentage_24h"`
	PriceChange24hInCurrency float64    `json:"price_change_percentage_24h_in_currency"`
	PriceChange7dInCurrency  float64    `json:"price_change_percentage_7d_in_currency"`
	Sparkline                *Sparkline `json:"sparkline_in_7d,omitempty"`
}

// Sparkline carries the 7-day price series attached to a market row.
type Sparkline struct {
	Price []float64 `json:"price"`
}

// MarketsParams are the query parameters of ListMarkets. The zero value is
// usable: every unset field falls back to the tracker's defaults.
type MarketsParams struct {
	VsCurrency            string   // default "usd"
	Order                 string   // default "market_cap_desc"
	PerPage               int      // default 10
	Page                  int      // default 1
	PriceChangePercentage string   // default "24h,7d"
	Sparkline             bool     // default true (see withDefaults)
	NoSparkline           bool     // set to force sparkline=false
	IDs                   []string // optional filter to specific coin ids
}

func (p MarketsParams) withDefaults() MarketsParams {
	if p.VsCurrency == "" {
		p.VsCurrency = "usd"
	}
	if p.Order == "" {
		p.Order = "market_cap_desc"
	}
	if p.PerPage <= 0 {
		p.PerPage = 10
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PriceChangePercentage == "" {
		p.PriceChangePercentage = "24h,7d"
	}
	p.Sparkline = !p.NoSparkline
	return p
}

// ListMarkets fetches a page of market snapshots ordered by market cap (or
// the requested order).
func (c *Client) ListMarkets(params MarketsParams) ([]Market, error) {
	p := params.withDefaults()

	q := url.Values{}
	q.Set("vs_currency", p.VsCurrency)
	q.Set("order", p.Order)
	q.Set("per_page", strconv.Itoa(p.PerPage))
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("price_change_percentage", p.PriceChangePercentage)
	q.Set("sparkline", strconv.FormatBool(p.Sparkline))
	if len(p.IDs) > 0 {
		q.Set("ids", strings.Join(p.IDs, ","))
	}

	var markets []Market
	if err := jwget(c.http, c.endpoint("/coins/markets", q), &markets); err != nil {
		return nil, fmt.Errorf("cannot fetch market data: %w", err)
	}
	return markets, nil
}

// endpoint assembles a request URL, appending the API key when configured.
func (c *Client) endpoint(path string, q url.Values) string {
	if c.apiKey != "" {
		q.Set("x_cg_demo_api_key", c.apiKey)
	}
	return c.baseURL + path + "?" + q.Encode()
}
