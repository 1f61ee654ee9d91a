package coingecko

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// CoinDetail is the subset of the /coins/{id} document the tracker renders.
type CoinDetail struct {
	ID             string
	Symbol         string
	Name           string
	Image          string
	Description    string
	Homepage       string
	CurrentPrice   float64
	MarketCap      float64
	MarketCapRank  int
	PriceChange24h float64
	PriceChange7d  float64
	Sparkline      []float64
}

// CoinDetail fetches the full document for one coin. The response nests
// market data several levels deep, so the interesting fields are extracted
// with jsonpath instead of mirroring the whole document as structs.
func (c *Client) CoinDetail(coinID string) (*CoinDetail, error) {
	if coinID == "" {
		return nil, fmt.Errorf("coin id is required")
	}

	q := url.Values{}
	q.Set("localization", "false")
	q.Set("tickers", "false")
	q.Set("market_data", "true")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")
	q.Set("sparkline", "true")

	var jobj any
	addr := c.endpoint("/coins/"+url.PathEscape(coinID), q)
	if err := jwget(c.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch coin %q: %w", coinID, err)
	}

	d := &CoinDetail{
		ID:             jpString(jobj, "$.id"),
		Symbol:         jpString(jobj, "$.symbol"),
		Name:           jpString(jobj, "$.name"),
		Image:          jpString(jobj, "$.image.large"),
		Description:    jpString(jobj, "$.description.en"),
		Homepage:       jpString(jobj, "$.links.homepage[0]"),
		CurrentPrice:   jpFloat(jobj, "$.market_data.current_price.usd"),
		MarketCap:      jpFloat(jobj, "$.market_data.market_cap.usd"),
		MarketCapRank:  int(jpFloat(jobj, "$.market_cap_rank")),
		PriceChange24h: jpFloat(jobj, "$.market_data.price_change_percentage_24h"),
		PriceChange7d:  jpFloat(jobj, "$.market_data.price_change_percentage_7d"),
	}
	if d.ID == "" {
		return nil, fmt.Errorf("coin %q: malformed response", coinID)
	}

	// The sparkline is a plain array of numbers.
	if jval, err := jsonpath.Get("$.market_data.sparkline_7d.price", jobj); err == nil {
		if jlist, ok := jval.([]any); ok {
			d.Sparkline = make([]float64, 0, len(jlist))
			for _, v := range jlist {
				if f, ok := v.(float64); ok {
					d.Sparkline = append(d.Sparkline, f)
				}
			}
		}
	}
	return d, nil
}

// jpString evaluates a jsonpath expression expected to yield a string.
// Missing or mistyped values yield "".
func jpString(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

// jpFloat evaluates a jsonpath expression expected to yield a number.
// Missing or mistyped values yield 0.
func jpFloat(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	f, _ := jval.(float64)
	return f
}
