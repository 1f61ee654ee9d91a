package coingecko

import (
	"fmt"
	"net/url"
	"strings"
)

// searchResponse matches the /search endpoint: candidate coins only carry
// identity fields, no market data.
type searchResponse struct {
	Coins []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
		Thumb  string `json:"thumb"`
	} `json:"coins"`
}

// maxSearchResults caps how many candidates get resolved to market rows.
const maxSearchResults = 50

// Search finds coins by free-text query and resolves the candidates to full
// market rows in a second request, so callers get prices and changes in one
// call. An empty query yields no results and no request.
func (c *Client) Search(query string) ([]Market, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("query", query)
	var resp searchResponse
	if err := jwget(c.http, c.endpoint("/search", q), &resp); err != nil {
		return nil, fmt.Errorf("cannot search coins: %w", err)
	}
	if len(resp.Coins) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, maxSearchResults)
	for _, coin := range resp.Coins {
		if len(ids) == maxSearchResults {
			break
		}
		ids = append(ids, coin.ID)
	}
	return c.ListMarkets(MarketsParams{IDs: ids, PerPage: len(ids)})
}
