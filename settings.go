package cryptofolio

import (
	"fmt"
	"slices"
)

// Settings are the user preferences persisted next to the record
// collection. They mirror the tracked storage keys one to one.
type Settings struct {
	Theme           string `json:"theme"`           // "system", "dark" or "light"
	Currency        string `json:"currency"`        // display currency; only "usd" is honored
	RefreshInterval int    `json:"refreshInterval"` // market refresh period, seconds
}

var (
	themes           = []string{"system", "dark", "light"}
	currencies       = []string{"usd", "ngn", "eur", "gbp"}
	refreshIntervals = []int{30, 60, 120, 300}
)

// DefaultSettings returns the settings used when none are stored yet.
func DefaultSettings() Settings {
	return Settings{Theme: "system", Currency: "usd", RefreshInterval: 60}
}

// Validate checks every setting against its domain.
func (s Settings) Validate() error {
	if !slices.Contains(themes, s.Theme) {
		return fmt.Errorf("unknown theme %q, want one of %v", s.Theme, themes)
	}
	if !slices.Contains(currencies, s.Currency) {
		return fmt.Errorf("unknown currency %q, want one of %v", s.Currency, currencies)
	}
	if !slices.Contains(refreshIntervals, s.RefreshInterval) {
		return fmt.Errorf("invalid refresh interval %d, want one of %v", s.RefreshInterval, refreshIntervals)
	}
	return nil
}

// sanitized returns a copy with every out-of-domain field replaced by its
// default, applying the lenient-read policy to the settings key.
func (s Settings) sanitized() Settings {
	def := DefaultSettings()
	if !slices.Contains(themes, s.Theme) {
		s.Theme = def.Theme
	}
	if !slices.Contains(currencies, s.Currency) {
		s.Currency = def.Currency
	}
	if !slices.Contains(refreshIntervals, s.RefreshInterval) {
		s.RefreshInterval = def.RefreshInterval
	}
	return s
}
