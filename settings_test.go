package cryptofolio

import "testing"

func TestSettings_Validate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings must validate: %v", err)
	}

	testCases := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{"dark theme", Settings{Theme: "dark", Currency: "usd", RefreshInterval: 30}, false},
		{"eur currency", Settings{Theme: "light", Currency: "eur", RefreshInterval: 300}, false},
		{"bad theme", Settings{Theme: "neon", Currency: "usd", RefreshInterval: 60}, true},
		{"bad currency", Settings{Theme: "system", Currency: "jpy", RefreshInterval: 60}, true},
		{"bad interval", Settings{Theme: "system", Currency: "usd", RefreshInterval: 45}, true},
		{"zero value", Settings{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.settings.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSettings_Sanitized(t *testing.T) {
	// Each out-of-domain field falls back to its default independently.
	s := Settings{Theme: "neon", Currency: "gbp", RefreshInterval: 45}.sanitized()

	if s.Theme != "system" {
		t.Errorf("theme = %q, want default system", s.Theme)
	}
	if s.Currency != "gbp" {
		t.Errorf("currency = %q, want kept gbp", s.Currency)
	}
	if s.RefreshInterval != 60 {
		t.Errorf("refresh = %d, want default 60", s.RefreshInterval)
	}

	// Valid settings pass through untouched.
	valid := Settings{Theme: "dark", Currency: "ngn", RefreshInterval: 120}
	if got := valid.sanitized(); got != valid {
		t.Errorf("sanitized(%+v) = %+v", valid, got)
	}
}
