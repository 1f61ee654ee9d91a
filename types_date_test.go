package cryptofolio

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-01", want: "2025-07-01"},
		{in: "2025-7-1", want: "2025-07-01"}, // lenient single-digit form
		{in: "2025-12-31", want: "2025-12-31"},
		{in: "not-a-date", wantErr: true},
		{in: "2025/07/01", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add(t *testing.T) {
	testCases := []struct {
		in   string
		days int
		want string
	}{
		{"2025-01-31", 1, "2025-02-01"}, // rolls over the month
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2025-03-01", -1, "2025-02-28"},
		{"2025-06-15", 0, "2025-06-15"},
	}
	for _, tc := range testCases {
		if got := MustParseDate(tc.in).Add(tc.days); got.String() != tc.want {
			t.Errorf("%s.Add(%d) = %s, want %s", tc.in, tc.days, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := MustParseDate("2025-01-10")
	b := MustParseDate("2025-01-11")

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is wrong for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is wrong for %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date must not be before or after itself")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-07-01")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-07-01"` {
		t.Errorf("marshal = %s, want %q", data, `"2025-07-01"`)
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %s, want %s", got, d)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero value must be zero")
	}
	if Today().IsZero() {
		t.Error("today must not be zero")
	}
}
