package server

import (
	"errors"
	"net/url"
	"testing"
)

func TestParseLoanRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		amount      float64
		years       int
		rate        float64
		start       string
		current     int
		notes       int
		expectError bool
	}{
		{name: "All parameters", query: "amount=1000000&years=5&rate=12&start=2025-01&current=3", amount: 1000000, years: 5, rate: 12, start: "2025-01", current: 3},
		{name: "Whitespace is trimmed", query: "amount=%201000%20&years=2&rate=10.5", amount: 1000, years: 2, rate: 10.5},
		{name: "Whole-number float years", query: "amount=1000&years=5.0&rate=10", amount: 1000, years: 5, rate: 10},
		{name: "Everything missing", query: "", notes: 3},
		{name: "Non-numeric amount", query: "amount=lots&years=5&rate=12", years: 5, rate: 12, notes: 1},
		{name: "NaN rate", query: "amount=1000&years=5&rate=NaN", amount: 1000, years: 5, notes: 1},
		{name: "Fractional years", query: "amount=1000&years=2.5&rate=12", amount: 1000, rate: 12, notes: 1},
		{name: "Negative values pass through", query: "amount=-1000&years=-2&rate=-3", amount: -1000, years: -2, rate: -3},
		{name: "Tenure above cap", query: "amount=1000&years=101&rate=12", expectError: true},
		{name: "Bad current month", query: "amount=1000&years=5&rate=12&current=x", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad test query: %v", err)
			}

			req, notes, err := parseLoanRequest(values)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Fatalf("expected ErrInvalidParameter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if req.Principal != tt.amount || req.TenureYears != tt.years || req.AnnualRatePercent != tt.rate {
				t.Errorf("got amount=%v years=%d rate=%v, expected %v/%d/%v",
					req.Principal, req.TenureYears, req.AnnualRatePercent, tt.amount, tt.years, tt.rate)
			}
			if req.StartDate != tt.start || req.CurrentMonth != tt.current {
				t.Errorf("got start=%q current=%d, expected %q/%d", req.StartDate, req.CurrentMonth, tt.start, tt.current)
			}
			if len(notes) != tt.notes {
				t.Errorf("expected %d notes, got %v", tt.notes, notes)
			}
		})
	}
}
