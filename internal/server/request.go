package server

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/loans"
)

// Query parameter names understood by the loan endpoints.
const (
	paramAmount  = "amount"
	paramYears   = "years"
	paramRate    = "rate"
	paramStart   = "start"
	paramCurrent = "current"
)

var (
	// ErrMissingParameter marks a required loan parameter that was absent.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrInvalidParameter marks a parameter that could not be interpreted.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// parseLoanRequest reads a loan request from query parameters. Missing or
// non-numeric amount, years and rate are coerced to zero, which the engine
// treats as "not yet computed"; those problems are returned as notes rather
// than an error. Malformed optional parameters are errors.
func parseLoanRequest(values url.Values) (loans.LoanRequest, []string, error) {
	var req loans.LoanRequest
	var notes []string

	amount, err := parseNumber(values, paramAmount)
	if err != nil {
		notes = append(notes, err.Error())
	}
	req.Principal = amount

	rate, err := parseNumber(values, paramRate)
	if err != nil {
		notes = append(notes, err.Error())
	}
	req.AnnualRatePercent = rate

	years, err := parseNumber(values, paramYears)
	if err != nil {
		notes = append(notes, err.Error())
	}
	if years != math.Trunc(years) {
		notes = append(notes, fmt.Sprintf("%s: %s must be a whole number of years", ErrInvalidParameter, paramYears))
		years = 0
	}
	if years > constants.MaxComputableTenureYears {
		return req, notes, fmt.Errorf("%w: %s must not exceed %d", ErrInvalidParameter, paramYears, constants.MaxComputableTenureYears)
	}
	req.TenureYears = int(years)

	req.StartDate = strings.TrimSpace(values.Get(paramStart))

	if raw := strings.TrimSpace(values.Get(paramCurrent)); raw != "" {
		current, err := strconv.Atoi(raw)
		if err != nil || current < 0 {
			return req, notes, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrInvalidParameter, paramCurrent, raw)
		}
		req.CurrentMonth = current
	}

	return req, notes, nil
}

// parseNumber mirrors a browser's Number(x) || 0: absent, empty, non-numeric
// and non-finite values become zero.
func parseNumber(values url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, key)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s is not a number: %q", ErrInvalidParameter, key, raw)
	}
	return value, nil
}
