package validation

import (
	"fmt"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/datetime"
	"github.com/iwvelando/emi-calculator/pkg/loans"
)

// Bounds are the recommended input ranges offered by the calculator form.
type Bounds struct {
	MinAmount float64 `json:"minAmount" mapstructure:"minAmount" yaml:"minAmount"`
	MaxAmount float64 `json:"maxAmount" mapstructure:"maxAmount" yaml:"maxAmount"`
	MinYears  int     `json:"minYears" mapstructure:"minYears" yaml:"minYears"`
	MaxYears  int     `json:"maxYears" mapstructure:"maxYears" yaml:"maxYears"`
	MinRate   float64 `json:"minRate" mapstructure:"minRate" yaml:"minRate"`
	MaxRate   float64 `json:"maxRate" mapstructure:"maxRate" yaml:"maxRate"`
}

// DefaultBounds returns the ranges of the original calculator form.
func DefaultBounds() Bounds {
	return Bounds{
		MinAmount: constants.MinLoanAmount,
		MaxAmount: constants.MaxLoanAmount,
		MinYears:  constants.MinTenureYears,
		MaxYears:  constants.MaxTenureYears,
		MinRate:   constants.MinInterestRate,
		MaxRate:   constants.MaxInterestRate,
	}
}

// WithDefaults fills unset fields from DefaultBounds.
func (b Bounds) WithDefaults() Bounds {
	d := DefaultBounds()
	if b.MinAmount <= 0 {
		b.MinAmount = d.MinAmount
	}
	if b.MaxAmount <= 0 {
		b.MaxAmount = d.MaxAmount
	}
	if b.MinYears <= 0 {
		b.MinYears = d.MinYears
	}
	if b.MaxYears <= 0 {
		b.MaxYears = d.MaxYears
	}
	if b.MinRate <= 0 {
		b.MinRate = d.MinRate
	}
	if b.MaxRate <= 0 {
		b.MaxRate = d.MaxRate
	}
	return b
}

// Check reports inverted ranges.
func (b Bounds) Check() error {
	if b.MinAmount > b.MaxAmount {
		return fmt.Errorf("minAmount %.2f exceeds maxAmount %.2f", b.MinAmount, b.MaxAmount)
	}
	if b.MinYears > b.MaxYears {
		return fmt.Errorf("minYears %d exceeds maxYears %d", b.MinYears, b.MaxYears)
	}
	if b.MinRate > b.MaxRate {
		return fmt.Errorf("minRate %.2f exceeds maxRate %.2f", b.MinRate, b.MaxRate)
	}
	return nil
}

// ValidateRequest compares a request against the recommended bounds and
// returns warnings. Out-of-range values are still computed.
func ValidateRequest(req loans.LoanRequest, bounds Bounds) []string {
	var warnings []string

	if req.Principal < bounds.MinAmount || req.Principal > bounds.MaxAmount {
		warnings = append(warnings, fmt.Sprintf("Loan amount %.2f is outside the recommended range %.0f-%.0f",
			req.Principal, bounds.MinAmount, bounds.MaxAmount))
	}

	if req.TenureYears < bounds.MinYears || req.TenureYears > bounds.MaxYears {
		warnings = append(warnings, fmt.Sprintf("Loan tenure %d years is outside the recommended range %d-%d",
			req.TenureYears, bounds.MinYears, bounds.MaxYears))
	}

	if req.AnnualRatePercent < bounds.MinRate || req.AnnualRatePercent > bounds.MaxRate {
		warnings = append(warnings, fmt.Sprintf("Interest rate %.2f%% is outside the recommended range %.2f%%-%.2f%%",
			req.AnnualRatePercent, bounds.MinRate, bounds.MaxRate))
	}

	if req.StartDate != "" {
		if err := datetime.ValidateMonth(req.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Start date ignored: %v", err))
		}
	}

	if months := req.Months(); req.CurrentMonth > months {
		warnings = append(warnings, fmt.Sprintf("Current month %d is past the end of the %d month term",
			req.CurrentMonth, months))
	}

	return warnings
}

// Submitted reports whether amount, tenure and rate were all supplied with
// non-zero values. Calculator front ends skip the calculation otherwise, even
// though the engine itself accepts a zero rate.
func Submitted(req loans.LoanRequest) bool {
	return req.Principal != 0 && req.TenureYears != 0 && req.AnnualRatePercent != 0
}
