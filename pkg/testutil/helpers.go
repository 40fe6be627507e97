// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"
	"math"

	"github.com/iwvelando/emi-calculator/pkg/loans"
	"github.com/iwvelando/emi-calculator/pkg/mathutil"
)

// FindEntry finds the schedule entry for a 1-based month.
// Returns a pointer into the entries slice if found, nil otherwise.
func FindEntry(entries []loans.AmortizationEntry, month int) *loans.AmortizationEntry {
	for i := range entries {
		if entries[i].Month == month {
			return &entries[i]
		}
	}
	return nil
}

// ScheduleViolations checks a computed amortization against the properties
// every schedule must hold and describes each one that fails. tolerance is
// the per-value absolute tolerance; sums are compared with a tolerance scaled
// by the number of months.
func ScheduleViolations(a loans.Amortization, tolerance float64) []string {
	var violations []string
	add := func(format string, args ...interface{}) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	req := a.Request
	months := req.Months()
	if len(a.Entries) != months {
		add("expected %d entries, got %d", months, len(a.Entries))
		return violations
	}
	if a.Summary.NumberOfMonths != months {
		add("summary reports %d months, expected %d", a.Summary.NumberOfMonths, months)
	}

	var principalSum, interestSum float64
	previous := req.Principal
	for i, entry := range a.Entries {
		if entry.Month != i+1 {
			add("entry %d has month %d", i, entry.Month)
		}
		if !mathutil.WithinTolerance(entry.Installment, a.Summary.ExactMonthlyInstallment, tolerance) {
			add("month %d installment %.6f differs from %.6f", entry.Month, entry.Installment, a.Summary.ExactMonthlyInstallment)
		}
		if !mathutil.WithinTolerance(entry.PrincipalPortion+entry.InterestPortion, entry.Installment, tolerance) {
			add("month %d principal+interest %.6f != installment %.6f", entry.Month, entry.PrincipalPortion+entry.InterestPortion, entry.Installment)
		}
		if entry.RemainingBalance < 0 {
			add("month %d has negative balance %.6f", entry.Month, entry.RemainingBalance)
		}
		if entry.RemainingBalance > previous+tolerance {
			add("month %d balance %.6f increased from %.6f", entry.Month, entry.RemainingBalance, previous)
		}
		previous = entry.RemainingBalance
		principalSum += entry.PrincipalPortion
		interestSum += entry.InterestPortion
	}

	sumTolerance := math.Max(tolerance*float64(months), tolerance)
	if last := a.Entries[months-1].RemainingBalance; last > sumTolerance {
		add("final balance %.6f is not zero", last)
	}
	if !mathutil.WithinTolerance(principalSum, req.Principal, sumTolerance) {
		add("principal portions sum to %.6f, expected %.6f", principalSum, req.Principal)
	}
	if !mathutil.WithinTolerance(interestSum, a.Summary.ExactTotalInterest, sumTolerance) {
		add("interest portions sum to %.6f, expected %.6f", interestSum, a.Summary.ExactTotalInterest)
	}
	if !mathutil.WithinTolerance(a.Summary.TotalPayment, a.Summary.MonthlyInstallment*float64(months), float64(months)) {
		add("rounded total payment %.0f is inconsistent with installment %.0f", a.Summary.TotalPayment, a.Summary.MonthlyInstallment)
	}
	return violations
}
