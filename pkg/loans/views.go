package loans

import "github.com/iwvelando/emi-calculator/pkg/mathutil"

// CumulativePoint is the running total of principal and interest paid
// through a given month.
type CumulativePoint struct {
	Month     int     `json:"month"`
	Date      string  `json:"date,omitempty"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// Cumulative folds the schedule into running principal and interest totals.
func Cumulative(entries []AmortizationEntry) []CumulativePoint {
	points := make([]CumulativePoint, 0, len(entries))
	var principal, interest float64
	for _, entry := range entries {
		principal += entry.PrincipalPortion
		interest += entry.InterestPortion
		points = append(points, CumulativePoint{
			Month:     entry.Month,
			Date:      entry.Date,
			Principal: principal,
			Interest:  interest,
		})
	}
	return points
}

// PaidRemaining splits the total payment into what has been paid through a
// month and what is still owed.
type PaidRemaining struct {
	ThroughMonth int     `json:"throughMonth"`
	Paid         float64 `json:"paid"`
	Remaining    float64 `json:"remaining"`
}

// PaidSplit sums installments for months 1..throughMonth. throughMonth is
// clamped to [0, number of entries].
func PaidSplit(a Amortization, throughMonth int) PaidRemaining {
	if throughMonth < 0 {
		throughMonth = 0
	}
	if throughMonth > len(a.Entries) {
		throughMonth = len(a.Entries)
	}

	var paid float64
	for _, entry := range a.Entries[:throughMonth] {
		paid += entry.Installment
	}

	return PaidRemaining{
		ThroughMonth: throughMonth,
		Paid:         paid,
		Remaining:    mathutil.ClampNonNegative(a.Summary.ExactTotalPayment - paid),
	}
}

// Split is the principal versus total interest composition of a loan.
type Split struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// PrincipalInterestSplit returns the borrowed principal against the rounded
// total interest, as shown in the summary panel.
func PrincipalInterestSplit(a Amortization) Split {
	if !a.Computed() {
		return Split{}
	}
	return Split{
		Principal: a.Request.Principal,
		Interest:  a.Summary.TotalInterest,
	}
}
