// Package loans provides the amortization engine for fixed-installment
// (EMI) loans.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/datetime"
	"github.com/iwvelando/emi-calculator/pkg/mathutil"
	"go.uber.org/zap"
)

// LoanRequest holds the inputs of one calculation.
type LoanRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TenureYears       int     `json:"tenureYears"`

	// StartDate optionally labels entries with calendar months (YYYY-MM).
	StartDate string `json:"startDate,omitempty"`
	// CurrentMonth is the number of installments already paid; it only
	// affects the paid/remaining view.
	CurrentMonth int `json:"currentMonth,omitempty"`
}

// Months returns the number of monthly periods in the loan term.
func (r LoanRequest) Months() int {
	if r.TenureYears <= 0 {
		return 0
	}
	return r.TenureYears * constants.MonthsPerYear
}

// Computable reports whether the request lies in the engine's domain: a
// finite positive principal, a tenure between one year and
// constants.MaxComputableTenureYears, and a finite non-negative rate.
func (r LoanRequest) Computable() bool {
	if !mathutil.IsFinitePositive(r.Principal) || r.TenureYears <= 0 || r.TenureYears > constants.MaxComputableTenureYears {
		return false
	}
	if math.IsNaN(r.AnnualRatePercent) || math.IsInf(r.AnnualRatePercent, 0) {
		return false
	}
	return r.AnnualRatePercent >= 0
}

// AmortizationEntry holds the values for a given monthly payment.
type AmortizationEntry struct {
	Month            int     `json:"month"`
	Date             string  `json:"date,omitempty"`
	Installment      float64 `json:"installment"`
	PrincipalPortion float64 `json:"principalPortion"`
	InterestPortion  float64 `json:"interestPortion"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// LoanSummary holds the headline figures of a loan. The rounded fields are
// whole currency units for display; the Exact fields keep full precision.
type LoanSummary struct {
	MonthlyInstallment float64 `json:"monthlyInstallment"`
	TotalInterest      float64 `json:"totalInterest"`
	TotalPayment       float64 `json:"totalPayment"`
	NumberOfMonths     int     `json:"numberOfMonths"`

	ExactMonthlyInstallment float64 `json:"exactMonthlyInstallment"`
	ExactTotalInterest      float64 `json:"exactTotalInterest"`
	ExactTotalPayment       float64 `json:"exactTotalPayment"`
}

// Amortization is the complete result of one calculation.
type Amortization struct {
	Request LoanRequest         `json:"request"`
	Summary LoanSummary         `json:"summary"`
	Entries []AmortizationEntry `json:"entries"`
}

// Computed reports whether a schedule was produced. A zero result means the
// inputs were missing or outside the engine's domain.
func (a Amortization) Computed() bool {
	return len(a.Entries) > 0
}

// PeriodicRate converts an annual percentage rate into the monthly fraction.
func PeriodicRate(annualRatePercent float64) float64 {
	return annualRatePercent / constants.MonthsPerYear / constants.PercentageMultiplier
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
// The formula is evaluated as P·r / (1 − (1+r)^−n) through Log1p and Expm1,
// which stays accurate for tiny rates and does not overflow for huge ones.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}

	periodicInterestRate := PeriodicRate(annualInterestRate)
	if periodicInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	growth := float64(termMonths) * math.Log1p(periodicInterestRate)
	return principal * periodicInterestRate / -math.Expm1(-growth)
}

// CalculatePrincipalPayment calculates the principal portion of an installment
// when paymentsLeft installments, this one included, remain. It equals
// installment·(1+r)^−paymentsLeft, so the portions of a full schedule sum to
// the principal at any rate.
func CalculatePrincipalPayment(installment, periodicInterestRate float64, paymentsLeft int) float64 {
	if paymentsLeft <= 0 {
		return 0
	}
	return installment * math.Exp(-float64(paymentsLeft)*math.Log1p(periodicInterestRate))
}

// ComputeAmortization computes the installment, totals and month-by-month
// schedule for a loan. Inputs outside the engine's domain, including tenures
// above constants.MaxComputableTenureYears, produce the zero Amortization
// rather than an error.
func ComputeAmortization(principal, annualRatePercent float64, tenureYears int) Amortization {
	return Compute(LoanRequest{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TenureYears:       tenureYears,
	})
}

// Compute is ComputeAmortization for a full LoanRequest.
func Compute(req LoanRequest) Amortization {
	return NewAmortizationScheduleGenerator(nil).GenerateSchedule(req)
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for a loan.
func (g *AmortizationScheduleGenerator) GenerateSchedule(req LoanRequest) Amortization {
	result := Amortization{Request: req, Entries: []AmortizationEntry{}}
	if !req.Computable() {
		g.logger.Debug("loan request outside computable domain, returning empty schedule",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("principal", req.Principal),
			zap.Float64("annualRatePercent", req.AnnualRatePercent),
			zap.Int("tenureYears", req.TenureYears),
		)
		return result
	}

	rate := PeriodicRate(req.AnnualRatePercent)
	months := req.Months()
	installment := CalculateMonthlyPayment(req.Principal, req.AnnualRatePercent, months)
	totalPayment := installment * float64(months)
	totalInterest := totalPayment - req.Principal
	if !mathutil.IsFinitePositive(installment) || !mathutil.IsFinitePositive(totalPayment) {
		g.logger.Debug("installment overflows, returning empty schedule",
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("principal", req.Principal),
			zap.Float64("annualRatePercent", req.AnnualRatePercent),
			zap.Int("tenureYears", req.TenureYears),
		)
		return result
	}

	result.Summary = LoanSummary{
		MonthlyInstallment:      mathutil.RoundWhole(installment),
		TotalInterest:           mathutil.RoundWhole(totalInterest),
		TotalPayment:            mathutil.RoundWhole(totalPayment),
		NumberOfMonths:          months,
		ExactMonthlyInstallment: installment,
		ExactTotalInterest:      totalInterest,
		ExactTotalPayment:       totalPayment,
	}

	labels := g.monthLabels(req.StartDate, months)

	balance := req.Principal
	entries := make([]AmortizationEntry, 0, months)
	for month := 1; month <= months; month++ {
		principal := CalculatePrincipalPayment(installment, rate, months-month+1)
		interest := installment - principal
		balance -= principal

		entry := AmortizationEntry{
			Month:            month,
			Installment:      installment,
			PrincipalPortion: principal,
			InterestPortion:  interest,
			// Floating point drift can leave the final balance a hair below zero.
			RemainingBalance: mathutil.ClampNonNegative(balance),
		}
		if labels != nil {
			entry.Date = labels[month-1]
		}
		entries = append(entries, entry)
	}
	result.Entries = entries

	g.logger.Debug(fmt.Sprintf("computed %d month schedule with installment %.2f", months, installment),
		zap.String("op", "loans.GenerateSchedule"),
		zap.Float64("totalPayment", totalPayment),
		zap.Float64("totalInterest", totalInterest),
	)

	return result
}

func (g *AmortizationScheduleGenerator) monthLabels(startDate string, months int) []string {
	if startDate == "" {
		return nil
	}
	labels, err := datetime.MonthSequence(startDate, months)
	if err != nil {
		g.logger.Warn("ignoring unparseable start date",
			zap.String("op", "loans.GenerateSchedule"),
			zap.String("startDate", startDate),
			zap.Error(err),
		)
		return nil
	}
	return labels
}
