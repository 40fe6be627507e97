package server

import (
	"fmt"

	"github.com/iwvelando/emi-calculator/pkg/mathutil"
	"github.com/iwvelando/emi-calculator/pkg/output"
)

// Chart palette.
const (
	colorPrincipal           = "#3b82f6"
	colorInterest            = "#f59e0b"
	colorCumulativePrincipal = "#2563eb"
	colorCumulativeInterest  = "#eab308"
	colorPaid                = "#10b981"
	colorRemaining           = "#ef4444"
)

// chartSet carries ready-to-plot datasets for the results page. Values are
// rounded to two decimals; the schedule itself keeps full precision.
type chartSet struct {
	Distribution  chart `json:"distribution"`
	Balance       chart `json:"balance"`
	Monthly       chart `json:"monthly"`
	Cumulative    chart `json:"cumulative"`
	PaidRemaining chart `json:"paidRemaining"`
}

type chart struct {
	Labels   []string  `json:"labels"`
	Datasets []dataset `json:"datasets"`
}

type dataset struct {
	Label  string    `json:"label,omitempty"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors"`
	Stack  string    `json:"stack,omitempty"`
	Fill   bool      `json:"fill,omitempty"`
	Axis   string    `json:"axis,omitempty"`
}

// buildCharts returns nil when nothing was computed.
func buildCharts(report output.Report) *chartSet {
	if !report.Computed {
		return nil
	}

	n := len(report.Schedule)
	labels := make([]string, n)
	installments := make([]float64, n)
	balances := make([]float64, n)
	principal := make([]float64, n)
	interest := make([]float64, n)
	for i, entry := range report.Schedule {
		labels[i] = monthLabel(entry.Month, entry.Date)
		installments[i] = mathutil.Round(entry.Installment)
		balances[i] = mathutil.Round(entry.RemainingBalance)
		principal[i] = mathutil.Round(entry.PrincipalPortion)
		interest[i] = mathutil.Round(entry.InterestPortion)
	}

	cumulativePrincipal := make([]float64, len(report.Cumulative))
	cumulativeInterest := make([]float64, len(report.Cumulative))
	for i, point := range report.Cumulative {
		cumulativePrincipal[i] = mathutil.Round(point.Principal)
		cumulativeInterest[i] = mathutil.Round(point.Interest)
	}

	return &chartSet{
		Distribution: chart{
			Labels: []string{"Principal Amount", "Total Interest"},
			Datasets: []dataset{{
				Data:   []float64{report.Split.Principal, report.Split.Interest},
				Colors: []string{colorPrincipal, colorInterest},
			}},
		},
		Balance: chart{
			Labels: labels,
			Datasets: []dataset{
				{Label: "Monthly EMI", Data: installments, Colors: []string{colorPrincipal}, Axis: "y"},
				{Label: "Remaining Balance", Data: balances, Colors: []string{colorInterest}, Fill: true, Axis: "y1"},
			},
		},
		Monthly: chart{
			Labels: labels,
			Datasets: []dataset{
				{Label: "Principal Paid", Data: principal, Colors: []string{colorPrincipal}, Stack: "combined"},
				{Label: "Interest Paid", Data: interest, Colors: []string{colorInterest}, Stack: "combined"},
			},
		},
		Cumulative: chart{
			Labels: labels,
			Datasets: []dataset{
				{Label: "Cumulative Principal Paid", Data: cumulativePrincipal, Colors: []string{colorCumulativePrincipal}},
				{Label: "Cumulative Interest Paid", Data: cumulativeInterest, Colors: []string{colorCumulativeInterest}},
			},
		},
		PaidRemaining: chart{
			Labels: []string{"Paid So Far", "Remaining"},
			Datasets: []dataset{{
				Data:   []float64{mathutil.Round(report.Paid.Paid), mathutil.Round(report.Paid.Remaining)},
				Colors: []string{colorPaid, colorRemaining},
			}},
		},
	}
}

func monthLabel(month int, date string) string {
	if date != "" {
		return date
	}
	return fmt.Sprintf("Month %d", month)
}
