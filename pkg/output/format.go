// Package output provides utilities for formatting and displaying loan results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report bundles a computed schedule with the views derived from it.
type Report struct {
	Computed   bool                      `json:"computed"`
	Request    loans.LoanRequest         `json:"request"`
	Summary    loans.LoanSummary         `json:"summary"`
	Schedule   []loans.AmortizationEntry `json:"schedule"`
	Cumulative []loans.CumulativePoint   `json:"cumulative"`
	Split      loans.Split               `json:"split"`
	Paid       loans.PaidRemaining       `json:"paid"`
	Warnings   []string                  `json:"warnings,omitempty"`
}

// NewReport derives the presentation views from a computed amortization.
func NewReport(a loans.Amortization, warnings []string) Report {
	return Report{
		Computed:   a.Computed(),
		Request:    a.Request,
		Summary:    a.Summary,
		Schedule:   a.Entries,
		Cumulative: loans.Cumulative(a.Entries),
		Split:      loans.PrincipalInterestSplit(a),
		Paid:       loans.PaidSplit(a, a.Request.CurrentMonth),
		Warnings:   warnings,
	}
}

// Write renders the report in the named output format.
func Write(w io.Writer, outputFormat string, report Report, style format.Style) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, report, style)
	case constants.OutputFormatCSV:
		return CsvFormat(w, report.Schedule)
	case constants.OutputFormatJSON:
		return JSONFormat(w, report)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// PrettyFormat outputs a human-readable summary panel and schedule table.
func PrettyFormat(w io.Writer, report Report, style format.Style) error {
	p := message.NewPrinter(language.English)
	whole := style
	whole.Places = 0

	if !report.Computed {
		_, err := p.Fprintf(w, "No loan details computed: amount, years and rate must all be positive.\n")
		return err
	}

	req := report.Request
	lines := []string{
		"--- Loan Breakdown ---",
		p.Sprintf("Loan Amount:              %s", whole.Currency(req.Principal)),
		p.Sprintf("Loan Tenure:              %d year(s)", req.TenureYears),
		p.Sprintf("Interest Rate:            %s%%", strconv.FormatFloat(req.AnnualRatePercent, 'f', -1, 64)),
		p.Sprintf("Monthly EMI:              %s", whole.Currency(report.Summary.MonthlyInstallment)),
		p.Sprintf("Total Interest Payable:   %s", whole.Currency(report.Summary.TotalInterest)),
		p.Sprintf("Total Amount to be Paid:  %s", whole.Currency(report.Summary.TotalPayment)),
	}
	if req.CurrentMonth > 0 {
		lines = append(lines,
			p.Sprintf("%-26s%s", p.Sprintf("Paid Through Month %d:", report.Paid.ThroughMonth), whole.Currency(report.Paid.Paid)),
			p.Sprintf("Remaining:                %s", whole.Currency(report.Paid.Remaining)),
		)
	}
	for _, warning := range report.Warnings {
		lines = append(lines, "Warning: "+warning)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := p.Fprintf(w, "\nMonth   | EMI          | Principal    | Interest     | Balance\n"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "_____   | ____________ | ____________ | ____________ | ____________\n"); err != nil {
		return err
	}
	for _, entry := range report.Schedule {
		label := strconv.Itoa(entry.Month)
		if entry.Date != "" {
			label = entry.Date
		}
		_, err := p.Fprintf(w, "%-7s | %-12s | %-12s | %-12s | %s\n",
			label,
			whole.Currency(entry.Installment),
			whole.Currency(entry.PrincipalPortion),
			whole.Currency(entry.InterestPortion),
			whole.Currency(entry.RemainingBalance),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat outputs the schedule in comma-separated value format with
// amounts at two decimal places.
func CsvFormat(w io.Writer, entries []loans.AmortizationEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"month", "date", "installment", "principal", "interest", "balance"}); err != nil {
		return err
	}
	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.Month),
			entry.Date,
			format.Fixed(entry.Installment, 2),
			format.Fixed(entry.PrincipalPortion, 2),
			format.Fixed(entry.InterestPortion, 2),
			format.Fixed(entry.RemainingBalance, 2),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// CsvString returns the CSV rendering of a schedule.
func CsvString(entries []loans.AmortizationEntry) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, entries); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
