// Package constants provides shared constants for the emi-calculator application.
package constants

// DateTimeLayout is the format expected for loan start dates and is also the
// output date format for schedule labels.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// WholeUnitTolerance is the tolerance for comparisons of values rounded to
	// whole currency units.
	WholeUnitTolerance = 1.0
)

// Recommended input bounds offered by the calculator form. They are UI
// affordances; the engine computes outside of them as well.
const (
	MinLoanAmount  = 10000.0
	MaxLoanAmount  = 40000000.0
	LoanAmountStep = 10000.0

	MinTenureYears = 1
	MaxTenureYears = 15

	MinInterestRate  = 10.0
	MaxInterestRate  = 21.0
	InterestRateStep = 0.1
)

// MaxComputableTenureYears caps the tenure accepted from untrusted input so a
// single request cannot allocate an unbounded schedule.
const MaxComputableTenureYears = 100

// Form defaults.
const (
	DefaultLoanAmount   = 1000000.0
	DefaultTenureYears  = 5
	DefaultInterestRate = 12.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Currency presentation constants
const (
	// DefaultCurrencySymbol is the symbol used by the calculator UI.
	DefaultCurrencySymbol = "₹"

	// GroupingIndian groups digits in lakhs and crores (12,34,567).
	GroupingIndian = "indian"

	// GroupingWestern groups digits in thousands (1,234,567).
	GroupingWestern = "western"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes caps request bodies and query strings (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the server
	DefaultShutdownTimeoutSeconds = 10
)
