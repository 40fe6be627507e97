// Package config defines the data structures related to configuration and
// includes functions for loading the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/datetime"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/loans"
	"github.com/iwvelando/emi-calculator/pkg/validation"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. EMI_LOAN_AMOUNT.
const EnvPrefix = "EMI"

// Configuration holds all configuration for emi-calculator.
type Configuration struct {
	Loan     LoanConfig        `yaml:"loan"`
	Bounds   validation.Bounds `yaml:"bounds"`
	Currency CurrencyConfig    `yaml:"currency"`
	Logging  LoggingConfig     `yaml:"logging,omitempty"`
	Output   OutputConfig      `yaml:"output,omitempty"`
}

// LoanConfig holds the loan to calculate.
type LoanConfig struct {
	Amount       float64 `yaml:"amount"`
	Years        int     `yaml:"years"`
	Rate         float64 `yaml:"rate"`
	StartDate    string  `yaml:"startDate,omitempty"`
	CurrentMonth int     `yaml:"currentMonth,omitempty"`
}

// CurrencyConfig controls how amounts are displayed.
type CurrencyConfig struct {
	Symbol   string `yaml:"symbol"`
	Grouping string `yaml:"grouping"` // indian, western
	Places   int32  `yaml:"places"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

// Defaults returns the configuration used when no file is present.
func Defaults() (*Configuration, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default for AutomaticEnv to apply during Unmarshal.
	bounds := validation.DefaultBounds()
	v.SetDefault("loan.amount", constants.DefaultLoanAmount)
	v.SetDefault("loan.years", constants.DefaultTenureYears)
	v.SetDefault("loan.rate", constants.DefaultInterestRate)
	v.SetDefault("loan.startDate", "")
	v.SetDefault("loan.currentMonth", 0)
	v.SetDefault("bounds.minAmount", bounds.MinAmount)
	v.SetDefault("bounds.maxAmount", bounds.MaxAmount)
	v.SetDefault("bounds.minYears", bounds.MinYears)
	v.SetDefault("bounds.maxYears", bounds.MaxYears)
	v.SetDefault("bounds.minRate", bounds.MinRate)
	v.SetDefault("bounds.maxRate", bounds.MaxRate)
	v.SetDefault("currency.symbol", format.DefaultStyle.Symbol)
	v.SetDefault("currency.grouping", format.DefaultStyle.Grouping)
	v.SetDefault("currency.places", format.DefaultStyle.Places)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	if err := configuration.Bounds.Check(); err != nil {
		return nil, fmt.Errorf("invalid bounds: %w", err)
	}
	return &configuration, nil
}

// Request converts the configured loan into an engine request.
func (c *Configuration) Request() loans.LoanRequest {
	return loans.LoanRequest{
		Principal:         c.Loan.Amount,
		AnnualRatePercent: c.Loan.Rate,
		TenureYears:       c.Loan.Years,
		StartDate:         c.Loan.StartDate,
		CurrentMonth:      c.Loan.CurrentMonth,
	}
}

// Style converts the currency configuration into a display style.
func (c *Configuration) Style() format.Style {
	return format.Style{
		Symbol:   c.Currency.Symbol,
		Grouping: c.Currency.Grouping,
		Places:   c.Currency.Places,
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Currency.Grouping {
	case constants.GroupingIndian, constants.GroupingWestern:
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown currency grouping %q, using %s",
			c.Currency.Grouping, constants.GroupingWestern))
	}

	if c.Loan.StartDate != "" {
		if err := datetime.ValidateMonth(c.Loan.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Loan start date ignored: %v", err))
		}
	}

	req := c.Request()
	req.StartDate = ""
	return append(warnings, validation.ValidateRequest(req, c.Bounds)...)
}
