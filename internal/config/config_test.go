package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/emi-calculator/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Example config file",
			configPath: filepath.Join("..", "..", constants.ExampleConfigFile),
			wantError:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`loan:
  amount: 2500000
  years: 10
  rate: 13.5
  startDate: "2025-04"
  currentMonth: 6
currency:
  symbol: "$"
  grouping: western
  places: 2
logging:
  level: debug
  format: console
output:
  format: csv
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	req := conf.Request()
	if req.Principal != 2500000 || req.TenureYears != 10 || req.AnnualRatePercent != 13.5 {
		t.Errorf("unexpected request %+v", req)
	}
	if req.StartDate != "2025-04" || req.CurrentMonth != 6 {
		t.Errorf("unexpected presentation fields %+v", req)
	}

	style := conf.Style()
	if style.Symbol != "$" || style.Grouping != constants.GroupingWestern || style.Places != 2 {
		t.Errorf("unexpected style %+v", style)
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config %+v", conf.Logging)
	}
	if conf.Output.Format != constants.OutputFormatCSV {
		t.Errorf("Output.Format = %s, expected csv", conf.Output.Format)
	}
	if conf.Bounds.MaxYears != constants.MaxTenureYears {
		t.Errorf("Bounds.MaxYears = %d, expected default %d", conf.Bounds.MaxYears, constants.MaxTenureYears)
	}
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Loan.Amount != constants.DefaultLoanAmount {
		t.Errorf("Loan.Amount = %.0f, expected default %.0f", conf.Loan.Amount, constants.DefaultLoanAmount)
	}
	if conf.Loan.Years != constants.DefaultTenureYears {
		t.Errorf("Loan.Years = %d, expected default %d", conf.Loan.Years, constants.DefaultTenureYears)
	}
	if conf.Loan.Rate != constants.DefaultInterestRate {
		t.Errorf("Loan.Rate = %.2f, expected default %.2f", conf.Loan.Rate, constants.DefaultInterestRate)
	}
	if conf.Currency.Symbol != constants.DefaultCurrencySymbol || conf.Currency.Grouping != constants.GroupingIndian {
		t.Errorf("unexpected currency defaults %+v", conf.Currency)
	}
	if conf.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %s, expected warn", conf.Logging.Level)
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Malformed YAML", "loan: [amount"},
		{"Inverted bounds", "bounds:\n  minRate: 30\n  maxRate: 5\n"},
		{"Non-numeric amount", "loan:\n  amount: lots\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfigurationFromReader(strings.NewReader(tt.data)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("EMI_LOAN_AMOUNT", "750000")
	t.Setenv("EMI_LOAN_YEARS", "3")
	t.Setenv("EMI_OUTPUT_FORMAT", "json")

	conf, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}

	if conf.Loan.Amount != 750000 {
		t.Errorf("Loan.Amount = %.0f, expected 750000 from environment", conf.Loan.Amount)
	}
	if conf.Loan.Years != 3 {
		t.Errorf("Loan.Years = %d, expected 3 from environment", conf.Loan.Years)
	}
	if conf.Output.Format != constants.OutputFormatJSON {
		t.Errorf("Output.Format = %s, expected json from environment", conf.Output.Format)
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings for defaults, got %v", warnings)
	}

	conf.Loan.Amount = 100
	conf.Loan.StartDate = "April"
	conf.Currency.Grouping = "swiss"
	warnings := conf.ValidateConfiguration()
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "grouping") {
		t.Errorf("expected grouping warning first, got %q", warnings[0])
	}
}
