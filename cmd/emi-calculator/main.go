package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/emi-calculator/internal/config"
	"github.com/iwvelando/emi-calculator/internal/logging"
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/loans"
	"github.com/iwvelando/emi-calculator/pkg/output"
	"github.com/iwvelando/emi-calculator/pkg/validation"
	"go.uber.org/zap"
)

type options struct {
	configLocation string
	outputFormat   string
	logLevel       string
	amount         float64
	years          int
	rate           float64
	startDate      string
	currentMonth   int
	set            map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	flags := flag.NewFlagSet("emi-calculator", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.Float64Var(&opts.amount, "amount", 0, "loan amount override")
	flags.IntVar(&opts.years, "years", 0, "loan tenure in years override")
	flags.Float64Var(&opts.rate, "rate", 0, "annual interest rate in percent override")
	flags.StringVar(&opts.startDate, "start", "", "month of the first installment (YYYY-MM)")
	flags.IntVar(&opts.currentMonth, "current-month", 0, "installments already paid, for the paid/remaining split")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	flags.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// loadConfiguration falls back to defaults when the default config file is
// absent; an explicitly named file must exist.
func loadConfiguration(opts *options) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err == nil {
		return conf, nil
	}
	if !opts.set["config"] {
		if _, statErr := os.Stat(opts.configLocation); errors.Is(statErr, fs.ErrNotExist) {
			return config.Defaults()
		}
	}
	return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configLocation, err)
}

func applyOverrides(conf *config.Configuration, opts *options) {
	if opts.set["amount"] {
		conf.Loan.Amount = opts.amount
	}
	if opts.set["years"] {
		conf.Loan.Years = opts.years
	}
	if opts.set["rate"] {
		conf.Loan.Rate = opts.rate
	}
	if opts.set["start"] {
		conf.Loan.StartDate = opts.startDate
	}
	if opts.set["current-month"] {
		conf.Loan.CurrentMonth = opts.currentMonth
	}
	if opts.outputFormat != "" {
		conf.Output.Format = opts.outputFormat
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	conf, err := loadConfiguration(opts)
	if err != nil {
		return err
	}
	applyOverrides(conf, opts)

	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}
	if conf.Loan.Years > constants.MaxComputableTenureYears {
		return fmt.Errorf("loan years must not exceed %d, got %d", constants.MaxComputableTenureYears, conf.Loan.Years)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	req := conf.Request()
	result := loans.Amortization{Request: req, Entries: []loans.AmortizationEntry{}}
	if validation.Submitted(req) {
		result = loans.NewAmortizationScheduleGenerator(logger).GenerateSchedule(req)
	} else {
		logger.Info("amount, years and rate are required; nothing to compute",
			zap.String("op", "main"),
		)
	}

	return output.Write(stdout, conf.Output.Format, output.NewReport(result, warnings), conf.Style())
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": %q}\n", err.Error())
		os.Exit(1)
	}
}
