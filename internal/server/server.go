package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/iwvelando/emi-calculator/pkg/format"
	"github.com/iwvelando/emi-calculator/pkg/loans"
	"github.com/iwvelando/emi-calculator/pkg/output"
	"github.com/iwvelando/emi-calculator/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// Options tune the handler returned by NewHandler.
type Options struct {
	MaxRequestSize int64
	Version        string
	Style          format.Style
	Bounds         validation.Bounds
}

// HandlerOptions derives handler options from the server configuration.
func (c *Config) HandlerOptions(version string) Options {
	return Options{
		MaxRequestSize: c.RequestSizeBytes(),
		Version:        version,
		Style:          c.Style(),
		Bounds:         c.Bounds,
	}
}

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
	style          format.Style
	bounds         validation.Bounds
	metrics        *metrics
	router         *mux.Router
}

// NewHandler constructs the HTTP handler that serves the web UI and loan API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	return newHandler(logger, opts)
}

func newHandler(logger *zap.Logger, opts Options) *handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if opts.Style.Grouping == "" {
		opts.Style = format.DefaultStyle
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: opts.MaxRequestSize,
		version:        trimmedVersion,
		style:          opts.Style,
		bounds:         opts.Bounds.WithDefaults(),
		metrics:        newMetrics(),
	}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, h.instrumentMiddleware, h.limitMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/loan", h.handleLoan).Methods(http.MethodGet, http.MethodHead)
	api.HandleFunc("/loan/schedule.csv", h.handleScheduleCSV).Methods(http.MethodGet, http.MethodHead)
	api.HandleFunc("/bounds", h.handleBounds).Methods(http.MethodGet, http.MethodHead)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet, http.MethodHead)

	r.Handle("/metrics", h.metrics.handler()).Methods(http.MethodGet)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.HandleFunc("/loandetails", serveStaticFile(sub, "loandetails.html")).Methods(http.MethodGet, http.MethodHead)
	r.PathPrefix("/").Handler(http.FileServer(http.FS(sub))).Methods(http.MethodGet, http.MethodHead)

	h.router = r
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func serveStaticFile(files fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, files, name)
	}
}

type loanResponse struct {
	output.Report
	Display  *displaySummary `json:"display,omitempty"`
	Charts   *chartSet       `json:"charts,omitempty"`
	Problems []string        `json:"problems,omitempty"`
	Duration string          `json:"duration"`
}

// displaySummary holds the summary panel amounts already formatted for the
// configured currency style.
type displaySummary struct {
	LoanAmount         string `json:"loanAmount"`
	MonthlyInstallment string `json:"monthlyInstallment"`
	TotalInterest      string `json:"totalInterest"`
	TotalPayment       string `json:"totalPayment"`
	Paid               string `json:"paid,omitempty"`
	Remaining          string `json:"remaining,omitempty"`
}

func (h *handler) handleLoan(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, notes, warnings, ok := h.calculate(w, r, "server.handleLoan")
	if !ok {
		return
	}

	report := output.NewReport(result, warnings)
	response := loanResponse{
		Report:   report,
		Display:  h.display(report),
		Charts:   buildCharts(report),
		Problems: notes,
		Duration: time.Since(start).String(),
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleScheduleCSV(w http.ResponseWriter, r *http.Request) {
	result, _, _, ok := h.calculate(w, r, "server.handleScheduleCSV")
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="amortization-schedule.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := output.CsvFormat(w, result.Entries); err != nil {
		h.logger.Error("failed to write CSV response",
			zap.String("op", "server.handleScheduleCSV"),
			zap.String("requestId", requestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}

// calculate parses the query and computes the schedule. It writes an error
// response and returns ok=false when the query cannot be interpreted.
func (h *handler) calculate(w http.ResponseWriter, r *http.Request, op string) (loans.Amortization, []string, []string, bool) {
	req, notes, err := parseLoanRequest(r.URL.Query())
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return loans.Amortization{}, nil, nil, false
	}

	logger := h.logger.With(zap.String("requestId", requestIDFromContext(r.Context())))

	result := loans.Amortization{Request: req, Entries: []loans.AmortizationEntry{}}
	var warnings []string
	if validation.Submitted(req) {
		result = loans.NewAmortizationScheduleGenerator(logger).GenerateSchedule(req)
		if result.Computed() {
			warnings = validation.ValidateRequest(req, h.bounds)
		}
	}
	h.metrics.observeCalculation(len(result.Entries), result.Computed())

	logger.Debug("loan calculated",
		zap.String("op", op),
		zap.Bool("computed", result.Computed()),
		zap.Int("months", len(result.Entries)),
		zap.Int("warnings", len(warnings)),
	)
	return result, notes, warnings, true
}

func (h *handler) display(report output.Report) *displaySummary {
	if !report.Computed {
		return nil
	}
	whole := h.style
	whole.Places = 0

	d := &displaySummary{
		LoanAmount:         whole.Currency(report.Request.Principal),
		MonthlyInstallment: whole.Currency(report.Summary.MonthlyInstallment),
		TotalInterest:      whole.Currency(report.Summary.TotalInterest),
		TotalPayment:       whole.Currency(report.Summary.TotalPayment),
	}
	if report.Request.CurrentMonth > 0 {
		d.Paid = whole.Currency(report.Paid.Paid)
		d.Remaining = whole.Currency(report.Paid.Remaining)
	}
	return d
}

type boundsResponse struct {
	Bounds   validation.Bounds `json:"bounds"`
	Defaults loanDefaults      `json:"defaults"`
	Steps    inputSteps        `json:"steps"`
	Currency format.Style      `json:"currency"`
}

type loanDefaults struct {
	Amount float64 `json:"amount"`
	Years  int     `json:"years"`
	Rate   float64 `json:"rate"`
}

type inputSteps struct {
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
}

func (h *handler) handleBounds(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, boundsResponse{
		Bounds: h.bounds,
		Defaults: loanDefaults{
			Amount: constants.DefaultLoanAmount,
			Years:  constants.DefaultTenureYears,
			Rate:   constants.DefaultInterestRate,
		},
		Steps: inputSteps{
			Amount: constants.LoanAmountStep,
			Rate:   constants.InterestRateStep,
		},
		Currency: h.style,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Warn("loan request rejected",
		zap.String("op", op),
		zap.String("requestId", requestIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
