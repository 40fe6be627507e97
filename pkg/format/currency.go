// Package format renders amounts for display.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/emi-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// Style controls how currency amounts are rendered.
type Style struct {
	Symbol   string `json:"symbol"`
	Grouping string `json:"grouping"` // constants.GroupingIndian or constants.GroupingWestern
	Places   int32  `json:"places"`
}

// DefaultStyle matches the calculator UI: rupee symbol, lakh/crore grouping,
// whole units.
var DefaultStyle = Style{
	Symbol:   constants.DefaultCurrencySymbol,
	Grouping: constants.GroupingIndian,
	Places:   0,
}

// Currency returns a currency string with a symbol and separators (e.g., "-₹12,34,567").
func (s Style) Currency(amount float64) string {
	formatted := s.Numeric(amount)
	if strings.HasPrefix(formatted, "-") {
		return "-" + s.Symbol + formatted[1:]
	}
	return s.Symbol + formatted
}

// Numeric returns the grouped amount without a currency symbol (e.g., "-12,34,567.50").
func (s Style) Numeric(amount float64) string {
	fixed := Fixed(amount, s.Places)
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fixed
	}

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, decPart, hasDec := strings.Cut(fixed, ".")
	intPart = group(intPart, s.Grouping)
	if hasDec {
		return sign + intPart + "." + decPart
	}
	return sign + intPart
}

// Currency formats with DefaultStyle.
func Currency(amount float64) string {
	return DefaultStyle.Currency(amount)
}

// Fixed rounds half away from zero to the given number of decimal places and
// returns the plain string, like toFixed in a browser. Negative zero renders
// as "0"; NaN and infinities render as "NaN", "+Inf" and "-Inf".
func Fixed(amount float64, places int32) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	if places < 0 {
		places = 0
	}
	d := decimal.NewFromFloat(amount).Round(places)
	if d.IsZero() {
		d = decimal.Zero
	}
	return d.StringFixed(places)
}

// group inserts separators into a string of digits.
func group(digits, grouping string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	size := 3
	if grouping == constants.GroupingIndian {
		size = 2
	}

	var groups []string
	for len(head) > size {
		groups = append([]string{head[len(head)-size:]}, groups...)
		head = head[:len(head)-size]
	}
	groups = append([]string{head}, groups...)
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
