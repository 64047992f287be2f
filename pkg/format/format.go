// Package format renders amounts the way Indian shoppers read them: rupees with
// lakh/crore grouping (12,34,567) and decimals rounded half away from zero.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes every formatted INR amount.
const RupeeSymbol = "₹"

// Invalid is rendered in place of NaN or infinite values.
const Invalid = "-"

// INR renders amount as whole rupees with the rupee symbol, e.g. ₹12,34,567.
func INR(amount float64) string {
	return render(amount, 0, RupeeSymbol)
}

// INRAmount renders amount as whole rupees without the symbol, e.g. 12,34,567.
func INRAmount(amount float64) string {
	return render(amount, 0, "")
}

// Number renders v with exactly decimals fractional digits and en-IN grouping.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return render(v, decimals, "")
}

// Round rounds v half away from zero to decimals places.
func Round(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
}

// ParseINR extracts a number from text like "₹1,23,456.50". Everything except
// digits, '.' and '-' is discarded.
func ParseINR(text string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, text)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func render(v float64, decimals int, symbol string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid
	}
	d := decimal.NewFromFloat(v).Round(int32(decimals))
	neg := d.Sign() < 0
	s := d.Abs().StringFixed(int32(decimals))

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupIndian(intPart))
	if decimals > 0 {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// groupIndian groups the last three digits and then every two digits before
// them.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
