package analysis

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

// Averaging constants for non-monthly cycles: 4.33 weeks and 30.42 days
// per month. These are deliberate flat approximations, not calendar
// math; changing them to calendar-exact values would change every
// downstream total.
var (
	weeksPerMonth = decimal.NewFromFloat(4.33)
	daysPerMonth  = decimal.NewFromFloat(30.42)
	twelve        = decimal.NewFromInt(12)
	three         = decimal.NewFromInt(3)
)

// MonthlyCost normalizes a billing amount to its monthly equivalent.
// The frequency is matched by case-insensitive substring; anything
// unrecognized, including an empty frequency, passes the amount through
// unchanged.
func MonthlyCost(amount decimal.Decimal, frequency models.BillingFrequency) decimal.Decimal {
	f := strings.ToLower(string(frequency))
	switch {
	case strings.Contains(f, "annual"), strings.Contains(f, "yearly"):
		return amount.Div(twelve)
	case strings.Contains(f, "quarterly"):
		return amount.Div(three)
	case strings.Contains(f, "weekly"):
		return amount.Mul(weeksPerMonth)
	case strings.Contains(f, "daily"):
		return amount.Mul(daysPerMonth)
	default:
		return amount
	}
}
