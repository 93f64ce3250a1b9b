// Package extraction pulls billing signals out of free-text message
// bodies: currency amounts, billing frequency, and free-trial language.
// All pattern tables are compiled once at startup and never mutated.
package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

// AmountMatch is one candidate (amount, currency) pair found in a text
// blob. The same charge can surface more than once when several patterns
// match it; that duplication is intentional raw signal, and picking a
// winner is the builder's job.
type AmountMatch struct {
	Amount   decimal.Decimal
	Currency models.Currency
}

// Three textual shapes: symbol-prefixed amount, amount-suffixed symbol,
// and amount followed by an ISO code or currency word. A comma is
// accepted as the decimal separator.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[$£€]\s*(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*[$£€]`),
	regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:USD|GBP|EUR|dollars|pounds|euros)`),
}

// Amounts scans text for currency amounts in USD, GBP, and EUR. Malformed
// numeric substrings are skipped silently; extraction never fails.
func Amounts(text string) []AmountMatch {
	var matches []AmountMatch
	for _, pattern := range amountPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			raw := strings.ReplaceAll(m[1], ",", ".")
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}
			matches = append(matches, AmountMatch{
				Amount:   amount,
				Currency: currencyOf(m[0]),
			})
		}
	}
	return matches
}

// currencyOf resolves the currency for a single match, checking symbol,
// ISO code, and word forms in USD, GBP, EUR order. Ambiguous matches
// default to USD.
func currencyOf(match string) models.Currency {
	lower := strings.ToLower(match)
	switch {
	case strings.Contains(match, "$"), strings.Contains(lower, "usd"), strings.Contains(lower, "dollars"):
		return models.CurrencyUSD
	case strings.Contains(match, "£"), strings.Contains(lower, "gbp"), strings.Contains(lower, "pounds"):
		return models.CurrencyGBP
	case strings.Contains(match, "€"), strings.Contains(lower, "eur"), strings.Contains(lower, "euros"):
		return models.CurrencyEUR
	default:
		return models.CurrencyUSD
	}
}
