package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

func TestFormatCurrency(t *testing.T) {
	amount := decimal.RequireFromString("15.49")

	tests := []struct {
		name     string
		amount   *decimal.Decimal
		currency models.Currency
		want     string
	}{
		{"usd", &amount, models.CurrencyUSD, "$15.49"},
		{"gbp", &amount, models.CurrencyGBP, "£15.49"},
		{"eur", &amount, models.CurrencyEUR, "€15.49"},
		{"nil amount", nil, models.CurrencyUSD, "N/A"},
		{"unknown currency falls back to dollar", &amount, models.Currency("XXX"), "$15.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatCurrency = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("15.49")
	monthly := decimal.RequireFromString("15.49")
	trialEnd := now.Add(5 * 24 * time.Hour)

	records := []models.Subscription{
		{
			ServiceName:      "Netflix",
			Category:         models.CategoryStreaming,
			Amount:           &amount,
			Currency:         models.CurrencyUSD,
			BillingFrequency: models.FrequencyMonthly,
			MonthlyCost:      &monthly,
			LastMessageDate:  now.Add(-10 * 24 * time.Hour),
			IsActive:         true,
		},
		{
			ServiceName:     "OldBox",
			Category:        models.CategoryProductivity,
			LastMessageDate: now.Add(-90 * 24 * time.Hour),
			IsActive:        false,
		},
	}
	summary := models.Summary{
		TotalSubscriptions:  2,
		ActiveSubscriptions: 1,
		TotalMonthlyCost:    monthly,
		AnnualProjection:    monthly.Mul(decimal.NewFromInt(12)),
		TrialsEndingSoon: []models.Subscription{
			{ServiceName: "SoonTrial", TrialEndDate: &trialEnd},
		},
		UnusedSubscriptions: []models.Subscription{
			{ServiceName: "QuietService", MonthlyCost: decPtr("5.00"), Currency: models.CurrencyUSD},
		},
	}

	var buf bytes.Buffer
	Render(&buf, records, summary)
	out := buf.String()

	for _, want := range []string{
		"2 services found, 1 active",
		"Netflix",
		"$15.49",
		"Monthly total:     $15.49",
		"Annual projection: $185.88",
		"QuietService",
		"SoonTrial",
		"Jul 06, 2025",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "OldBox") {
		t.Errorf("inactive service should not appear in the active table:\n%s", out)
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
