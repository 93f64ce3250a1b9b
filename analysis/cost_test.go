package analysis

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

func TestMonthlyCost(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency models.BillingFrequency
		want      string
	}{
		{"monthly passes through", "9.99", models.FrequencyMonthly, "9.99"},
		{"annual divided by twelve", "120", models.FrequencyAnnual, "10"},
		{"quarterly divided by three", "30", models.FrequencyQuarterly, "10"},
		{"weekly times 4.33", "30", models.FrequencyWeekly, "129.9"},
		{"daily times 30.42", "1", "daily", "30.42"},
		{"unknown passes through", "15", models.FrequencyUnknown, "15"},
		{"empty passes through", "15", "", "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			want := decimal.RequireFromString(tt.want)
			got := MonthlyCost(amount, tt.frequency)
			if !got.Equal(want) {
				t.Errorf("MonthlyCost(%s, %q) = %s, want %s", tt.amount, tt.frequency, got, tt.want)
			}
		})
	}
}
