package extraction

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

func TestAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []AmountMatch
	}{
		{
			name: "dollar prefix",
			text: "You were charged $12.50 today.",
			want: []AmountMatch{
				{decimal.RequireFromString("12.50"), models.CurrencyUSD},
			},
		},
		{
			name: "comma decimal separator",
			text: "Betrag: 9,99 €",
			want: []AmountMatch{
				{decimal.RequireFromString("9.99"), models.CurrencyEUR},
			},
		},
		{
			name: "pound prefix",
			text: "Your plan renews at £7.99.",
			want: []AmountMatch{
				{decimal.RequireFromString("7.99"), models.CurrencyGBP},
			},
		},
		{
			name: "currency word",
			text: "Total due: 15.00 dollars",
			want: []AmountMatch{
				{decimal.RequireFromString("15.00"), models.CurrencyUSD},
			},
		},
		{
			name: "symbol and code both match the same charge",
			text: "Receipt for $10.99 USD",
			want: []AmountMatch{
				{decimal.RequireFromString("10.99"), models.CurrencyUSD},
				{decimal.RequireFromString("10.99"), models.CurrencyUSD},
			},
		},
		{
			name: "whole number without decimals",
			text: "Invoice total $120",
			want: []AmountMatch{
				{decimal.RequireFromString("120"), models.CurrencyUSD},
			},
		},
		{
			name: "no amounts",
			text: "Thanks for signing up!",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amounts(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Amounts(%q) returned %d matches, want %d: %v", tt.text, len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Amount.Equal(tt.want[i].Amount) {
					t.Errorf("match %d amount = %s, want %s", i, got[i].Amount, tt.want[i].Amount)
				}
				if got[i].Currency != tt.want[i].Currency {
					t.Errorf("match %d currency = %s, want %s", i, got[i].Currency, tt.want[i].Currency)
				}
			}
		})
	}
}

func TestCurrencyOfDefaultsToUSD(t *testing.T) {
	if got := currencyOf("12.50"); got != models.CurrencyUSD {
		t.Errorf("currencyOf with no currency marker = %s, want USD", got)
	}
}
