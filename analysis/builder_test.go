package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/extraction"
	"github.com/coreybb/subscan/models"
)

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func TestBuildGroupsByServiceIdentity(t *testing.T) {
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	builder := NewBuilderAt(fixedClock(now))

	older := now.Add(-48 * time.Hour)
	newer := now.Add(-24 * time.Hour)

	messages := []models.EmailMessage{
		{
			ID:        "m1",
			From:      "billing@netflix.com",
			Subject:   "Payment received",
			BodyText:  "You were charged $15.49 for your monthly subscription.",
			Timestamp: older.Unix(),
		},
		{
			ID:        "m2",
			From:      "info@NETFLIX.COM",
			Subject:   "Payment received",
			BodyText:  "You were charged $15.49 for your monthly subscription.",
			Timestamp: newer.Unix(),
		},
		{
			ID:        "m3",
			From:      "no-reply@spotify.com",
			Subject:   "Receipt",
			BodyText:  "Spotify Premium: $10.99/month",
			Timestamp: older.Unix(),
		},
	}

	records := builder.Build(messages)
	if len(records) != 2 {
		t.Fatalf("Build returned %d records, want 2", len(records))
	}

	netflix := records[0]
	if netflix.ServiceName != "Netflix" {
		t.Fatalf("first record service = %q, want Netflix", netflix.ServiceName)
	}
	if netflix.MessageCount != 2 {
		t.Errorf("Netflix message count = %d, want 2", netflix.MessageCount)
	}
	if netflix.RepresentativeID != "m2" {
		t.Errorf("Netflix representative = %q, want m2 (newest)", netflix.RepresentativeID)
	}
	if netflix.Amount == nil || !netflix.Amount.Equal(decimal.RequireFromString("15.49")) {
		t.Errorf("Netflix amount = %v, want 15.49", netflix.Amount)
	}
	if netflix.BillingFrequency != models.FrequencyMonthly {
		t.Errorf("Netflix frequency = %s, want Monthly", netflix.BillingFrequency)
	}
	if netflix.Category != models.CategoryStreaming {
		t.Errorf("Netflix category = %s, want Streaming", netflix.Category)
	}
	if !netflix.IsActive {
		t.Error("Netflix should be active: newest message is a day old")
	}
	if !netflix.LastMessageDate.Equal(newer) {
		t.Errorf("Netflix last message date = %v, want %v", netflix.LastMessageDate, newer)
	}

	if records[1].ServiceName != "Spotify" {
		t.Errorf("second record service = %q, want Spotify", records[1].ServiceName)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	builder := NewBuilder()
	records := builder.Build(nil)
	if records == nil {
		t.Fatal("Build(nil) returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Fatalf("Build(nil) returned %d records, want 0", len(records))
	}
}

func TestBuildBodylessMessage(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	builder := NewBuilderAt(fixedClock(now))

	records := builder.Build([]models.EmailMessage{
		{
			ID:        "m1",
			From:      "billing@netflix.com",
			Timestamp: now.Add(-time.Hour).Unix(),
		},
	})
	if len(records) != 1 {
		t.Fatalf("Build returned %d records, want 1", len(records))
	}

	record := records[0]
	if record.Amount != nil {
		t.Errorf("amount = %v, want nil for empty body", record.Amount)
	}
	if record.MonthlyCost != nil {
		t.Errorf("monthly cost = %v, want nil for empty body", record.MonthlyCost)
	}
	if record.BillingFrequency != models.FrequencyUnknown {
		t.Errorf("frequency = %s, want Unknown", record.BillingFrequency)
	}
	if record.Currency != models.CurrencyUSD {
		t.Errorf("currency = %s, want default USD", record.Currency)
	}
}

func TestBuildInactiveWhenStale(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	builder := NewBuilderAt(fixedClock(now))

	records := builder.Build([]models.EmailMessage{
		{
			ID:        "m1",
			From:      "billing@netflix.com",
			BodyText:  "monthly charge $15.49",
			Timestamp: now.Add(-90 * 24 * time.Hour).Unix(),
		},
	})
	if records[0].IsActive {
		t.Error("record should be inactive: newest message is 90 days old")
	}
}

func TestSelectAmountMostCommonWins(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	builder := NewBuilderAt(fixedClock(now))

	// 10.99 appears twice (symbol and code form), 99.99 once.
	records := builder.Build([]models.EmailMessage{
		{
			ID:        "m1",
			From:      "billing@adobe.com",
			BodyText:  "Plan: $10.99 USD per month. Annual value 99.99 USD.",
			Timestamp: now.Add(-time.Hour).Unix(),
		},
	})
	if records[0].Amount == nil || !records[0].Amount.Equal(decimal.RequireFromString("10.99")) {
		t.Errorf("amount = %v, want most common 10.99", records[0].Amount)
	}
}

func TestSelectAmountTieBreaksOnFirstSeen(t *testing.T) {
	got, currency, ok := selectAmount([]extraction.AmountMatch{
		{Amount: decimal.RequireFromString("5.00"), Currency: models.CurrencyGBP},
		{Amount: decimal.RequireFromString("7.00"), Currency: models.CurrencyUSD},
	})
	if !ok {
		t.Fatal("selectAmount returned ok=false for non-empty input")
	}
	if !got.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("amount = %s, want first-seen 5.00 on tie", got)
	}
	if currency != models.CurrencyGBP {
		t.Errorf("currency = %s, want GBP from the selected pair", currency)
	}
}

func TestSelectAmountEmpty(t *testing.T) {
	if _, _, ok := selectAmount(nil); ok {
		t.Error("selectAmount(nil) returned ok=true, want false")
	}
}
