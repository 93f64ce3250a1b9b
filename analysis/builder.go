package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/extraction"
	"github.com/coreybb/subscan/models"
)

// Builder transforms a scan's raw messages into one subscription record
// per inferred service. The extractors, classifier, and normalizer it
// drives are all pure functions; the only stateful collaborator is the
// clock, injectable so scans are reproducible under test.
type Builder struct {
	now func() time.Time
}

// NewBuilder creates a Builder that evaluates freshness against the wall
// clock.
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// NewBuilderAt creates a Builder with a pinned clock.
func NewBuilderAt(now func() time.Time) *Builder {
	return &Builder{now: now}
}

// Build groups messages by service identity and assembles one record per
// group from the group's newest message. A message with an empty or
// unparseable body still produces a record for its service, just with nil
// amount and Unknown frequency; no service identity is ever dropped.
func (b *Builder) Build(messages []models.EmailMessage) []models.Subscription {
	type group struct {
		name     string
		messages []models.EmailMessage
	}

	index := make(map[string]*group)
	var order []*group
	for _, msg := range messages {
		name := ServiceIdentity(msg)
		g, ok := index[name]
		if !ok {
			g = &group{name: name}
			index[name] = g
			order = append(order, g)
		}
		g.messages = append(g.messages, msg)
	}

	now := b.now()
	records := make([]models.Subscription, 0, len(order))
	for _, g := range order {
		records = append(records, buildRecord(g.name, g.messages, now))
	}
	return records
}

// buildRecord derives a subscription from one service's messages. All
// field extraction runs against the representative message: the newest in
// the group, ties broken by first encounter.
func buildRecord(name string, msgs []models.EmailMessage, now time.Time) models.Subscription {
	latest := msgs[0]
	for _, m := range msgs[1:] {
		if m.Timestamp > latest.Timestamp {
			latest = m
		}
	}
	body := latest.BodyText

	record := models.Subscription{
		ServiceName:      name,
		Currency:         models.CurrencyUSD,
		BillingFrequency: models.FrequencyUnknown,
		LastMessageDate:  latest.Date(),
		MessageCount:     len(msgs),
		RepresentativeID: latest.ID,
	}

	if frequency, ok := extraction.BillingFrequency(body); ok {
		record.BillingFrequency = frequency
	}

	if amount, currency, ok := selectAmount(extraction.Amounts(body)); ok {
		record.Amount = &amount
		record.Currency = currency
		cost := MonthlyCost(amount, record.BillingFrequency)
		record.MonthlyCost = &cost
	}

	record.Category = Categorize(name, body)
	record.IsFreeTrial, record.TrialEndDate = extraction.DetectFreeTrial(body)
	record.IsActive = record.ActiveAt(now)
	return record
}

// selectAmount picks the subscription charge from the extractor's raw
// candidates: the amount value with the highest occurrence count, ties
// broken by first appearance in extraction order. The currency comes from
// the first pair carrying the selected amount.
func selectAmount(matches []extraction.AmountMatch) (decimal.Decimal, models.Currency, bool) {
	if len(matches) == 0 {
		return decimal.Decimal{}, models.CurrencyUSD, false
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, m := range matches {
		key := m.Amount.String()
		if _, ok := counts[key]; !ok {
			firstSeen = append(firstSeen, key)
		}
		counts[key]++
	}

	selected := firstSeen[0]
	for _, key := range firstSeen[1:] {
		if counts[key] > counts[selected] {
			selected = key
		}
	}

	for _, m := range matches {
		if m.Amount.String() == selected {
			return m.Amount, m.Currency, true
		}
	}
	return decimal.Decimal{}, models.CurrencyUSD, false
}
