package analysis

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

// trialWindowDays is how far ahead a trial end date may lie to count as
// "ending soon".
const trialWindowDays = 14

// Summarize computes a fresh report over the full record list. Nothing is
// cached between calls: the trial and staleness windows shift with now,
// so every invocation recomputes from scratch.
//
// Active membership uses each record's build-time IsActive flag while the
// trial and unused windows use the now argument. The unused list can
// therefore only be non-empty when time has passed between building the
// records and summarizing them, which is exactly the "subscription went
// quiet" signal it exists to surface.
func Summarize(records []models.Subscription, now time.Time) models.Summary {
	summary := models.Summary{
		TotalSubscriptions:  len(records),
		TotalMonthlyCost:    decimal.Zero,
		AnnualProjection:    decimal.Zero,
		Categories:          make(map[models.Category]models.CategoryTotal),
		TrialsEndingSoon:    []models.Subscription{},
		UnusedSubscriptions: []models.Subscription{},
	}

	for _, record := range records {
		if !record.IsActive {
			continue
		}
		summary.ActiveSubscriptions++

		cost := decimal.Zero
		if record.MonthlyCost != nil {
			cost = *record.MonthlyCost
		}
		summary.TotalMonthlyCost = summary.TotalMonthlyCost.Add(cost)

		total := summary.Categories[record.Category]
		total.Count++
		total.MonthlyCost = total.MonthlyCost.Add(cost)
		summary.Categories[record.Category] = total

		if now.Sub(record.LastMessageDate) > models.ActiveWindow {
			summary.UnusedSubscriptions = append(summary.UnusedSubscriptions, record)
		}
	}

	for _, record := range records {
		if !record.IsFreeTrial || record.TrialEndDate == nil {
			continue
		}
		if !record.TrialEndDate.After(now) {
			continue
		}
		if wholeDays(record.TrialEndDate.Sub(now)) <= trialWindowDays {
			summary.TrialsEndingSoon = append(summary.TrialsEndingSoon, record)
		}
	}

	summary.AnnualProjection = summary.TotalMonthlyCost.Mul(twelve)
	return summary
}

// wholeDays floors a duration to complete 24-hour days.
func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
