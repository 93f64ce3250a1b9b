package models

import "github.com/shopspring/decimal"

// CategoryTotal is the per-category rollup inside a Summary.
type CategoryTotal struct {
	Count       int             `json:"count"`
	MonthlyCost decimal.Decimal `json:"monthly_cost"`
}

// Summary is the derived cost report over one scan's subscription
// records. It has no persisted identity: it is recomputed from scratch on
// demand because the active, trial, and staleness windows all shift with
// the evaluation instant.
type Summary struct {
	TotalSubscriptions  int                        `json:"total_subscriptions"`
	ActiveSubscriptions int                        `json:"active_subscriptions"`
	TotalMonthlyCost    decimal.Decimal            `json:"total_monthly_cost"`
	AnnualProjection    decimal.Decimal            `json:"annual_projection"`
	Categories          map[Category]CategoryTotal `json:"categories"`
	TrialsEndingSoon    []Subscription             `json:"trials_ending_soon"`
	UnusedSubscriptions []Subscription             `json:"unused_subscriptions"`
}
