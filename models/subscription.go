package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency defines the set of billing currencies the extractors recognize.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
)

// BillingFrequency defines the set of recognized billing cycles.
type BillingFrequency string

const (
	FrequencyMonthly   BillingFrequency = "Monthly"
	FrequencyAnnual    BillingFrequency = "Annual"
	FrequencyQuarterly BillingFrequency = "Quarterly"
	FrequencyWeekly    BillingFrequency = "Weekly"
	FrequencyUnknown   BillingFrequency = "Unknown"
)

// Category defines the set of service categories a subscription can be
// classified into.
type Category string

const (
	CategoryStreaming    Category = "Streaming"
	CategoryProductivity Category = "Productivity"
	CategoryGaming       Category = "Gaming"
	CategoryFitness      Category = "Fitness"
	CategoryNews         Category = "News"
	CategoryShopping     Category = "Shopping"
	CategorySecurity     Category = "Security"
	CategoryCloud        Category = "Cloud"
	CategoryOther        Category = "Other"
)

// UnknownServiceName is the sentinel service identity for messages whose
// sender cannot be attributed to any service.
const UnknownServiceName = "Unknown Service"

// ActiveWindow is how recently a service must have emailed for its
// subscription to count as active. The boundary is inclusive.
const ActiveWindow = 60 * 24 * time.Hour

// Subscription is one inferred subscription: exactly one record exists
// per distinct service identity per scan. Amount and MonthlyCost are nil
// when no charge could be extracted; MonthlyCost is nil iff Amount is.
type Subscription struct {
	ServiceName      string           `json:"service_name"`
	Category         Category         `json:"category"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Currency         Currency         `json:"currency"`
	BillingFrequency BillingFrequency `json:"billing_frequency"`
	MonthlyCost      *decimal.Decimal `json:"monthly_cost,omitempty"`
	LastMessageDate  time.Time        `json:"last_message_date"`
	IsActive         bool             `json:"is_active"`
	IsFreeTrial      bool             `json:"is_free_trial"`
	TrialEndDate     *time.Time       `json:"trial_end_date,omitempty"`
	MessageCount     int              `json:"message_count"`
	RepresentativeID string           `json:"representative_message_id"`
}

// ActiveAt reports whether the subscription counts as active at the given
// instant: the newest attributed message is at most 60 days old.
func (s Subscription) ActiveAt(now time.Time) bool {
	return now.Sub(s.LastMessageDate) <= ActiveWindow
}
