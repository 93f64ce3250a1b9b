package extraction

import (
	"regexp"

	"github.com/coreybb/subscan/models"
)

// frequencyGroups are checked in fixed order and the first group with any
// matching pattern wins. Text mentioning both annual and monthly terms
// therefore resolves to Monthly. That ordering is load-bearing: callers
// depend on it, so do not reorder the groups.
var frequencyGroups = []struct {
	frequency models.BillingFrequency
	patterns  []*regexp.Regexp
}{
	{models.FrequencyMonthly, compileAll(
		`monthly(?:\s+subscription)?`,
		`per month`,
		`each month`,
		`every month`,
		`/month`,
		`month-to-month`,
	)},
	{models.FrequencyAnnual, compileAll(
		`annual(?:\s+subscription)?`,
		`yearly(?:\s+subscription)?`,
		`per year`,
		`each year`,
		`every year`,
		`/year`,
		`12-month`,
	)},
	{models.FrequencyQuarterly, compileAll(
		`quarterly(?:\s+subscription)?`,
		`per quarter`,
		`every quarter`,
		`3-month`,
		`three-month`,
	)},
	{models.FrequencyWeekly, compileAll(
		`weekly(?:\s+subscription)?`,
		`per week`,
		`each week`,
		`every week`,
		`/week`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return compiled
}

// BillingFrequency returns the billing cycle named in text. The second
// return is false when no pattern in any group matches.
func BillingFrequency(text string) (models.BillingFrequency, bool) {
	for _, group := range frequencyGroups {
		for _, pattern := range group.patterns {
			if pattern.MatchString(text) {
				return group.frequency, true
			}
		}
	}
	return models.FrequencyUnknown, false
}
