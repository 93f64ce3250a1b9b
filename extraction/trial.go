package extraction

import (
	"regexp"
	"time"
)

// trialPhrases flag a message as free-trial related.
var trialPhrases = compileAll(
	`free trial`,
	`trial period`,
	`trial ends`,
	`trial will end`,
	`trial expir`,
)

// trialDatePatterns locate a trial end date, tried in order: month-name
// long form, numeric slash/dash form, "until <date>", "expires <date>".
var trialDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)trial\s+(?:will\s+)?end(?:s|ing)?\s+on\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
	regexp.MustCompile(`(?i)trial\s+(?:will\s+)?end(?:s|ing)?\s+(?:on\s+)?(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)until\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
	regexp.MustCompile(`(?i)expires\s+(?:on\s+)?([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})`),
}

// trialDateLayouts are tried in fixed order; the first successful parse
// wins. Month-day forms come before day-month forms, so ambiguous numeric
// dates resolve as US-style.
var trialDateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"1/2/2006",
	"1-2-2006",
	"2/1/2006",
	"2-1-2006",
}

// DetectFreeTrial reports whether text reads like a free-trial notice
// and, when one can be parsed, the trial end date. A detected trial whose
// date cannot be located or parsed yields (true, nil); that is a normal
// outcome, not an error.
func DetectFreeTrial(text string) (bool, *time.Time) {
	trial := false
	for _, phrase := range trialPhrases {
		if phrase.MatchString(text) {
			trial = true
			break
		}
	}
	if !trial {
		return false, nil
	}

	for _, pattern := range trialDatePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, layout := range trialDateLayouts {
			if t, err := time.Parse(layout, m[1]); err == nil {
				return true, &t
			}
		}
	}
	return true, nil
}
