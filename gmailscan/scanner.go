package gmailscan

import (
	"context"
	"fmt"
	"log"
	"time"

	gmailv1 "google.golang.org/api/gmail/v1"

	"github.com/coreybb/subscan/analysis"
	"github.com/coreybb/subscan/conversion"
	"github.com/coreybb/subscan/models"
)

// subscriptionQueries are the inbox searches that surface recurring
// billing mail. Each is combined with a date-range clause at scan time.
var subscriptionQueries = []string{
	`subject:"subscription confirmation"`,
	`subject:"your subscription"`,
	`subject:"payment receipt"`,
	`subject:"recurring payment"`,
	`from:(stripe.com OR paypal.com OR square.com)`,
	`"monthly subscription" OR "annual subscription"`,
	`"free trial" OR "trial ends" OR "trial period"`,
	`subject:"invoice" AND ("monthly" OR "annually")`,
}

// Scanner searches a Gmail inbox for subscription-related messages.
type Scanner struct {
	service *gmailv1.Service
	content *ContentExtractor
}

// NewScanner creates a Scanner over an authenticated Gmail service.
func NewScanner(service *gmailv1.Service) *Scanner {
	return &Scanner{
		service: service,
		content: NewContentExtractor(conversion.NewHTMLTextConverter()),
	}
}

// Scan runs every subscription query plus one query per known provider
// over the trailing daysBack window and returns the matching messages,
// deduplicated by message ID. A failing query is logged and skipped so a
// single bad search never sinks the whole scan.
func (s *Scanner) Scan(ctx context.Context, daysBack int, maxResults int64) ([]models.EmailMessage, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)
	dateRange := fmt.Sprintf("after:%s before:%s",
		start.Format("2006/01/02"), end.Format("2006/01/02"))

	providers := analysis.KnownProviders()
	queries := make([]string, 0, len(subscriptionQueries)+len(providers))
	for _, q := range subscriptionQueries {
		queries = append(queries, q+" "+dateRange)
	}
	for _, provider := range providers {
		queries = append(queries, fmt.Sprintf("from:(%s) %s", provider, dateRange))
	}

	seen := make(map[string]bool)
	var messages []models.EmailMessage
	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return messages, err
		}
		results, err := s.search(ctx, query, maxResults)
		if err != nil {
			log.Printf("WARN (Scanner): query %q failed: %v", query, err)
			continue
		}
		for _, msg := range results {
			if seen[msg.ID] {
				continue
			}
			seen[msg.ID] = true
			messages = append(messages, msg)
		}
	}

	log.Printf("INFO (Scanner): found %d unique subscription-related messages across %d queries",
		len(messages), len(queries))
	return messages, nil
}

// search lists message IDs matching the query and fetches each full
// message. Individual fetch failures are logged and skipped.
func (s *Scanner) search(ctx context.Context, query string, maxResults int64) ([]models.EmailMessage, error) {
	resp, err := s.service.Users.Messages.List("me").
		Q(query).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]models.EmailMessage, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		full, err := s.service.Users.Messages.Get("me", ref.Id).
			Format("full").
			Context(ctx).
			Do()
		if err != nil {
			log.Printf("WARN (Scanner): fetch message %s: %v", ref.Id, err)
			continue
		}
		messages = append(messages, s.content.FromGmail(full))
	}
	return messages, nil
}
