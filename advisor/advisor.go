// Package advisor annotates subscription emails with a short model-written
// assessment of what the charge is and whether it looks worth keeping.
package advisor

import (
	"context"
	"fmt"
	"log"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/coreybb/subscan/models"
)

const (
	// maxContentLength caps how much of the email body is sent per request.
	maxContentLength = 5000
	maxTokens        = 1024
)

const systemPrompt = "You are a subscription audit assistant. Given a single " +
	"email about a paid service, identify the service, what the charge " +
	"appears to be for, and flag anything the account owner should review: " +
	"price increases, trial conversions, duplicate services, or charges for " +
	"services that look unused. Answer in two or three sentences."

// Advisor wraps the Anthropic Messages API.
type Advisor struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAdvisor creates an Advisor. The API key is read from the
// ANTHROPIC_API_KEY environment variable by the underlying client.
func NewAdvisor() *Advisor {
	return &Advisor{
		client: anthropic.NewClient(),
		model:  anthropic.ModelClaudeSonnet4_0,
	}
}

// Annotate asks the model to assess a single message and stores the result
// on the message. Callers may treat a returned error as skippable: the scan
// is still valid without annotations.
func (a *Advisor) Annotate(ctx context.Context, msg *models.EmailMessage) error {
	body := msg.BodyText
	if len(body) > maxContentLength {
		body = body[:maxContentLength]
	}
	content := fmt.Sprintf("From: %s\nSubject: %s\n\n%s", msg.From, msg.Subject, body)

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(content)),
		},
	})
	if err != nil {
		return fmt.Errorf("annotate message %s: %w", msg.ID, err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			msg.Analysis = block.Text
			return nil
		}
	}
	log.Printf("WARN (Advisor): no text block in response for message %s", msg.ID)
	return nil
}
