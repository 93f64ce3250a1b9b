package models

import "time"

// EmailMessage is one raw message handed to the analysis pipeline by a
// mail source (Gmail API, local .eml files, or an HTTP client posting a
// scan). It is populated once at fetch time and never mutated by the
// pipeline.
type EmailMessage struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id,omitempty"`
	From      string `json:"from"`
	To        string `json:"to,omitempty"`
	Subject   string `json:"subject"`
	BodyText  string `json:"body_text"`
	BodyHTML  string `json:"body_html,omitempty"`
	Timestamp int64  `json:"timestamp"` // seconds since epoch

	// Analysis holds an optional advisory annotation from the LLM
	// advisor. The pipeline tolerates its absence.
	Analysis string `json:"agent_analysis,omitempty"`
}

// Date returns the message timestamp as a UTC time.
func (m EmailMessage) Date() time.Time {
	return time.Unix(m.Timestamp, 0).UTC()
}
