package gmailscan

import (
	"encoding/base64"
	"strings"

	gmailv1 "google.golang.org/api/gmail/v1"

	"github.com/coreybb/subscan/conversion"
	"github.com/coreybb/subscan/models"
)

// ContentExtractor flattens Gmail API message objects into EmailMessage
// records: headers, epoch timestamp, and a plain-text body.
type ContentExtractor struct {
	converter *conversion.HTMLTextConverter
}

// NewContentExtractor creates a ContentExtractor using the given
// HTML-to-text converter for HTML-only mail.
func NewContentExtractor(converter *conversion.HTMLTextConverter) *ContentExtractor {
	return &ContentExtractor{converter: converter}
}

// FromGmail extracts the fields the pipeline needs from a full-format
// Gmail message. When a message carries only an HTML body it is rendered
// to text so the extractors always see plain text.
func (ce *ContentExtractor) FromGmail(msg *gmailv1.Message) models.EmailMessage {
	out := models.EmailMessage{
		ID:        msg.Id,
		ThreadID:  msg.ThreadId,
		Timestamp: msg.InternalDate / 1000, // Gmail reports milliseconds
	}
	if msg.Payload == nil {
		return out
	}

	for _, h := range msg.Payload.Headers {
		switch strings.ToLower(h.Name) {
		case "from":
			out.From = h.Value
		case "to":
			out.To = h.Value
		case "subject":
			out.Subject = h.Value
		}
	}

	out.BodyText, out.BodyHTML = bodyParts(msg.Payload)
	if out.BodyText == "" && out.BodyHTML != "" {
		out.BodyText = ce.converter.ToText(out.BodyHTML)
	}
	return out
}

// bodyParts walks the MIME part tree and returns the first text/plain and
// text/html bodies found, base64url decoded.
func bodyParts(part *gmailv1.MessagePart) (text, html string) {
	if part == nil {
		return "", ""
	}

	mime := strings.ToLower(part.MimeType)
	if part.Body != nil && part.Body.Data != "" {
		switch mime {
		case "text/plain":
			return decodeBase64URL(part.Body.Data), ""
		case "text/html":
			return "", decodeBase64URL(part.Body.Data)
		}
	}

	for _, sub := range part.Parts {
		subText, subHTML := bodyParts(sub)
		if text == "" {
			text = subText
		}
		if html == "" {
			html = subHTML
		}
		if text != "" && html != "" {
			break
		}
	}
	return text, html
}

func decodeBase64URL(data string) string {
	b, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		// Gmail uses unpadded base64url.
		b, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return ""
		}
	}
	return string(b)
}
