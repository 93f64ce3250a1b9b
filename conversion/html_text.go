// Package conversion renders HTML-only message bodies as plain text so
// the extraction pipeline always operates on text.
package conversion

import (
	"log"

	"github.com/jaytaylor/html2text"
	"github.com/microcosm-cc/bluemonday"
)

// HTMLTextConverter sanitizes message HTML and converts it to plain text.
type HTMLTextConverter struct {
	sanitizePolicy *bluemonday.Policy
	stripPolicy    *bluemonday.Policy
}

// NewHTMLTextConverter creates a converter with the standard policies:
// UGC sanitization before conversion, tag stripping as the fallback.
func NewHTMLTextConverter() *HTMLTextConverter {
	return &HTMLTextConverter{
		sanitizePolicy: bluemonday.UGCPolicy(),
		stripPolicy:    bluemonday.StripTagsPolicy(),
	}
}

// ToText sanitizes raw markup and renders it as readable plain text,
// keeping link targets since billing mail often hides amounts and dates
// inside anchor text. If conversion fails the sanitized HTML is stripped
// of tags instead, so the caller always gets usable text back.
func (c *HTMLTextConverter) ToText(rawHTML string) string {
	if rawHTML == "" {
		return ""
	}

	cleaned := c.sanitizePolicy.Sanitize(rawHTML)
	if cleaned == "" {
		log.Printf("WARN (HTMLTextConverter): sanitization emptied a non-empty HTML body.")
		return ""
	}

	text, err := html2text.FromString(cleaned)
	if err != nil {
		log.Printf("WARN (HTMLTextConverter): html2text conversion failed: %v. Falling back to tag stripping.", err)
		return c.stripPolicy.Sanitize(cleaned)
	}
	return text
}
