package analysis

import (
	"strings"

	"github.com/coreybb/subscan/models"
)

// webmailDomains are generic consumer mail providers whose domain never
// identifies a subscription service.
var webmailDomains = map[string]bool{
	"gmail":   true,
	"yahoo":   true,
	"hotmail": true,
	"outlook": true,
	"mail":    true,
}

// knownProviders are subscription services commonly seen in billing mail.
// The list feeds both inbox search queries and subject-line matching when
// the sender domain is inconclusive.
var knownProviders = []string{
	"netflix.com", "spotify.com", "adobe.com", "dropbox.com",
	"amazon.com", "apple.com", "microsoft.com", "google.com",
	"hulu.com", "disney.com", "hbo.com", "github.com",
	"notion.so", "canva.com", "grammarly.com", "zoom.us",
}

// KnownProviders returns a copy of the provider domain list.
func KnownProviders() []string {
	out := make([]string, len(knownProviders))
	copy(out, knownProviders)
	return out
}

// ServiceIdentity infers which service a message belongs to. Resolution
// order: sender address domain (webmail providers excluded), a known
// provider named in the subject, the first token of the sender display
// name, then the sentinel identity. The result is the grouping key for
// the whole scan, so it must be stable across case variations of the
// same sender.
func ServiceIdentity(msg models.EmailMessage) string {
	from := msg.From

	if strings.Contains(from, "@") {
		domain := from[strings.LastIndex(from, "@")+1:]
		if end := strings.Index(domain, ">"); end >= 0 {
			domain = domain[:end]
		}
		company := strings.ToLower(strings.SplitN(domain, ".", 2)[0])
		if company != "" && !webmailDomains[company] {
			return titleCase(company)
		}
	}

	subjectLower := strings.ToLower(msg.Subject)
	for _, provider := range knownProviders {
		name := strings.SplitN(provider, ".", 2)[0]
		if strings.Contains(subjectLower, name) {
			return titleCase(name)
		}
	}

	if from != "" {
		token := strings.SplitN(from, " ", 2)[0]
		token = strings.NewReplacer(`"`, "", "<", "").Replace(token)
		if token != "" {
			return titleCase(token)
		}
	}

	return models.UnknownServiceName
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
