// Package analysis turns raw messages into subscription records and
// rolls those records up into a cost summary. Everything here is a pure
// in-memory transformation: no network, no storage, no shared state
// between scans.
package analysis

import (
	"strings"

	"github.com/coreybb/subscan/models"
)

// categoryKeywords drives classification. The table is a slice rather
// than a map because order matters: the first category whose keyword list
// hits wins.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryStreaming, []string{
		"netflix", "hulu", "disney", "spotify", "apple music", "youtube",
		"hbo", "prime video", "paramount", "peacock", "crunchyroll",
		"dazn", "fubo", "sling", "tidal",
	}},
	{models.CategoryProductivity, []string{
		"microsoft", "office", "google", "workspace", "dropbox", "box",
		"evernote", "notion", "airtable", "asana", "trello", "slack",
		"zoom", "adobe", "canva", "grammarly",
	}},
	{models.CategoryGaming, []string{
		"xbox", "playstation", "nintendo", "steam", "epic games", "ea play",
		"ubisoft", "game pass", "ps plus", "nintendo online",
	}},
	{models.CategoryFitness, []string{
		"peloton", "fitbit", "strava", "myfitnesspal", "beachbody", "classpass",
		"fitness", "gym", "workout",
	}},
	{models.CategoryNews, []string{
		"nyt", "new york times", "wsj", "wall street journal", "washington post",
		"economist", "financial times", "bloomberg", "medium", "substack",
	}},
	{models.CategoryShopping, []string{
		"amazon", "walmart", "instacart", "doordash", "uber eats", "grubhub",
		"hello fresh", "blue apron", "prime", "costco",
	}},
	{models.CategorySecurity, []string{
		"norton", "mcafee", "avast", "avg", "kaspersky", "bitdefender",
		"vpn", "password", "lastpass", "1password", "dashlane",
	}},
	{models.CategoryCloud, []string{
		"aws", "amazon web", "azure", "google cloud", "digitalocean", "linode",
		"vultr", "heroku", "netlify", "vercel",
	}},
}

// Categorize maps a service to a category by keyword membership. The
// service name is checked first; only when it yields nothing is the
// message body consulted. No hit in either means Other.
func Categorize(serviceName, body string) models.Category {
	if category, ok := matchCategory(strings.ToLower(serviceName)); ok {
		return category
	}
	if category, ok := matchCategory(strings.ToLower(body)); ok {
		return category
	}
	return models.CategoryOther
}

func matchCategory(lower string) (models.Category, bool) {
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category, true
			}
		}
	}
	return models.CategoryOther, false
}
