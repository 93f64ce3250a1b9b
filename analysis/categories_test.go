package analysis

import (
	"testing"

	"github.com/coreybb/subscan/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		body        string
		want        models.Category
	}{
		{"streaming by name", "Netflix", "", models.CategoryStreaming},
		{"name match is case insensitive", "NETFLIX Inc", "", models.CategoryStreaming},
		{"productivity by name", "Dropbox", "", models.CategoryProductivity},
		{"gaming by name", "Playstation", "", models.CategoryGaming},
		{"body consulted when name misses", "Acme Billing", "Your Xbox Game Pass renewal", models.CategoryGaming},
		{"name wins over body", "Spotify", "your cloud storage on aws", models.CategoryStreaming},
		{"no match anywhere", "RandomCo", "Thanks for your order.", models.CategoryOther},
		{"security by body keyword", "Unknown Service", "your vpn subscription has renewed", models.CategorySecurity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.serviceName, tt.body)
			if got != tt.want {
				t.Errorf("Categorize(%q, %q) = %s, want %s", tt.serviceName, tt.body, got, tt.want)
			}
		})
	}
}
