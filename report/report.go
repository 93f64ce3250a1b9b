// Package report renders a scan's findings as a terminal report.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/coreybb/subscan/models"
)

var currencySymbols = map[models.Currency]string{
	models.CurrencyUSD: "$",
	models.CurrencyGBP: "£",
	models.CurrencyEUR: "€",
}

// FormatCurrency renders an amount with its currency symbol, or "N/A"
// when no amount was detected.
func FormatCurrency(amount *decimal.Decimal, currency models.Currency) string {
	if amount == nil {
		return "N/A"
	}
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = "$"
	}
	return symbol + amount.StringFixed(2)
}

// Render writes the full report: the active-subscription table, spend
// totals, and callouts for unused services and trials ending soon.
func Render(w io.Writer, records []models.Subscription, summary models.Summary) {
	fmt.Fprintf(w, "\nSubscription Audit — %d services found, %d active\n\n",
		summary.TotalSubscriptions, summary.ActiveSubscriptions)

	active := make([]models.Subscription, 0, len(records))
	for _, record := range records {
		if record.IsActive {
			active = append(active, record)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].ServiceName < active[j].ServiceName
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Service", "Category", "Cost", "Frequency", "Last Charged"})
	for _, record := range active {
		table.Append([]string{
			record.ServiceName,
			string(record.Category),
			FormatCurrency(record.Amount, record.Currency),
			string(record.BillingFrequency),
			record.LastMessageDate.Format("Jan 02"),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\nMonthly total:     $%s\n", summary.TotalMonthlyCost.StringFixed(2))
	fmt.Fprintf(w, "Annual projection: $%s\n", summary.AnnualProjection.StringFixed(2))

	if len(summary.UnusedSubscriptions) > 0 {
		fmt.Fprintf(w, "\nPossibly unused (no email in over 60 days):\n")
		for _, record := range summary.UnusedSubscriptions {
			fmt.Fprintf(w, "  - %s (%s/month)\n",
				record.ServiceName, FormatCurrency(record.MonthlyCost, record.Currency))
		}
	}

	if len(summary.TrialsEndingSoon) > 0 {
		fmt.Fprintf(w, "\nFree trials ending within 14 days:\n")
		for _, record := range summary.TrialsEndingSoon {
			end := "unknown date"
			if record.TrialEndDate != nil {
				end = record.TrialEndDate.Format("Jan 02, 2006")
			}
			fmt.Fprintf(w, "  - %s (ends %s)\n", record.ServiceName, end)
		}
	}
	fmt.Fprintln(w)
}
