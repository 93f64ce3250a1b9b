// Package export writes subscription records to CSV for spreadsheet review.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/coreybb/subscan/models"
)

const dateLayout = "2006-01-02"

var csvHeader = []string{
	"service_name",
	"category",
	"amount",
	"currency",
	"billing_frequency",
	"monthly_cost",
	"last_email_date",
	"is_active",
	"is_free_trial",
}

// WriteCSV writes the header row plus one row per record. Records with no
// detected amount leave the money columns empty.
func WriteCSV(w io.Writer, records []models.Subscription) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, record := range records {
		amount := ""
		if record.Amount != nil {
			amount = record.Amount.StringFixed(2)
		}
		monthly := ""
		if record.MonthlyCost != nil {
			monthly = record.MonthlyCost.StringFixed(2)
		}
		row := []string{
			record.ServiceName,
			string(record.Category),
			amount,
			string(record.Currency),
			string(record.BillingFrequency),
			monthly,
			record.LastMessageDate.Format(dateLayout),
			strconv.FormatBool(record.IsActive),
			strconv.FormatBool(record.IsFreeTrial),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", record.ServiceName, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records to the named file, creating or
// truncating it.
func WriteCSVFile(path string, records []models.Subscription) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, records); err != nil {
		return err
	}
	return f.Close()
}
