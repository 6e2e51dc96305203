// =============================================================================
// Transaction Report Converter - Date/Status Row Filter
// =============================================================================

package converter

import (
	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

// StatusAll is the sentinel status filter that matches every status value.
const StatusAll = "ALL"

// FilterCriteria selects canonical rows by calendar date and status.
type FilterCriteria struct {
	// DateField is the canonical field holding the formatted date-time,
	// shaped "YYYY-MM-DD HH:MM".
	DateField string

	// Date is the target calendar date, shaped "YYYY-MM-DD". A row matches
	// when the first ten characters of its date field equal this value.
	Date string

	// StatusField is the canonical field holding the transaction status.
	StatusField string

	// Status must equal the row's status exactly (case-sensitive), unless it
	// is the StatusAll sentinel.
	Status string
}

// Filter keeps the rows matching both criteria, preserving input order.
// An empty result is valid, not an error.
func Filter(rows []types.CanonicalRow, c FilterCriteria) []types.CanonicalRow {
	kept := make([]types.CanonicalRow, 0, len(rows))
	for _, row := range rows {
		if matchesDate(row[c.DateField], c.Date) && matchesStatus(row[c.StatusField], c.Status) {
			kept = append(kept, row)
		}
	}
	return kept
}

// matchesDate compares the date substring (first ten characters) of a
// formatted date-time against the target date.
func matchesDate(dateTime, target string) bool {
	if len(dateTime) < len(target) {
		return false
	}
	return dateTime[:len(target)] == target
}

func matchesStatus(status, filter string) bool {
	return filter == StatusAll || status == filter
}
