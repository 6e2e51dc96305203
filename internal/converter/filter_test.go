package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

func filterRow(dateTime, status string) types.CanonicalRow {
	return types.CanonicalRow{
		"Transaction Time":   dateTime,
		"Transaction Status": status,
	}
}

var cashfreeCriteria = FilterCriteria{
	DateField:   "Transaction Time",
	StatusField: "Transaction Status",
}

func TestFilterByDate(t *testing.T) {
	rows := []types.CanonicalRow{
		filterRow("2024-01-05 09:00", "SUCCESS"),
		filterRow("2024-01-06 09:00", "SUCCESS"),
	}

	c := cashfreeCriteria
	c.Date = "2024-01-05"
	c.Status = StatusAll

	got := Filter(rows, c)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-05 09:00", got[0]["Transaction Time"])
}

func TestFilterStatusAllIgnoresStatus(t *testing.T) {
	rows := []types.CanonicalRow{
		filterRow("2024-01-05 09:00", "SUCCESS"),
		filterRow("2024-01-05 10:00", "FAILED"),
		filterRow("2024-01-05 11:00", "USER_DROPPED"),
		filterRow("2024-01-06 09:00", "SUCCESS"),
	}

	c := cashfreeCriteria
	c.Date = "2024-01-05"
	c.Status = StatusAll

	assert.Len(t, Filter(rows, c), 3)
}

func TestFilterStatusIsExactAndCaseSensitive(t *testing.T) {
	rows := []types.CanonicalRow{
		filterRow("2024-01-05 09:00", "SUCCESS"),
		filterRow("2024-01-05 10:00", "success"),
		filterRow("2024-01-05 11:00", "FAILED"),
	}

	c := cashfreeCriteria
	c.Date = "2024-01-05"
	c.Status = "SUCCESS"

	got := Filter(rows, c)
	require.Len(t, got, 1)
	assert.Equal(t, "SUCCESS", got[0]["Transaction Status"])
}

// Filtering is stable: the kept rows appear in their original relative order.
func TestFilterPreservesOrder(t *testing.T) {
	rows := []types.CanonicalRow{
		filterRow("2024-01-05 08:00", "SUCCESS"),
		filterRow("2024-01-06 08:30", "SUCCESS"),
		filterRow("2024-01-05 09:00", "FAILED"),
		filterRow("2024-01-05 17:45", "SUCCESS"),
	}

	c := cashfreeCriteria
	c.Date = "2024-01-05"
	c.Status = StatusAll

	got := Filter(rows, c)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-05 08:00", got[0]["Transaction Time"])
	assert.Equal(t, "2024-01-05 09:00", got[1]["Transaction Time"])
	assert.Equal(t, "2024-01-05 17:45", got[2]["Transaction Time"])
}

// An empty result is valid, not an error.
func TestFilterEmptyResult(t *testing.T) {
	rows := []types.CanonicalRow{filterRow("2024-01-05 09:00", "SUCCESS")}

	c := cashfreeCriteria
	c.Date = "2030-12-31"
	c.Status = StatusAll

	got := Filter(rows, c)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// A malformed or missing date field never matches.
func TestFilterMalformedDateField(t *testing.T) {
	rows := []types.CanonicalRow{
		filterRow("", "SUCCESS"),
		filterRow("bad", "SUCCESS"),
	}

	c := cashfreeCriteria
	c.Date = "2024-01-05"
	c.Status = StatusAll

	assert.Empty(t, Filter(rows, c))
}
