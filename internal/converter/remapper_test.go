package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawneshshakya/transaction-report-converter/internal/config"
	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

func stringRow(fields map[string]string) types.Row {
	row := make(types.Row, len(fields))
	for k, v := range fields {
		row[k] = types.StringCell(v)
	}
	return row
}

func TestRemapGatewayExportToMMTC(t *testing.T) {
	rules := config.BuiltinFlows()["mmtc"].Fields

	row := stringRow(map[string]string{
		"TransactionDate": "2024-01-05",
		"TransactionTime": "10:00",
		"CustomerRefNo":   "C1",
		"Name":            "A",
		"TotalAmount":     "100",
		"TransactionID":   "T1",
		"RRN":             "R1",
		"PampOrderId":     "P1",
	})

	got := Remap(rules, row)

	assert.Equal(t, types.CanonicalRow{
		"CustomerRefNo":       "C1",
		"Name":                "A",
		"TotalAmount":         "100",
		"TransactionID":       "T1",
		"partner_name":        "",
		"TransactionDateTime": "2024-01-05,10:00",
		"RRN":                 "R1",
		"PampOrderId":         "P1",
		"refinery":            "MMTC",
	}, got)
}

// Remapping is total: a row missing every declared source field still yields
// exactly one canonical row, with empty copy/concat fields and constants at
// their literals.
func TestRemapIsTotal(t *testing.T) {
	rules := config.BuiltinFlows()["mmtc"].Fields

	got := Remap(rules, types.Row{})

	require.Len(t, got, len(rules))
	assert.Equal(t, "", got["CustomerRefNo"])
	assert.Equal(t, ",", got["TransactionDateTime"])
	assert.Equal(t, "MMTC", got["refinery"])
	assert.Equal(t, "", got["partner_name"])
}

func TestRemapAugmontSerialDate(t *testing.T) {
	rules := config.BuiltinFlows()["augmont"].Fields

	row := types.Row{
		"Account Name":            types.StringCell("Dealer One"),
		"Total Amount":            types.NumberCell("4999.5", 4999.5),
		"Merchant Transaction Id": types.StringCell("MT-77"),
		// 2024-01-01 10:41:30
		"Buy Date": types.NumberCell("45292.4454861111", 45292.4454861111),
	}

	got := Remap(rules, row)

	assert.Equal(t, "", got["customerRefNo"])
	assert.Equal(t, "Dealer One", got["customer_name"])
	assert.Equal(t, "4999.5", got["amount"])
	assert.Equal(t, "MT-77", got["merchantTransactionId"])
	assert.Equal(t, "1/1/2024, 10:41:30 AM", got["date"])
	assert.Equal(t, "", got["payment_id"])
	assert.Equal(t, "", got["order_id"])
}

// A date field that is neither a serial nor a parseable date degrades to the
// raw value unchanged.
func TestRemapDatePassthrough(t *testing.T) {
	rules := config.BuiltinFlows()["augmont"].Fields

	row := stringRow(map[string]string{"Buy Date": "pending settlement"})
	got := Remap(rules, row)
	assert.Equal(t, "pending settlement", got["date"])

	// Empty date cell stays empty.
	got = Remap(rules, stringRow(map[string]string{"Buy Date": ""}))
	assert.Equal(t, "", got["date"])
}

func TestRemapAllPreservesOrder(t *testing.T) {
	rules := config.BuiltinFlows()["mmtc"].Fields
	rows := []types.Row{
		stringRow(map[string]string{"CustomerRefNo": "C1"}),
		stringRow(map[string]string{"CustomerRefNo": "C2"}),
		stringRow(map[string]string{"CustomerRefNo": "C3"}),
	}

	got := RemapAll(rules, rows)
	require.Len(t, got, 3)
	for i, want := range []string{"C1", "C2", "C3"} {
		assert.Equal(t, want, got[i]["CustomerRefNo"])
	}
}

func TestPassthroughRows(t *testing.T) {
	headers := []string{"A", "B"}
	rows := []types.Row{stringRow(map[string]string{"A": "1", "B": "2"})}

	got := PassthroughRows(headers, rows)
	require.Len(t, got, 1)
	assert.Equal(t, types.CanonicalRow{"A": "1", "B": "2"}, got[0])
}
