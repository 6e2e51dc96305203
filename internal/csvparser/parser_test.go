package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	text := "CustomerRefNo, Name ,TotalAmount\nC1, Alice ,100\nC2,Bob,250\n"

	data, err := ParseText(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"CustomerRefNo", "Name", "TotalAmount"}, data.Headers)
	require.Equal(t, 2, data.RowCount)
	assert.Equal(t, "Alice", data.Rows[0].Get("Name"))
	assert.Equal(t, "250", data.Rows[1].Get("TotalAmount"))
}

func TestParseTextCRLF(t *testing.T) {
	data, err := ParseText("A,B\r\n1,2\r\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, data.Headers)
	assert.Equal(t, "2", data.Rows[0].Get("B"))
}

// A row shorter than the header line yields missing values, not an error.
func TestParseTextShortRow(t *testing.T) {
	data, err := ParseText("A,B,C\n1,2\n")
	require.NoError(t, err)

	row := data.Rows[0]
	assert.Equal(t, "2", row.Get("B"))
	_, present := row["C"]
	assert.False(t, present)
	assert.Equal(t, "", row.Get("C"))
}

// Extra values beyond the header count are dropped.
func TestParseTextLongRow(t *testing.T) {
	data, err := ParseText("A,B\n1,2,3,4\n")
	require.NoError(t, err)
	assert.Len(t, data.Rows[0], 2)
}

// The gateway export carries no quoting; quote characters are literal text.
func TestParseTextNoQuoteSupport(t *testing.T) {
	data, err := ParseText("A,B,C\na,\"b,c\"\n")
	require.NoError(t, err)

	row := data.Rows[0]
	assert.Equal(t, "a", row.Get("A"))
	assert.Equal(t, "\"b", row.Get("B"))
	assert.Equal(t, "c\"", row.Get("C"))
}

func TestParseTextSkipsBlankLines(t *testing.T) {
	data, err := ParseText("A,B\n1,2\n\n   \n3,4\n")
	require.NoError(t, err)
	assert.Equal(t, 2, data.RowCount)
}

func TestParseTextEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\n"} {
		_, err := ParseText(text)
		assert.Error(t, err, "input %q", text)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B\n1,2\n"), 0644))

	data, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, data.RowCount)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
