// =============================================================================
// Transaction Report Converter - Shared Types
// =============================================================================
//
// This package contains the row types shared across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - converter
//   - xlsxwriter
//
// =============================================================================

package types

// Cell is a single parsed cell value. Spreadsheet cells keep their numeric
// value alongside the raw string so that serial dates can be decoded without
// re-parsing; cells that came from delimited text are always plain strings.
type Cell struct {
	// Value is the raw string form of the cell, exactly as parsed.
	Value string

	// Number is the numeric value of the cell, valid only when IsNumber is true.
	Number float64

	// IsNumber reports whether the source cell held a numeric value.
	IsNumber bool
}

// StringCell builds a plain text cell.
func StringCell(v string) Cell {
	return Cell{Value: v}
}

// NumberCell builds a numeric cell. The raw string form is kept too, so a
// value that is never decoded as a date still serializes byte-for-byte.
func NumberCell(raw string, n float64) Cell {
	return Cell{Value: raw, Number: n, IsNumber: true}
}

// Row is one parsed input row, keyed by column header exactly as it appears
// in the source. A header present in one row but absent in another is a
// missing value, not an error.
type Row map[string]Cell

// Get returns the string value for a header, or "" when the header is absent.
func (r Row) Get(header string) string {
	return r[header].Value
}

// CanonicalRow is the output of remapping: a flat field-name -> value map.
// Field order is not carried here; it is declared by the mapping spec and
// enforced by the serializers.
type CanonicalRow map[string]string
