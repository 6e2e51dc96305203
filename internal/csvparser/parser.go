// =============================================================================
// Transaction Report Converter - Delimited Text Parser
// =============================================================================
//
// This module parses the comma-delimited text an operations user pastes (or
// pipes) into the gateway remap flow. The gateway export is plain: one header
// line, comma separated, no quoting and no escaped commas. The parser mirrors
// that contract exactly rather than layering a full CSV dialect on top:
//   - lines split on line breaks (CRLF tolerated)
//   - first line = headers, comma split, trimmed
//   - each following line = values, comma split, trimmed, positionally
//     aligned to the headers
//   - a row shorter than the header line yields missing values, not an error
//   - a row longer than the header line has its extra values dropped
//
// Malformed input surfaces as a single error; no partial results are ever
// returned.
//
// =============================================================================

package csvparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

// Data is a parsed delimited text block.
type Data struct {
	// Headers contains the column headers, in source order.
	Headers []string

	// Rows contains the data rows keyed by header.
	Rows []types.Row

	// RowCount is the number of data rows (headers excluded).
	RowCount int
}

// ParseText parses raw delimited text into header-keyed rows.
// Empty or whitespace-only input is rejected.
func ParseText(text string) (*Data, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("invalid format: input is empty")
	}

	lines := strings.Split(trimmed, "\n")

	headers := splitAndTrim(lines[0])
	if len(headers) == 1 && headers[0] == "" {
		return nil, fmt.Errorf("invalid format: no headers found")
	}

	rows := make([]types.Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitAndTrim(line)

		row := make(types.Row, len(headers))
		for i, header := range headers {
			if i < len(values) {
				row[header] = types.StringCell(values[i])
			}
		}
		rows = append(rows, row)
	}

	return &Data{
		Headers:  headers,
		Rows:     rows,
		RowCount: len(rows),
	}, nil
}

// ParseFile reads a file (or stdin when path is "-") and parses its contents.
func ParseFile(path string) (*Data, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseText(string(raw))
}

// splitAndTrim splits a line on commas and trims each field. Trailing CR from
// CRLF line endings is stripped with the rest of the whitespace.
func splitAndTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
