// =============================================================================
// Transaction Report Converter - Spreadsheet Parser
// =============================================================================
//
// This module reads a partner's binary spreadsheet report into header-keyed
// rows. Only the first sheet is consulted; partners occasionally attach
// summary sheets after the data sheet and those are deliberately ignored.
//
// Cells are read with raw values so that date columns keep their serial
// numbers instead of arriving pre-formatted through the sheet's number format.
// Any cell whose raw value parses as a number is tagged numeric; the date
// decoder downstream relies on that tag to tell serials from date strings.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

// Data is a parsed spreadsheet.
type Data struct {
	// SourceFile is the path the spreadsheet was read from.
	SourceFile string

	// SheetName is the name of the sheet the data came from (always sheet 0).
	SheetName string

	// Headers contains the column headers from the first row, in order.
	Headers []string

	// Rows contains the data rows keyed by header.
	Rows []types.Row

	// RowCount is the number of data rows (header row excluded).
	RowCount int
}

// Parse reads the first sheet of an xlsx file into header-keyed rows.
// The first row is treated as headers; fully empty rows are skipped.
func Parse(path string) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	allRows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(allRows[0])

	rows := make([]types.Row, 0, len(allRows)-1)
	for _, raw := range allRows[1:] {
		if isRowEmpty(raw) {
			continue
		}

		row := make(types.Row, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(raw) {
				continue
			}
			row[header] = toCell(strings.TrimSpace(raw[i]))
		}
		rows = append(rows, row)
	}

	return &Data{
		SourceFile: path,
		SheetName:  sheetName,
		Headers:    headers,
		Rows:       rows,
		RowCount:   len(rows),
	}, nil
}

// toCell tags numeric cells so serial dates can be decoded downstream.
func toCell(raw string) types.Cell {
	if raw == "" {
		return types.StringCell("")
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return types.NumberCell(raw, n)
	}
	return types.StringCell(raw)
}

// cleanHeaders trims header cells. Headers are otherwise kept exactly as they
// appear in the sheet; the mapping specs reference them verbatim.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = strings.TrimSpace(h)
	}
	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
