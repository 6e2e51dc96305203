// =============================================================================
// Transaction Report Converter - Artifact Serializers
// =============================================================================
//
// This module writes the canonical rows of a finished pipeline to the
// downloadable artifact: a single-sheet xlsx workbook or a delimited text
// file. Column order always follows the mapping spec's declared order, never
// the iteration order of any particular row's data.
//
// A serialize call with zero rows is refused before any file is created; an
// empty report is reported to the operator, not silently written.
//
// =============================================================================

package xlsxwriter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

// ErrNoRows is returned when a serializer is asked to write an empty result.
var ErrNoRows = fmt.Errorf("no rows to write")

// WriteXLSX writes rows to a single-sheet xlsx workbook at path.
func WriteXLSX(path, sheetName string, columns []string, rows []types.CanonicalRow) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		values := make([]interface{}, len(columns))
		for j, col := range columns {
			values[j] = row[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteCSV writes rows to a delimited text file at path. Quoting follows the
// standard CSV rules of encoding/csv; the downstream system accepts both.
func WriteCSV(path string, columns []string, rows []types.CanonicalRow) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(columns))
	for i, row := range rows {
		for j, col := range columns {
			record[j] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
