// =============================================================================
// Transaction Report Converter - Row Remapping Engine
// =============================================================================
//
// One engine serves every flow: it walks a flow's mapping table and derives
// each canonical field from the raw row. The engine is pure and total: every
// raw row produces exactly one canonical row, and a missing source field
// surfaces as an empty output field, never as an error. That invariant is
// what lets partner reports with ragged columns flow through untouched.
//
// =============================================================================

package converter

import (
	"github.com/pawneshshakya/transaction-report-converter/internal/config"
	"github.com/pawneshshakya/transaction-report-converter/internal/exceldate"
	"github.com/pawneshshakya/transaction-report-converter/internal/types"
)

// Remap applies a flow's mapping table to one raw row.
func Remap(rules []config.FieldRule, row types.Row) types.CanonicalRow {
	out := make(types.CanonicalRow, len(rules))
	for _, rule := range rules {
		out[rule.Output] = resolve(rule, row)
	}
	return out
}

// RemapAll applies a flow's mapping table to every row, preserving order.
func RemapAll(rules []config.FieldRule, rows []types.Row) []types.CanonicalRow {
	out := make([]types.CanonicalRow, len(rows))
	for i, row := range rows {
		out[i] = Remap(rules, row)
	}
	return out
}

// resolve evaluates a single source expression against a raw row.
func resolve(rule config.FieldRule, row types.Row) string {
	switch rule.Kind {
	case config.KindConst:
		return rule.Value

	case config.KindCopy:
		return row.Get(rule.Source)

	case config.KindConcat:
		return row.Get(rule.Source) + rule.Separator + row.Get(rule.Second)

	case config.KindDate:
		return resolveDate(rule, row)

	default:
		// Unknown kinds are rejected at config load; an empty field keeps
		// the totality invariant if one slips through.
		return ""
	}
}

// resolveDate decodes a serial date cell and formats it. Non-numeric values
// that do not parse as a date degrade to the raw value unchanged.
func resolveDate(rule config.FieldRule, row types.Row) string {
	cell, ok := row[rule.Source]
	if !ok || cell.Value == "" {
		return ""
	}

	layout := rule.Format
	if layout == "" {
		layout = exceldate.LayoutLocale
	}

	if cell.IsNumber {
		return exceldate.Decode(cell.Number).Format(layout)
	}
	if t, ok := exceldate.DecodeString(cell.Value); ok {
		return t.Format(layout)
	}
	return cell.Value
}

// PassthroughRows converts raw rows into canonical rows without remapping,
// for flows that carry the input schema through unchanged.
func PassthroughRows(headers []string, rows []types.Row) []types.CanonicalRow {
	out := make([]types.CanonicalRow, len(rows))
	for i, row := range rows {
		canonical := make(types.CanonicalRow, len(headers))
		for _, h := range headers {
			canonical[h] = row.Get(h)
		}
		out[i] = canonical
	}
	return out
}
