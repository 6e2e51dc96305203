// =============================================================================
// Transaction Report Converter - Spreadsheet Serial Date Decoder
// =============================================================================
//
// Spreadsheet tools store date-times as a floating point day count: the whole
// part is days since the 1899-12-30 epoch (day 1 maps to 1900-01-01, with the
// historical 1900 leap-year bug baked into the offset), the fractional part is
// the time of day. Partner reports arrive with these serials in their date
// columns, so the decoder below must match the spreadsheet tools bit for bit.
//
// ALGORITHM:
//   1. wholeDays = floor(serial - 25569)   (25569 = offset to the 1970 epoch)
//   2. base      = 1970 epoch + wholeDays * 86400 seconds
//   3. frac      = serial - floor(serial) + 1e-7
//      (the epsilon absorbs float rounding just below midnight)
//   4. split floor(86400 * frac) into hours / minutes / seconds
//   5. overwrite the time-of-day of base with those components
//
// Seconds are applied. The upstream reports carried two decoder variants, one
// with seconds and one without; this package standardizes on the variant that
// applies them, which is exact for every input the variant without seconds
// handled.
//
// =============================================================================

package exceldate

import (
	"math"
	"strconv"
	"time"
)

// epochOffsetDays is the day count between the spreadsheet epoch (1899-12-30)
// and the Unix epoch (1970-01-01).
const epochOffsetDays = 25569

// midnightEpsilon absorbs floating point rounding near midnight boundaries.
const midnightEpsilon = 1e-7

// Layouts used when formatting decoded dates.
const (
	// LayoutMinute is the canonical "date time" shape used by the filter
	// pipeline: YYYY-MM-DD HH:MM. The first ten characters are the date.
	LayoutMinute = "2006-01-02 15:04"

	// LayoutLocale matches the en-US locale rendering the settlement partner's
	// existing reports use, e.g. "4/19/2025, 10:41:30 PM".
	LayoutLocale = "1/2/2006, 3:04:05 PM"

	// LayoutDate is the date-only shape used for filter targets.
	LayoutDate = "2006-01-02"
)

// Decode converts a spreadsheet serial number to a calendar date-time in UTC.
// The function is pure and deterministic.
func Decode(serial float64) time.Time {
	wholeDays := math.Floor(serial - epochOffsetDays)
	base := time.Unix(int64(wholeDays)*86400, 0).UTC()

	frac := serial - math.Floor(serial) + midnightEpsilon
	totalSeconds := int(math.Floor(86400 * frac))

	seconds := totalSeconds % 60
	remaining := totalSeconds - seconds
	hours := remaining / 3600
	minutes := (remaining / 60) % 60

	return time.Date(base.Year(), base.Month(), base.Day(), hours, minutes, seconds, 0, time.UTC)
}

// DecodeString decodes a raw cell value that may be either a serial number or
// an already-formatted date string. Numeric values are decoded; anything else
// is parsed as a date string. The boolean reports whether decoding succeeded;
// on false the caller should pass the raw value through unchanged.
func DecodeString(raw string) (time.Time, bool) {
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return Decode(serial), true
	}
	for _, layout := range []string{
		LayoutMinute,
		LayoutLocale,
		LayoutDate,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"01/02/2006 15:04",
		"01/02/2006",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
