package utils

import (
	"strconv"
	"strings"
	"time"

	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
)

// ISOTimestampFormat is the shape the registry expects for every date field.
const ISOTimestampFormat = "2006-01-02T15:04:05"

// Spreadsheet serial dates count days from 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var isoLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate accepts an ISO-8601 string (with or without a trailing Z and
// millisecond precision) or a spreadsheet serial number, and returns the
// moment in UTC. Anything else is a DateFormatError.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return serialEpoch.Add(time.Duration(serial * 24 * float64(time.Hour))), nil
	}

	return time.Time{}, &sinanerrors.DateFormatError{Value: value}
}

// ToISOUTC normalizes a date string to YYYY-MM-DDTHH:MM:SS.000Z. The
// operation is idempotent: an already-normalized string comes back unchanged.
func ToISOUTC(value string) (string, error) {
	t, err := ParseDate(value)
	if err != nil {
		return "", err
	}
	return FormatISOUTC(t), nil
}

// FormatISOUTC renders t in UTC with a fixed .000 fractional part,
// truncating sub-second precision the way the registry stores timestamps.
func FormatISOUTC(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(ISOTimestampFormat) + ".000Z"
}
