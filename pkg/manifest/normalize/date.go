package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrNotADate = errors.New("not a date")

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
}

var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Date parses the date notations found in manifests, including compact EDIFACT forms and
// spreadsheet serial numbers. The result is in UTC.
func Date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty value: %w", ErrNotADate)
	}

	if isDigits(s) {
		switch len(s) {
		case 8:
			return EDIFACTDate(s, "102")
		case 12:
			return EDIFACTDate(s, "203")
		}
		if serial, err := strconv.Atoi(s); err == nil && serial > 0 && serial < 100000 {
			return excelEpoch.AddDate(0, 0, serial), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 && serial < 100000 {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, ErrNotADate)
}

// EDIFACTDate parses a DTM value with its format qualifier (101, 102, 203).
func EDIFACTDate(value, formatCode string) (time.Time, error) {
	var layout string
	switch formatCode {
	case "101":
		layout = "060102"
	case "102", "":
		layout = "20060102"
	case "203":
		layout = "200601021504"
	case "204":
		layout = "20060102150405"
	default:
		return time.Time{}, fmt.Errorf("date format %s: %w", formatCode, ErrNotADate)
	}
	t, err := time.ParseInLocation(layout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrNotADate)
	}
	return t, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
