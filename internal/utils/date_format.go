package utils

import (
	"strings"
	"time"
)

const (
	// DateUnavailable is returned for missing dates.
	DateUnavailable = "Fecha no disponible"
	// DateInvalid is returned for values that cannot be parsed as a date.
	DateInvalid = "Fecha inválida"

	shortDateLayout = "02-01-2006" // es-CL short date
)

var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatDate renders v as an es-CL short date (DD-MM-YYYY).
// Accepted inputs are nil, string, time.Time and *time.Time.
func FormatDate(v any) string {
	switch d := v.(type) {
	case nil:
		return DateUnavailable
	case time.Time:
		if d.IsZero() {
			return DateUnavailable
		}
		return d.Format(shortDateLayout)
	case *time.Time:
		if d == nil || d.IsZero() {
			return DateUnavailable
		}
		return d.Format(shortDateLayout)
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return DateUnavailable
		}
		t, ok := ParseDate(s)
		if !ok {
			return DateInvalid
		}
		return t.Format(shortDateLayout)
	default:
		return DateInvalid
	}
}

// ParseDate tries the supported input layouts in order. Out-of-range
// components such as month 13 fail every layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
