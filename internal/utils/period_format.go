package utils

import (
	"fmt"
	"strconv"
	"time"
)

var spanishMonths = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return spanishMonths[m-1]
}

// FormatPeriod turns a "YYYYMM" period into "<Mes> YYYY", e.g. "202403" -> "Marzo 2024".
// Anything that is not a six-character period with a valid month is returned unchanged.
func FormatPeriod(period string) string {
	if len(period) != 6 {
		return period
	}
	year, month, ok := ParsePeriod(period)
	if !ok {
		return period
	}
	return MonthName(month) + " " + strconv.Itoa(year)
}

// ParsePeriod splits a "YYYYMM" period into year and month.
func ParsePeriod(period string) (int, time.Month, bool) {
	if len(period) != 6 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(period[:4])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(period[4:])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// PeriodKey builds the "YYYYMM" period of year and month.
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d%02d", year, month)
}
