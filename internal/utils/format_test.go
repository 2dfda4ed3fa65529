package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"thousand", decimal.NewFromInt(1000), "$1.000"},
		{"zero", decimal.Zero, "$0"},
		{"below thousand", decimal.NewFromInt(999), "$999"},
		{"millions", decimal.NewFromInt(12345678), "$12.345.678"},
		{"rounds to whole pesos", decimal.RequireFromString("2500.6"), "$2.501"},
		{"negative", decimal.NewFromInt(-1000), "-$1.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatCurrencyCode(t *testing.T) {
	assert.Equal(t, "US$1.234,50", FormatCurrencyCode(decimal.RequireFromString("1234.5"), "usd"))
	assert.Equal(t, "€10,00", FormatCurrencyCode(decimal.NewFromInt(10), "EUR"))
	assert.Equal(t, "$1.000", FormatCurrencyCode(decimal.NewFromInt(1000), ""))
	assert.Equal(t, "ARS 1.000,00", FormatCurrencyCode(decimal.NewFromInt(1000), "ARS"))
	assert.Equal(t, "-US$0,50", FormatCurrencyCode(decimal.RequireFromString("-0.5"), "USD"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "39.123,46", FormatNumber(decimal.RequireFromString("39123.456"), 2))
	assert.Equal(t, "1.234.567", FormatNumber(decimal.NewFromInt(1234567), 0))
	assert.Equal(t, "-12,5", FormatNumber(decimal.RequireFromString("-12.5"), 1))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	var nilTime *time.Time

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, DateUnavailable},
		{"empty string", "", DateUnavailable},
		{"nil pointer", nilTime, DateUnavailable},
		{"zero time", time.Time{}, DateUnavailable},
		{"out of range", "2024-13-40", DateInvalid},
		{"garbage", "not a date", DateInvalid},
		{"unsupported type", 42, DateInvalid},
		{"date only", "2024-03-15", "15-03-2024"},
		{"rfc3339", "2024-03-15T10:30:00Z", "15-03-2024"},
		{"time value", ts, "15-03-2024"},
		{"time pointer", &ts, "15-03-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"202403", "Marzo 2024"},
		{"202401", "Enero 2024"},
		{"202312", "Diciembre 2023"},
		{"abc", "abc"},
		{"2024031", "2024031"},
		{"", ""},
		{"202413", "202413"},
		{"2024ab", "2024ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPeriod(tt.input))
		})
	}
}

func TestParsePeriod(t *testing.T) {
	year, month, ok := ParsePeriod("202507")
	assert.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.July, month)

	_, _, ok = ParsePeriod("202500")
	assert.False(t, ok)
}
