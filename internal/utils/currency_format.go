package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is given.
const DefaultCurrency = "CLP"

type currencyFormat struct {
	symbol    string
	precision int32
}

// es-CL conventions: "." groups thousands, "," separates decimals.
var currencyFormats = map[string]currencyFormat{
	"CLP": {symbol: "$", precision: 0},
	"USD": {symbol: "US$", precision: 2},
	"EUR": {symbol: "€", precision: 2},
	"CLF": {symbol: "UF ", precision: 4},
}

// FormatCurrency formats amount as Chilean pesos with no decimals.
// Example: 1000 returns "$1.000", -2500.6 returns "-$2.501"
func FormatCurrency(amount decimal.Decimal) string {
	return FormatCurrencyCode(amount, DefaultCurrency)
}

// FormatCurrencyCode formats amount for the given ISO currency code using es-CL separators.
// Unknown codes are rendered with two decimals and the code as prefix.
func FormatCurrencyCode(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCurrency
	}
	format, ok := currencyFormats[code]
	if !ok {
		format = currencyFormat{symbol: code + " ", precision: 2}
	}

	number := FormatNumber(amount, format.precision)
	if strings.HasPrefix(number, "-") {
		return "-" + format.symbol + number[1:]
	}
	return format.symbol + number
}

// FormatNumber renders amount with es-CL separators and a fixed number of decimals.
// Example: FormatNumber(39123.456, 2) returns "39.123,46"
func FormatNumber(amount decimal.Decimal, precision int32) string {
	rounded := amount.Round(precision)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(precision)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(groupThousands(intPart, "."))
	if fracPart != "" {
		b.WriteString(",")
		b.WriteString(fracPart)
	}
	return b.String()
}

func groupThousands(digits string, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
