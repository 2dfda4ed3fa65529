// Package rut handles Chilean RUT (Rol Único Tributario) identifiers.
package rut

import (
	"strconv"
	"strings"
)

// Clean removes dots, dashes and spaces and upper-cases the check digit.
// "18.209.442-k" becomes "18209442K".
func Clean(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == 'k' || r == 'K':
			b.WriteRune('K')
		}
	}
	return b.String()
}

// DigitsOnly keeps only the decimal digits of s. "18209442-0" becomes "182094420".
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckDigit computes the module-11 verifier for a numeric RUT body.
func CheckDigit(body string) string {
	sum, factor := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	switch dv := 11 - sum%11; dv {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(dv)
	}
}

// hasOnlyRUTChars reports whether s holds nothing but digits, K, dots, dashes and spaces.
func hasOnlyRUTChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == 'k' || r == 'K' || r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return true
}

// IsValid reports whether s is a well formed RUT with a correct check digit.
// Characters other than digits, K, dots, dashes and spaces make it invalid.
func IsValid(s string) bool {
	if !hasOnlyRUTChars(s) {
		return false
	}
	cleaned := Clean(s)
	if len(cleaned) < 2 || len(cleaned) > 9 {
		return false
	}
	body, dv := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1:]
	if strings.Contains(body, "K") {
		return false
	}
	return CheckDigit(body) == dv
}

// Format renders s as "12.345.678-9". Input that is too short is returned cleaned.
func Format(s string) string {
	cleaned := Clean(s)
	if len(cleaned) < 2 {
		return cleaned
	}
	body, dv := cleaned[:len(cleaned)-1], cleaned[len(cleaned)-1:]
	var groups []string
	for len(body) > 3 {
		groups = append([]string{body[len(body)-3:]}, groups...)
		body = body[:len(body)-3]
	}
	groups = append([]string{body}, groups...)
	return strings.Join(groups, ".") + "-" + dv
}
