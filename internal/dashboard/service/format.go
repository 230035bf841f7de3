package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// fixed rounds the exact binary value of v, so halves that floats cannot
// represent round the same way printf does.
func fixed(v float64, places int32) string {
	return decimal.NewFromFloatWithExponent(v, -places).StringFixed(places)
}

func usd(v float64, places int32) string {
	return "$" + fixed(v, places)
}

func percent(v float64, places int32) string {
	return fixed(v, places) + "%"
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func orBlank(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps blank form input to an absent value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
