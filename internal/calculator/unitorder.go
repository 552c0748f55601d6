package calculator

import (
	"cmp"
	"strconv"
	"strings"
	"unicode"
)

// digitValue returns the decimal value of a digit rune from any numeral
// script (ASCII, Arabic-Indic, Extended Arabic-Indic, Devanagari, ...).
// Unicode lays out every decimal digit set as consecutive runs of ten
// starting at zero.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10, true
}

// NormalizeDigits keeps only the digits of s, rewritten as ASCII.
func NormalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}

// UnitNumber returns the integer formed by the digits of a unit label.
// It reports false when the label has no digits or the number overflows.
func UnitNumber(label string) (int64, bool) {
	digits := NormalizeDigits(label)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CompareUnits orders unit labels numerically by their digits.
// Labels with a number come before labels without one; equal numbers
// fall back to the lexical order of the full label.
func CompareUnits(a, b string) int {
	na, okA := UnitNumber(a)
	nb, okB := UnitNumber(b)
	switch {
	case okA && okB && na != nb:
		return cmp.Compare(na, nb)
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	}
	return strings.Compare(a, b)
}
