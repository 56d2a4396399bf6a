// Package format provides the Indonesian-locale numeral and date rendering
// used by the legal document templates: terbilang (spelled-out numerals),
// thousand grouping, and the government-register date forms.
package format

import (
	"strconv"
	"strings"
)

// Names for 0-11; every larger number is composed from these.
var unitWords = [...]string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima",
	"Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas",
}

// ToWords converts a non-negative integer to its Indonesian spelled-out form
// (terbilang). Zero and negative values yield the empty string: an absent
// amount is rendered as nothing, not as "Nol".
func ToWords(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 12:
		return unitWords[n]
	case n < 20:
		return ToWords(n-10) + " Belas"
	case n < 100:
		return join(ToWords(n/10)+" Puluh", ToWords(n%10))
	case n < 200:
		return join("Seratus", ToWords(n-100))
	case n < 1000:
		return join(ToWords(n/100)+" Ratus", ToWords(n%100))
	case n < 2000:
		return join("Seribu", ToWords(n-1000))
	case n < 1_000_000:
		return join(ToWords(n/1000)+" Ribu", ToWords(n%1000))
	case n < 1_000_000_000:
		return join(ToWords(n/1_000_000)+" Juta", ToWords(n%1_000_000))
	case n < 1_000_000_000_000:
		return join(ToWords(n/1_000_000_000)+" Miliar", ToWords(n%1_000_000_000))
	default:
		return join(ToWords(n/1_000_000_000_000)+" Triliun", ToWords(n%1_000_000_000_000))
	}
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GroupThousands strips non-digit characters and reinserts a "." separator
// before every group of three digits counting from the right. Leading zeros
// are dropped so the output is the canonical printed amount ("007" renders
// as "7"). Reapplying it to its own output is a no-op.
func GroupThousands(s string) string {
	digits := strings.TrimLeft(Digits(s), "0")
	if digits == "" {
		// All zeros still render as a single digit
		if Digits(s) != "" {
			return "0"
		}
		return ""
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// SalaryWords renders a raw salary input as terbilang with the Rupiah
// currency suffix. Inputs without any numeric value yield the empty string.
func SalaryWords(s string) string {
	digits := Digits(s)
	if digits == "" {
		return ""
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}

	words := ToWords(n)
	if words == "" {
		return ""
	}
	return words + " Rupiah"
}
