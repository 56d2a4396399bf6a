package format

import (
	"fmt"
	"strconv"
	"time"
)

// Placeholder strings emitted for unset dates, matching the printed forms.
const (
	PlaceholderLong    = "......................."
	PlaceholderNumeric = ".........."
)

// DateLayout is the storage form of all date fields.
const DateLayout = "2006-01-02"

var monthNames = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Indexed by time.Weekday (Sunday = 0).
var weekdayNames = [...]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

// The organization only operates in these years; anything else falls back to
// the plain numeral. A known limitation carried over deliberately.
var yearWords = map[int]string{
	2025: "Dua Ribu Dua Puluh Lima",
	2026: "Dua Ribu Dua Puluh Enam",
	2027: "Dua Ribu Dua Puluh Tujuh",
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LongDate renders "2 Januari 2025". Unset or unparseable input yields the
// long placeholder.
func LongDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderLong
	}
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()], t.Year())
}

// NumericDate renders "2-01-2025": day unpadded, month zero-padded.
func NumericDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderNumeric
	}
	return fmt.Sprintf("%d-%02d-%d", t.Day(), t.Month(), t.Year())
}

// WeekdayName renders the localized weekday, e.g. "Kamis".
func WeekdayName(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderLong
	}
	return weekdayNames[t.Weekday()]
}

// MonthName renders the Indonesian month name of the date.
func MonthName(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderLong
	}
	return monthNames[t.Month()]
}

// DayWords spells out the day of month, e.g. "Dua Puluh Satu".
func DayWords(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderLong
	}
	return ToWords(int64(t.Day()))
}

// YearWords spells out the year for the small set of years in the lookup;
// any other year is rendered as its plain numeral.
func YearWords(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return PlaceholderLong
	}
	if words, found := yearWords[t.Year()]; found {
		return words
	}
	return strconv.Itoa(t.Year())
}
