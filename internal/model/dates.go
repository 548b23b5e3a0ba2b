package model

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// FormatDate renders a time as an API date key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an API date key.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// LiturgicalYear returns the liturgical year a date belongs to.
// The liturgical year begins with Advent in late November, so November
// and December count toward the year starting then; earlier months
// belong to the year that started the previous calendar year.
func LiturgicalYear(t time.Time) int {
	if t.Month() >= time.November {
		return t.Year()
	}
	return t.Year() - 1
}
