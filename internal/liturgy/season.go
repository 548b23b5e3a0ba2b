package liturgy

import (
	"time"

	"github.com/jmcarver/missal/internal/model"
)

// ApproximateSeason returns a rough liturgical season for a date using
// a fixed month/day table. This is a client-only estimate for when the
// calendar API is unreachable: it ignores the movable feasts entirely
// (Easter wanders across March and April; Advent starts on a Sunday),
// so it is wrong near every season boundary. The server is
// authoritative; never show this without flagging it as approximate.
func ApproximateSeason(t time.Time) model.Season {
	month := t.Month()
	day := t.Day()

	switch month {
	case time.December:
		if day >= 25 {
			return model.SeasonChristmas
		}
		if day >= 3 {
			return model.SeasonAdvent
		}
		return model.SeasonOrdinaryTime
	case time.January:
		if day <= 13 {
			return model.SeasonChristmas
		}
		return model.SeasonOrdinaryTime
	case time.February, time.March:
		return model.SeasonLent
	case time.April, time.May:
		return model.SeasonEaster
	case time.November:
		if day >= 27 {
			return model.SeasonAdvent
		}
		return model.SeasonOrdinaryTime
	default:
		return model.SeasonOrdinaryTime
	}
}

// ApproximateDay builds a minimal LiturgicalDay from the approximate
// season. Used only as the last-resort day fallback; it carries no
// celebrations and labels its source as a client estimate.
func ApproximateDay(t time.Time) model.LiturgicalDay {
	season := ApproximateSeason(t)
	return model.LiturgicalDay{
		Date:         model.FormatDate(t),
		Season:       season,
		Weekday:      t.Weekday().String(),
		Celebrations: []model.Celebration{},
		Color:        season.Color(),
		Source:       "Client approximation",
		LastUpdated:  t.Format(time.RFC3339),
	}
}

// holyDays is the fixed table of major holy days of obligation the
// client knows about without the server.
var holyDays = [][2]int{
	{12, 25}, // Christmas
	{1, 1},   // Mary, Mother of God
	{8, 15},  // Assumption
	{11, 1},  // All Saints
	{12, 8},  // Immaculate Conception
}

// IsHolyDay reports whether a date falls on one of the fixed-date major
// holy days.
func IsHolyDay(t time.Time) bool {
	for _, d := range holyDays {
		if int(t.Month()) == d[0] && t.Day() == d[1] {
			return true
		}
	}
	return false
}
