package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmcarver/missal/internal/liturgy"
	"github.com/jmcarver/missal/internal/model"
)

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n")

	switch a.tab {
	case TabReadings:
		b.WriteString(a.renderReadings())
	case TabCalendar:
		b.WriteString(a.renderCalendar())
	case TabPrayers:
		b.WriteString(a.renderPrayers())
	case TabSettings:
		b.WriteString(a.renderSettings())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderTabs() string {
	var labels []string
	for t := TabReadings; t < tabCount; t++ {
		if t == a.tab {
			labels = append(labels, TabActive.Render(t.String()))
		} else {
			labels = append(labels, TabInactive.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// notice renders the fallback banner when the shown data is not live.
func notice(text string, width int) string {
	if text == "" {
		return ""
	}
	return NoticeBar.Width(width).Render(text) + "\n"
}

func (a App) renderReadings() string {
	var b strings.Builder
	b.WriteString(notice(a.readings.Notice, a.width))

	r := a.readings.Readings
	if r.IsZero() {
		if a.loading {
			return b.String() + a.spin.View() + " Loading readings..."
		}
		return b.String() + Body.Render("No readings for "+a.date)
	}

	b.WriteString(Heading.Render("Daily Readings — " + r.Date))
	b.WriteString("\n")

	writeReading := func(title string, rd *model.Reading) {
		if rd == nil {
			return
		}
		b.WriteString(Heading.Render(title))
		b.WriteString("\n")
		b.WriteString(Citation.Render(rd.Reference))
		b.WriteString("\n")
		text := rd.Text
		if text == "" {
			text = rd.ShortText
		}
		if text != "" {
			b.WriteString(Body.Width(a.width - 2).Render(text))
			b.WriteString("\n")
		}
	}

	writeReading("First Reading", r.FirstReading)
	if p := r.ResponsorialPsalm; p != nil {
		b.WriteString(Heading.Render("Responsorial Psalm"))
		b.WriteString("\n")
		b.WriteString(Citation.Render(p.Reference))
		b.WriteString("\n")
		if p.Refrain != "" {
			b.WriteString(Body.Render("R. " + p.Refrain))
			b.WriteString("\n")
		}
		for _, v := range p.Verses {
			b.WriteString(Body.Width(a.width - 2).Render(v))
			b.WriteString("\n")
		}
	}
	writeReading("Second Reading", r.SecondReading)
	if r.GospelAcclamation != "" {
		b.WriteString(Heading.Render("Gospel Acclamation"))
		b.WriteString("\n")
		b.WriteString(Body.Render(r.GospelAcclamation))
		b.WriteString("\n")
	}
	writeReading("Gospel", r.Gospel)

	if r.Source != "" {
		b.WriteString(Attribution.Render("Source: " + r.Source))
	}
	return b.String()
}

func (a App) renderCalendar() string {
	var b strings.Builder
	b.WriteString(notice(a.day.Notice, a.width))

	d := a.day.Day
	if d.IsZero() {
		if a.loading {
			return b.String() + a.spin.View() + " Loading calendar..."
		}
		return b.String() + Body.Render("No calendar data for "+a.date)
	}

	seasonStyle := LiturgicalStyle(d.Color)
	b.WriteString(Heading.Render(d.Weekday + ", " + d.Date))
	b.WriteString("\n")
	season := string(d.Season)
	if d.SeasonWeek > 0 {
		season = fmt.Sprintf("%s, Week %d", season, d.SeasonWeek)
	}
	b.WriteString(seasonStyle.Render(season))
	b.WriteString("\n")
	b.WriteString(Body.Render("Liturgical color: " + string(d.Color)))
	b.WriteString("\n")
	if t, err := model.ParseDate(d.Date); err == nil && liturgy.IsHolyDay(t) {
		b.WriteString(FavoriteMark.Render("Holy day of obligation"))
		b.WriteString("\n")
	}

	if p := d.Primary(); p != nil {
		b.WriteString(Heading.Render(p.Name))
		b.WriteString("\n")
		b.WriteString(Citation.Render(string(p.Rank)))
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(Body.Width(a.width - 2).Render(p.Description))
			b.WriteString("\n")
		}
	}
	for i := range d.Celebrations {
		c := &d.Celebrations[i]
		if p := d.Primary(); p != nil && c.Name == p.Name {
			continue
		}
		b.WriteString(NormalItem.Render(fmt.Sprintf("%s (%s)", c.Name, c.Rank)))
		b.WriteString("\n")
	}

	if d.Source != "" {
		b.WriteString(Attribution.Render("Source: " + d.Source))
	}
	return b.String()
}

func (a App) renderPrayers() string {
	var b strings.Builder
	b.WriteString(notice(a.prayers.Notice, a.width))
	b.WriteString(Heading.Render("Prayers — " + a.Category()))
	b.WriteString("\n")

	if len(a.prayers.Prayers) == 0 {
		if a.loading {
			return b.String() + a.spin.View() + " Loading prayers..."
		}
		return b.String() + Body.Render("No prayers in this category")
	}

	for i, p := range a.prayers.Prayers {
		mark := "  "
		if a.favorites[p.Name] {
			mark = FavoriteMark.Render("★ ")
		}
		if i == a.cursor {
			b.WriteString(mark + SelectedItem.Render(p.Name))
		} else {
			b.WriteString(mark + NormalItem.Render(p.Name))
		}
		b.WriteString("\n")
	}

	if a.cursor < len(a.prayers.Prayers) {
		p := a.prayers.Prayers[a.cursor]
		b.WriteString("\n")
		b.WriteString(Body.Width(a.width - 2).Render(p.Text))
		b.WriteString("\n")
		if p.Source != "" {
			b.WriteString(Attribution.Render("Source: " + p.Source))
		}
	}
	return b.String()
}

func (a App) renderSettings() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}

	n := a.notifications
	var b strings.Builder
	b.WriteString(Heading.Render("Notifications"))
	b.WriteString("\n")
	b.WriteString(NormalItem.Render(fmt.Sprintf("[d] Daily readings: %s at %02d:%02d",
		onOff(n.DailyEnabled), n.DailyHour, n.DailyMinute)))
	b.WriteString("\n")
	b.WriteString(NormalItem.Render(fmt.Sprintf("[p] Prayer reminders: %s (%02d:%02d and %02d:%02d)",
		onOff(n.RemindersEnabled), n.MorningHour, n.MorningMinute, n.EveningHour, n.EveningMinute)))
	b.WriteString("\n")

	b.WriteString(Heading.Render("Server"))
	b.WriteString("\n")
	switch {
	case !a.healthKnown:
		b.WriteString(NormalItem.Render("Checking..."))
	case a.healthOK:
		b.WriteString(NormalItem.Render("Connected"))
	default:
		b.WriteString(NoticeBar.Render("Unreachable — showing cached data"))
	}
	b.WriteString("\n")
	return b.String()
}

func (a App) renderStatusBar() string {
	hint := func(key, desc string) string {
		return StatusBarKey.Render(key) + " " + desc
	}

	parts := []string{a.date}
	switch a.tab {
	case TabReadings, TabCalendar:
		parts = append(parts, hint("←/→", "day"), hint("t", "today"))
	case TabPrayers:
		parts = append(parts, hint("c", "category"), hint("f", "favorite"))
	case TabSettings:
		parts = append(parts, hint("d/p", "toggle"))
	}
	parts = append(parts, hint("tab", "switch"), hint("r", "refresh"), hint("q", "quit"))

	if a.loading {
		parts = append(parts, a.spin.View())
	}
	if a.readings.Provenance != liturgy.Live && a.tab == TabReadings && !a.readings.Readings.IsZero() {
		parts = append(parts, "["+a.readings.Provenance.String()+"]")
	}

	return StatusBar.Width(a.width).Render(strings.Join(parts, "  "))
}
