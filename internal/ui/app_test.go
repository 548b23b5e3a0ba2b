package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmcarver/missal/internal/config"
	"github.com/jmcarver/missal/internal/liturgy"
	"github.com/jmcarver/missal/internal/model"
)

// mockCmds records which command functions were called and with what.
type mockCmds struct {
	readingsDates []string
	dayDates      []string
	categories    []string
	toggledNames  []string
	savedSettings []config.Notifications
	healthChecks  int
}

func (m *mockCmds) commands() Commands {
	return Commands{
		LoadReadings: func(date string) tea.Cmd {
			m.readingsDates = append(m.readingsDates, date)
			return nil
		},
		LoadDay: func(date string) tea.Cmd {
			m.dayDates = append(m.dayDates, date)
			return nil
		},
		LoadPrayers: func(category string) tea.Cmd {
			m.categories = append(m.categories, category)
			return nil
		},
		LoadFavorites: func() tea.Cmd { return nil },
		ToggleFavorite: func(name string) tea.Cmd {
			m.toggledNames = append(m.toggledNames, name)
			return nil
		},
		SaveSettings: func(n config.Notifications) tea.Cmd {
			m.savedSettings = append(m.savedSettings, n)
			return nil
		},
		CheckHealth: func() tea.Cmd {
			m.healthChecks++
			return nil
		},
	}
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestAppInitLoadsToday(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(mock.commands(), config.Default().Notifications)

	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return a command batch")
	}
	if len(mock.readingsDates) != 1 || mock.readingsDates[0] != app.Date() {
		t.Errorf("readings loads = %v, want one load for %s", mock.readingsDates, app.Date())
	}
	if len(mock.dayDates) != 1 {
		t.Errorf("day loads = %v", mock.dayDates)
	}
	if len(mock.categories) != 1 || mock.categories[0] != "common" {
		t.Errorf("prayer loads = %v, want initial common load", mock.categories)
	}
	if mock.healthChecks != 1 {
		t.Errorf("health checks = %d", mock.healthChecks)
	}
}

func TestTabCycling(t *testing.T) {
	app := NewApp(Commands{}, config.Notifications{})

	model_, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	a := model_.(App)
	if a.ActiveTab() != TabCalendar {
		t.Errorf("tab after one cycle = %v", a.ActiveTab())
	}

	model_, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	a = model_.(App)
	if a.ActiveTab() != TabReadings {
		t.Errorf("tab after cycling back = %v", a.ActiveTab())
	}

	model_, _ = a.Update(key('3'))
	a = model_.(App)
	if a.ActiveTab() != TabPrayers {
		t.Errorf("tab after '3' = %v", a.ActiveTab())
	}
}

func TestDateNavigationTriggersLoads(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(mock.commands(), config.Notifications{})

	model_, _ := app.Update(key('l'))
	a := model_.(App)
	next := a.Date()
	if len(mock.readingsDates) != 1 || mock.readingsDates[0] != next {
		t.Errorf("right arrow should load the next date, loads = %v", mock.readingsDates)
	}
	if len(mock.dayDates) != 1 {
		t.Errorf("calendar should load alongside readings, loads = %v", mock.dayDates)
	}

	model_, _ = a.Update(key('h'))
	a = model_.(App)
	model_, _ = a.Update(key('t'))
	a = model_.(App)
	if a.Date() != app.Date() {
		t.Errorf("'t' should return to today: %s vs %s", a.Date(), app.Date())
	}
}

func TestStaleReadingsDropped(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(mock.commands(), config.Notifications{})

	model_, _ := app.Update(key('l'))
	a := model_.(App)

	// A late result for the date we navigated away from must not land.
	stale := ReadingsLoaded{
		Date:   app.Date(),
		Result: liturgy.ReadingsResult{Readings: model.DailyReadings{Date: app.Date()}},
	}
	model_, _ = a.Update(stale)
	a = model_.(App)
	if !a.readings.Readings.IsZero() {
		t.Errorf("stale result was applied: %+v", a.readings)
	}

	fresh := ReadingsLoaded{
		Date:   a.Date(),
		Result: liturgy.ReadingsResult{Readings: model.DailyReadings{Date: a.Date()}},
	}
	model_, _ = a.Update(fresh)
	a = model_.(App)
	if a.readings.Readings.Date != a.Date() {
		t.Errorf("fresh result was not applied: %+v", a.readings)
	}
}

func TestPrayerNavigationAndFavorites(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(mock.commands(), config.Notifications{})

	model_, _ := app.Update(key('3'))
	a := model_.(App)

	loaded := PrayersLoaded{
		Category: "common",
		Result: liturgy.PrayersResult{Prayers: []model.Prayer{
			{Name: "Our Father", Category: "common"},
			{Name: "Hail Mary", Category: "common"},
		}},
	}
	model_, _ = a.Update(loaded)
	a = model_.(App)

	model_, _ = a.Update(key('j'))
	a = model_.(App)
	if a.Cursor() != 1 {
		t.Errorf("cursor = %d after j", a.Cursor())
	}
	model_, _ = a.Update(key('j'))
	a = model_.(App)
	if a.Cursor() != 1 {
		t.Errorf("cursor should clamp at the end, got %d", a.Cursor())
	}

	model_, _ = a.Update(key('f'))
	a = model_.(App)
	if len(mock.toggledNames) != 1 || mock.toggledNames[0] != "Hail Mary" {
		t.Errorf("toggles = %v, want the selected prayer", mock.toggledNames)
	}

	model_, _ = a.Update(FavoriteToggled{Name: "Hail Mary", Favorite: true})
	a = model_.(App)
	if !a.favorites["Hail Mary"] {
		t.Error("favorite flag not applied")
	}
	model_, _ = a.Update(FavoriteToggled{Name: "Hail Mary", Favorite: false})
	a = model_.(App)
	if a.favorites["Hail Mary"] {
		t.Error("favorite flag not cleared")
	}
}

func TestCategoryCycleReloads(t *testing.T) {
	mock := &mockCmds{}
	app := NewApp(mock.commands(), config.Notifications{})

	model_, _ := app.Update(key('3'))
	a := model_.(App)
	model_, _ = a.Update(key('c'))
	a = model_.(App)

	if a.Category() != "marian" {
		t.Errorf("category after cycle = %q", a.Category())
	}
	if len(mock.categories) != 1 || mock.categories[0] != "marian" {
		t.Errorf("prayer loads = %v", mock.categories)
	}
}

func TestSettingsTogglesSave(t *testing.T) {
	mock := &mockCmds{}
	n := config.Default().Notifications
	app := NewApp(mock.commands(), n)

	model_, _ := app.Update(key('4'))
	a := model_.(App)
	model_, _ = a.Update(key('p'))
	a = model_.(App)

	if len(mock.savedSettings) != 1 {
		t.Fatalf("saves = %d, want 1", len(mock.savedSettings))
	}
	if !mock.savedSettings[0].RemindersEnabled {
		t.Error("toggle should flip reminders on")
	}
	// Displayed settings update only once the save is confirmed.
	if a.notifications.RemindersEnabled {
		t.Error("settings applied before SettingsSaved arrived")
	}
	model_, _ = a.Update(SettingsSaved{Notifications: mock.savedSettings[0]})
	a = model_.(App)
	if !a.notifications.RemindersEnabled {
		t.Error("SettingsSaved not applied")
	}
}

func TestViewRendersAfterWindowSize(t *testing.T) {
	app := NewApp(Commands{}, config.Default().Notifications)

	if got := app.View(); got != "Loading..." {
		t.Errorf("pre-size view = %q", got)
	}

	model_, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	a := model_.(App)
	if a.View() == "Loading..." {
		t.Error("view should render once sized")
	}
}
