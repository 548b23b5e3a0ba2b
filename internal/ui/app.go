package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmcarver/missal/internal/config"
	"github.com/jmcarver/missal/internal/liturgy"
	"github.com/jmcarver/missal/internal/model"
)

// Tab identifies one of the four top-level views.
type Tab int

const (
	TabReadings Tab = iota
	TabCalendar
	TabPrayers
	TabSettings
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabReadings:
		return "Readings"
	case TabCalendar:
		return "Calendar"
	case TabPrayers:
		return "Prayers"
	case TabSettings:
		return "Settings"
	default:
		return "?"
	}
}

// prayerCategories is the cycle order for the prayers tab. Seasonal
// categories resolve through the seasonal endpoint.
var prayerCategories = []string{
	model.CategoryCommon,
	model.CategoryMarian,
	model.CategoryPenitential,
	model.CategoryEucharistic,
	"advent",
	"christmas",
	"lent",
	"easter",
}

// Commands are the side-effecting operations injected into the App.
// The App never touches the resolver or store directly; it receives
// results via messages.
type Commands struct {
	LoadReadings   func(date string) tea.Cmd
	LoadDay        func(date string) tea.Cmd
	LoadPrayers    func(category string) tea.Cmd
	LoadFavorites  func() tea.Cmd
	ToggleFavorite func(name string) tea.Cmd
	SaveSettings   func(n config.Notifications) tea.Cmd
	CheckHealth    func() tea.Cmd
}

// App is the root Bubble Tea model.
type App struct {
	cmds Commands

	tab  Tab
	date string // date shown on the readings and calendar tabs

	readings liturgy.ReadingsResult
	day      liturgy.DayResult

	category  int // index into prayerCategories
	prayers   liturgy.PrayersResult
	cursor    int
	favorites map[string]bool

	notifications config.Notifications
	healthKnown   bool
	healthOK      bool

	spin    spinner.Model
	loading bool
	width   int
	height  int
	ready   bool
}

// NewApp creates the root model. The notification settings seed the
// settings tab; everything else loads via commands.
func NewApp(cmds Commands, n config.Notifications) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{
		cmds:          cmds,
		date:          model.FormatDate(time.Now()),
		favorites:     map[string]bool{},
		notifications: n,
		spin:          sp,
	}
}

// Init kicks off the initial loads for today's data.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spin.Tick}
	if a.cmds.LoadReadings != nil {
		a.loading = true
		cmds = append(cmds, a.cmds.LoadReadings(a.date))
	}
	if a.cmds.LoadDay != nil {
		cmds = append(cmds, a.cmds.LoadDay(a.date))
	}
	if a.cmds.LoadPrayers != nil {
		cmds = append(cmds, a.cmds.LoadPrayers(prayerCategories[a.category]))
	}
	if a.cmds.LoadFavorites != nil {
		cmds = append(cmds, a.cmds.LoadFavorites())
	}
	if a.cmds.CheckHealth != nil {
		cmds = append(cmds, a.cmds.CheckHealth())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case ReadingsLoaded:
		// Drop stale results from dates the user has already left.
		if msg.Date == a.date {
			a.readings = msg.Result
			a.loading = false
		}
		return a, nil

	case DayLoaded:
		if msg.Date == a.date {
			a.day = msg.Result
			a.loading = false
		}
		return a, nil

	case PrayersLoaded:
		if msg.Category == prayerCategories[a.category] {
			a.prayers = msg.Result
			a.loading = false
			if a.cursor >= len(a.prayers.Prayers) {
				a.cursor = 0
			}
		}
		return a, nil

	case FavoritesLoaded:
		if msg.Err == nil {
			a.favorites = map[string]bool{}
			for _, name := range msg.Names {
				a.favorites[name] = true
			}
		}
		return a, nil

	case FavoriteToggled:
		if msg.Err == nil {
			if msg.Favorite {
				a.favorites[msg.Name] = true
			} else {
				delete(a.favorites, msg.Name)
			}
		}
		return a, nil

	case SettingsSaved:
		if msg.Err == nil {
			a.notifications = msg.Notifications
		}
		return a, nil

	case HealthChecked:
		a.healthKnown = true
		a.healthOK = msg.OK
		return a, nil
	}

	return a, nil
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.tab = (a.tab + 1) % tabCount
		return a, nil

	case "shift+tab":
		a.tab = (a.tab + tabCount - 1) % tabCount
		return a, nil

	case "1":
		a.tab = TabReadings
		return a, nil
	case "2":
		a.tab = TabCalendar
		return a, nil
	case "3":
		a.tab = TabPrayers
		return a, nil
	case "4":
		a.tab = TabSettings
		return a, nil

	case "left", "h":
		if a.tab == TabReadings || a.tab == TabCalendar {
			return a.gotoDate(a.shiftDate(-1))
		}
		return a, nil

	case "right", "l":
		if a.tab == TabReadings || a.tab == TabCalendar {
			return a.gotoDate(a.shiftDate(1))
		}
		return a, nil

	case "t":
		if a.tab == TabReadings || a.tab == TabCalendar {
			return a.gotoDate(model.FormatDate(time.Now()))
		}
		return a, nil

	case "j", "down":
		if a.tab == TabPrayers && a.cursor < len(a.prayers.Prayers)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.tab == TabPrayers && a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "c":
		if a.tab == TabPrayers {
			a.category = (a.category + 1) % len(prayerCategories)
			a.cursor = 0
			if a.cmds.LoadPrayers != nil {
				a.loading = true
				return a, a.cmds.LoadPrayers(prayerCategories[a.category])
			}
		}
		return a, nil

	case "f":
		if a.tab == TabPrayers && a.cursor < len(a.prayers.Prayers) {
			name := a.prayers.Prayers[a.cursor].Name
			if a.cmds.ToggleFavorite != nil {
				return a, a.cmds.ToggleFavorite(name)
			}
		}
		return a, nil

	case "d":
		if a.tab == TabSettings {
			n := a.notifications
			n.DailyEnabled = !n.DailyEnabled
			if a.cmds.SaveSettings != nil {
				return a, a.cmds.SaveSettings(n)
			}
		}
		return a, nil

	case "p":
		if a.tab == TabSettings {
			n := a.notifications
			n.RemindersEnabled = !n.RemindersEnabled
			if a.cmds.SaveSettings != nil {
				return a, a.cmds.SaveSettings(n)
			}
		}
		return a, nil

	case "r":
		return a.refresh()
	}

	return a, nil
}

// shiftDate moves the viewed date by days, falling back to today when
// the current value fails to parse.
func (a App) shiftDate(days int) string {
	t, err := model.ParseDate(a.date)
	if err != nil {
		t = time.Now()
	}
	return model.FormatDate(t.AddDate(0, 0, days))
}

func (a App) gotoDate(date string) (tea.Model, tea.Cmd) {
	a.date = date
	a.readings = liturgy.ReadingsResult{}
	a.day = liturgy.DayResult{}
	var cmds []tea.Cmd
	if a.cmds.LoadReadings != nil {
		a.loading = true
		cmds = append(cmds, a.cmds.LoadReadings(date))
	}
	if a.cmds.LoadDay != nil {
		cmds = append(cmds, a.cmds.LoadDay(date))
	}
	return a, tea.Batch(cmds...)
}

func (a App) refresh() (tea.Model, tea.Cmd) {
	switch a.tab {
	case TabReadings, TabCalendar:
		return a.gotoDate(a.date)
	case TabPrayers:
		if a.cmds.LoadPrayers != nil {
			a.loading = true
			return a, a.cmds.LoadPrayers(prayerCategories[a.category])
		}
	case TabSettings:
		if a.cmds.CheckHealth != nil {
			return a, a.cmds.CheckHealth()
		}
	}
	return a, nil
}

// Tab returns the active tab (for testing).
func (a App) ActiveTab() Tab { return a.tab }

// Date returns the viewed date (for testing).
func (a App) Date() string { return a.date }

// Cursor returns the prayer cursor position (for testing).
func (a App) Cursor() int { return a.cursor }

// Category returns the active prayer category (for testing).
func (a App) Category() string { return prayerCategories[a.category] }
