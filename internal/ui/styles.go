package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmcarver/missal/internal/model"
)

// Colors used in the application.
var (
	colorAccent    = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorWarn      = lipgloss.Color("214") // Amber
)

// Vestment color to terminal color. Rose and black fall back to
// readable approximations.
var liturgicalColors = map[model.Color]lipgloss.Color{
	model.ColorGreen:  lipgloss.Color("34"),
	model.ColorPurple: lipgloss.Color("93"),
	model.ColorWhite:  lipgloss.Color("255"),
	model.ColorRed:    lipgloss.Color("160"),
	model.ColorRose:   lipgloss.Color("211"),
	model.ColorBlack:  lipgloss.Color("240"),
}

// LiturgicalStyle returns a style tinted with the day's vestment color.
func LiturgicalStyle(c model.Color) lipgloss.Style {
	tc, ok := liturgicalColors[c]
	if !ok {
		tc = liturgicalColors[model.ColorGreen]
	}
	return lipgloss.NewStyle().Foreground(tc).Bold(true)
}

// TabActive style for the selected tab label.
var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorAccent).
	Padding(0, 1)

// TabInactive style for unselected tab labels.
var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// Heading style for reading and prayer titles.
var Heading = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	MarginTop(1)

// Citation style for scripture references.
var Citation = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true)

// Body style for reading and prayer texts.
var Body = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	PaddingLeft(1)

// SelectedItem style for the highlighted prayer row.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorAccent).
	Padding(0, 1)

// NormalItem style for unselected prayer rows.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Padding(0, 1)

// FavoriteMark style for the favorite indicator.
var FavoriteMark = lipgloss.NewStyle().
	Foreground(lipgloss.Color("220"))

// NoticeBar style for fallback notices (cached or sample data).
var NoticeBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorWarn).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in the status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(lipgloss.Color("212")).
	Bold(true)

// Attribution style for source attribution lines.
var Attribution = lipgloss.NewStyle().
	Foreground(colorMuted).
	MarginTop(1)
