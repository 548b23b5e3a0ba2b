// Package model defines the liturgical domain records exchanged with the
// missal API and cached locally.
//
// Field names and JSON tags follow the wire schema exactly (snake_case).
// Records are plain values: construct once, never mutate.
package model

// Season is a liturgical season name as the API reports it.
type Season string

const (
	SeasonAdvent        Season = "Advent"
	SeasonChristmas     Season = "Christmas"
	SeasonOrdinaryTime  Season = "Ordinary Time"
	SeasonLent          Season = "Lent"
	SeasonEasterTriduum Season = "Easter Triduum"
	SeasonEaster        Season = "Easter"
)

// Color returns the default liturgical color for the season.
// Individual celebrations may override it (a martyr's memorial is red
// in any season); that override arrives on the Celebration itself.
func (s Season) Color() Color {
	switch s {
	case SeasonAdvent, SeasonLent:
		return ColorPurple
	case SeasonChristmas, SeasonEaster:
		return ColorWhite
	case SeasonEasterTriduum:
		return ColorRed
	default:
		return ColorGreen
	}
}

// Rank is the precedence tier of a celebration.
type Rank string

const (
	RankSolemnity        Rank = "Solemnity"
	RankFeast            Rank = "Feast"
	RankMemorial         Rank = "Memorial"
	RankOptionalMemorial Rank = "Optional Memorial"
	RankSunday           Rank = "Sunday"
	RankWeekday          Rank = "Weekday"
)

// Precedence returns the ordering value for a rank; lower wins.
// Solemnity > Feast > Memorial > Optional Memorial > Sunday > Weekday.
// Unknown ranks sort last so a schema addition never outranks a solemnity.
func (r Rank) Precedence() int {
	switch r {
	case RankSolemnity:
		return 0
	case RankFeast:
		return 1
	case RankMemorial:
		return 2
	case RankOptionalMemorial:
		return 3
	case RankSunday:
		return 4
	case RankWeekday:
		return 5
	default:
		return 6
	}
}

// Color is a liturgical vestment color.
type Color string

const (
	ColorWhite  Color = "White"
	ColorRed    Color = "Red"
	ColorGreen  Color = "Green"
	ColorPurple Color = "Purple"
	ColorRose   Color = "Rose"
	ColorBlack  Color = "Black"
)

// Reading is a single scripture reading.
type Reading struct {
	Reference string `json:"reference"`
	Citation  string `json:"citation"`
	Text      string `json:"text,omitempty"`
	ShortText string `json:"short_text,omitempty"`
	Source    string `json:"source"`
}

// Psalm is a responsorial psalm with its refrain and verses.
type Psalm struct {
	Reference string   `json:"reference"`
	Refrain   string   `json:"refrain,omitempty"`
	Verses    []string `json:"verses,omitempty"`
	Source    string   `json:"source"`
}

// DailyReadings holds the Mass readings for one calendar date.
// Date ("YYYY-MM-DD") is the natural key; at most one record per date
// is ever cached.
type DailyReadings struct {
	Date              string   `json:"date"`
	FirstReading      *Reading `json:"first_reading,omitempty"`
	ResponsorialPsalm *Psalm   `json:"responsorial_psalm,omitempty"`
	SecondReading     *Reading `json:"second_reading,omitempty"`
	GospelAcclamation string   `json:"gospel_acclamation,omitempty"`
	Gospel            *Reading `json:"gospel,omitempty"`
	Source            string   `json:"source"`
	LastUpdated       string   `json:"last_updated"`
}

// IsZero reports whether the record is empty (no date assigned).
func (d DailyReadings) IsZero() bool { return d.Date == "" }

// Celebration is a single observance on a liturgical day.
type Celebration struct {
	Name           string `json:"name"`
	Rank           Rank   `json:"rank"`
	Color          Color  `json:"color"`
	Description    string `json:"description,omitempty"`
	ProperReadings bool   `json:"proper_readings"`
}

// LiturgicalDay is a calendar date annotated with season, color, and
// the celebrations observed on it. Date is the natural key.
type LiturgicalDay struct {
	Date               string         `json:"date"`
	Season             Season         `json:"season"`
	SeasonWeek         int            `json:"season_week,omitempty"`
	Weekday            string         `json:"weekday"`
	Celebrations       []Celebration  `json:"celebrations"`
	PrimaryCelebration *Celebration   `json:"primary_celebration,omitempty"`
	Color              Color          `json:"color"`
	Readings           *DailyReadings `json:"readings,omitempty"`
	Source             string         `json:"source"`
	LastUpdated        string         `json:"last_updated"`
}

// IsZero reports whether the record is empty (no date assigned).
func (d LiturgicalDay) IsZero() bool { return d.Date == "" }

// Primary returns the celebration to display for the day: the explicit
// primary if the API set one, otherwise the highest-precedence entry in
// Celebrations (first listed wins on a rank tie). Nil when the day has
// no celebrations at all.
func (d LiturgicalDay) Primary() *Celebration {
	if d.PrimaryCelebration != nil {
		return d.PrimaryCelebration
	}
	var best *Celebration
	for i := range d.Celebrations {
		c := &d.Celebrations[i]
		if best == nil || c.Rank.Precedence() < best.Rank.Precedence() {
			best = c
		}
	}
	return best
}

// Prayer is a single prayer text. Name is unique within a category.
type Prayer struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Text            string `json:"text"`
	Source          string `json:"source"`
	Language        string `json:"language"`
	CopyrightNotice string `json:"copyright_notice,omitempty"`
}

// Prayer categories used by the API. Seasonal prayers additionally use
// the lowercase season name ("advent", "christmas", "lent", "easter").
const (
	CategoryCommon      = "common"
	CategoryMarian      = "marian"
	CategoryPenitential = "penitential"
	CategoryEucharistic = "eucharistic"
)

// ReadingsResponse is the API envelope for readings endpoints.
type ReadingsResponse struct {
	Readings          DailyReadings `json:"readings"`
	Success           bool          `json:"success"`
	SourceAttribution string        `json:"source_attribution"`
}

// CalendarResponse is the API envelope for calendar endpoints.
type CalendarResponse struct {
	LiturgicalDay     LiturgicalDay `json:"liturgical_day"`
	Success           bool          `json:"success"`
	SourceAttribution string        `json:"source_attribution"`
}

// PrayersResponse is the API envelope for prayer endpoints.
type PrayersResponse struct {
	Prayers           []Prayer `json:"prayers"`
	Success           bool     `json:"success"`
	SourceAttribution string   `json:"source_attribution"`
}
