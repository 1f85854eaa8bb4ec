package model

import (
	"fmt"
	"sort"
	"strings"
)

// Team represents one side of the series.
type Team int

const (
	TeamNone Team = iota
	Lefties
	Righties
)

func (t Team) String() string {
	switch t {
	case Lefties:
		return "Lefties"
	case Righties:
		return "Righties"
	default:
		return ""
	}
}

// ParseTeam recognizes a team label, case-insensitively. Anything else
// (including the blank winner cell of a tied match) maps to TeamNone.
func ParseTeam(s string) Team {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lefties":
		return Lefties
	case "righties":
		return Righties
	default:
		return TeamNone
	}
}

// Opponent returns the other side.
func (t Team) Opponent() Team {
	switch t {
	case Lefties:
		return Righties
	case Righties:
		return Lefties
	default:
		return TeamNone
	}
}

// Format is the game format of a match.
type Format int

const (
	FormatUnknown Format = iota
	Foursome
	Fourball
	Single
)

// FormatOrder is the canonical display order of the three formats.
var FormatOrder = [3]Format{Foursome, Fourball, Single}

func (f Format) String() string {
	switch f {
	case Foursome:
		return "Foursome"
	case Fourball:
		return "Fourball"
	case Single:
		return "Single"
	default:
		return ""
	}
}

// ParseFormat recognizes a format label, case-insensitively.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foursome":
		return Foursome
	case "fourball":
		return Fourball
	case "single":
		return Single
	default:
		return FormatUnknown
	}
}

// Pairs reports whether the format puts two players on each side.
func (f Format) Pairs() bool {
	return f == Foursome || f == Fourball
}

// Match is one row of the match table. Player slots hold canonical
// "Surname Given" names; slots unused by the format are empty strings.
type Match struct {
	Year   int
	Day    int
	Number int
	Format Format

	Left  [2]string
	Right [2]string

	LeftPoints  float64
	RightPoints float64

	Winner Team
}

// SidePlayers returns the non-blank player names on the given side.
func (m *Match) SidePlayers(t Team) []string {
	slots := m.Left
	if t == Righties {
		slots = m.Right
	}
	var out []string
	for _, nm := range slots {
		if nm != "" {
			out = append(out, nm)
		}
	}
	return out
}

// SidePoints returns the points awarded to the given side.
func (m *Match) SidePoints(t Team) float64 {
	if t == Righties {
		return m.RightPoints
	}
	return m.LeftPoints
}

// HasPlayer reports whether the name occupies any slot of the match.
func (m *Match) HasPlayer(name string) bool {
	return m.OnSide(name, Lefties) || m.OnSide(name, Righties)
}

// OnSide reports whether the name occupies a slot on the given side.
func (m *Match) OnSide(name string, t Team) bool {
	slots := m.Left
	if t == Righties {
		slots = m.Right
	}
	return slots[0] == name || slots[1] == name
}

// Tournament is one row of the tournament table, keyed by year.
type Tournament struct {
	Year         int
	Resort       string
	LeftCaptain  string
	RightCaptain string
	Winner       Team
	Logo         string
	Photo        string

	// Running series standing after this tournament.
	StandingLeft  float64
	StandingRight float64
}

// Label is the tournament's filter label, "Year - Resort".
func (t Tournament) Label() string {
	return fmt.Sprintf("%d - %s", t.Year, t.Resort)
}

// PlayerInfo is one row of the optional players table.
type PlayerInfo struct {
	Name     string // canonical "Surname Given"
	Portrait string // URL or relative path, may be empty
}

// Table is an immutable snapshot of the loaded spreadsheet. Reloads build a
// fresh Table and swap the whole reference; a Table is never mutated.
type Table struct {
	Matches     []Match
	Tournaments []Tournament
	Players     []PlayerInfo
}

// ResortByYear maps tournament year to resort name.
func (t *Table) ResortByYear() map[int]string {
	m := make(map[int]string, len(t.Tournaments))
	for _, tr := range t.Tournaments {
		m[tr.Year] = tr.Resort
	}
	return m
}

// Years returns all tournament years, newest first.
func (t *Table) Years() []int {
	years := make([]int, 0, len(t.Tournaments))
	for _, tr := range t.Tournaments {
		years = append(years, tr.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// TournamentByYear returns the tournament for the year, or nil.
func (t *Table) TournamentByYear(year int) *Tournament {
	for i := range t.Tournaments {
		if t.Tournaments[i].Year == year {
			return &t.Tournaments[i]
		}
	}
	return nil
}

// Portrait returns the portrait reference for a canonical player name,
// or "" when the players table has no entry.
func (t *Table) Portrait(name string) string {
	for _, p := range t.Players {
		if p.Name == name {
			return p.Portrait
		}
	}
	return ""
}
