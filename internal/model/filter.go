package model

import (
	"strconv"
	"strings"
)

// YearSet selects tournament years. A nil set is the all-sentinel (no
// restriction); a non-nil empty set means the user deselected everything
// and nothing matches. The two must never be conflated.
type YearSet map[int]bool

// FormatSet selects game formats, with the same nil/empty semantics as
// YearSet.
type FormatSet map[Format]bool

// TeamSet selects teams. Unlike years and formats, an empty team selection
// places no restriction — team is a property of the player, not the match,
// and deselecting both teams would otherwise silently blank every view.
type TeamSet map[Team]bool

// AllFormats returns a set holding every format.
func AllFormats() FormatSet {
	return FormatSet{Foursome: true, Fourball: true, Single: true}
}

// BothTeams returns a set holding both teams.
func BothTeams() TeamSet {
	return TeamSet{Lefties: true, Righties: true}
}

// FilterState is the explicit filter value threaded through every
// aggregation call. It is owned by the command layer: commands read user
// input, update the value and persist a snapshot; aggregation functions
// only ever receive it by parameter.
type FilterState struct {
	// AllYears marks the "no restriction on tournaments" state,
	// distinct from every tournament happening to be selected.
	AllYears bool

	// SelectedLabels holds tournament labels ("Year - Resort") when
	// AllYears is false.
	SelectedLabels []string

	Teams   []Team
	Formats []Format

	// SelectedPlayer is the last-viewed player's display name, "" if none.
	SelectedPlayer string
}

// DefaultFilter returns the session-start filter: every tournament, both
// teams and all three formats selected.
func DefaultFilter(table *Table) FilterState {
	labels := make([]string, 0, len(table.Tournaments))
	for _, tr := range table.Tournaments {
		labels = append(labels, tr.Label())
	}
	return FilterState{
		AllYears:       true,
		SelectedLabels: labels,
		Teams:          []Team{Lefties, Righties},
		Formats:        []Format{Foursome, Fourball, Single},
	}
}

// YearSet derives the year selection. AllYears yields the all-sentinel;
// otherwise the leading integer of each selected label is parsed and
// unparsable labels are skipped.
func (f *FilterState) YearSet() YearSet {
	if f.AllYears {
		return nil
	}
	set := make(YearSet, len(f.SelectedLabels))
	for _, lbl := range f.SelectedLabels {
		if y, ok := labelYear(lbl); ok {
			set[y] = true
		}
	}
	return set
}

// FormatSet derives the format selection; the result is never nil so an
// empty selection keeps its "nothing matches" meaning.
func (f *FilterState) FormatSet() FormatSet {
	set := make(FormatSet, len(f.Formats))
	for _, fm := range f.Formats {
		set[fm] = true
	}
	return set
}

// TeamSet derives the team selection.
func (f *FilterState) TeamSet() TeamSet {
	set := make(TeamSet, len(f.Teams))
	for _, t := range f.Teams {
		set[t] = true
	}
	return set
}

// labelYear parses the year prefix of a "Year - Resort" label.
func labelYear(label string) (int, bool) {
	head, _, _ := strings.Cut(label, " - ")
	y, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return y, true
}
