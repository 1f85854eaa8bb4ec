package stats

import "github.com/Jasen77/lefties-righties/internal/model"

// FilterMatches selects the match rows within the year and format
// selections. The empty/all asymmetry is deliberate and load-bearing:
// a nil set is the all-sentinel and places no restriction, while a non-nil
// EMPTY set means the user deselected everything and the result is empty.
func FilterMatches(matches []model.Match, years model.YearSet, formats model.FormatSet) []model.Match {
	if years != nil && len(years) == 0 {
		return nil
	}
	if formats != nil && len(formats) == 0 {
		return nil
	}

	var out []model.Match
	for _, m := range matches {
		if years != nil && !years[m.Year] {
			continue
		}
		if formats != nil && !formats[m.Format] {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PlayerMatches returns the rows of the already-filtered table in which the
// player occupies any slot.
func PlayerMatches(matches []model.Match, player string) []model.Match {
	var out []model.Match
	for _, m := range matches {
		if m.HasPlayer(player) {
			out = append(out, m)
		}
	}
	return out
}
