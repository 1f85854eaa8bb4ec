package stats

import (
	"sort"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// PlayerRow is one player's aggregate across the filtered matches: a
// points/matches bucket per format plus the Total pseudo-format.
type PlayerRow struct {
	Name    string // canonical "Surname Given" key
	Display string // "Given Surname"
	Team    model.Team

	Foursome Bucket
	Fourball Bucket
	Single   Bucket
	Total    Bucket
}

// BucketFor returns the row's bucket for a format; FormatUnknown selects
// the Total.
func (r *PlayerRow) BucketFor(f model.Format) Bucket {
	switch f {
	case model.Foursome:
		return r.Foursome
	case model.Fourball:
		return r.Fourball
	case model.Single:
		return r.Single
	default:
		return r.Total
	}
}

func (r *PlayerRow) bucketPtr(f model.Format) *Bucket {
	switch f {
	case model.Foursome:
		return &r.Foursome
	case model.Fourball:
		return &r.Fourball
	case model.Single:
		return &r.Single
	default:
		return &r.Total
	}
}

// ComputeStats folds the filtered match rows into per-player aggregates.
// Left-side players accumulate LeftPoints, right-side players RightPoints;
// every occupied slot counts one match for its player. A non-empty team
// selection drops players whose (filter-invariant) team is not selected.
//
// Identical inputs always yield identical output: rows come back ordered
// by collated display name, independent of input row order.
func ComputeStats(
	matches []model.Match,
	years model.YearSet,
	formats model.FormatSet,
	teams model.TeamSet,
	teamMap map[string]model.Team,
) []PlayerRow {
	filtered := FilterMatches(matches, years, formats)
	if len(filtered) == 0 {
		return nil
	}

	acc := make(map[string]*PlayerRow)
	row := func(name string, team model.Team) *PlayerRow {
		r, ok := acc[name]
		if !ok {
			r = &PlayerRow{Name: name, Display: GivenFirst(name), Team: team}
			acc[name] = r
		}
		return r
	}

	for i := range filtered {
		m := &filtered[i]
		if m.Format == model.FormatUnknown {
			continue
		}

		for _, raw := range m.Left {
			nm, ok := CleanName(raw)
			if !ok {
				continue
			}
			team := teamOf(teamMap, nm, model.Lefties)
			if len(teams) > 0 && !teams[team] {
				continue
			}
			row(nm, team).bucketPtr(m.Format).add(m.LeftPoints)
		}
		for _, raw := range m.Right {
			nm, ok := CleanName(raw)
			if !ok {
				continue
			}
			team := teamOf(teamMap, nm, model.Righties)
			if len(teams) > 0 && !teams[team] {
				continue
			}
			row(nm, team).bucketPtr(m.Format).add(m.RightPoints)
		}
	}

	rows := make([]PlayerRow, 0, len(acc))
	for _, r := range acc {
		r.Total.merge(r.Foursome)
		r.Total.merge(r.Fourball)
		r.Total.merge(r.Single)
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return Less(rows[i].Display, rows[j].Display)
	})
	return rows
}

// YearsPlayed maps each player's display name to the number of distinct
// years they appeared in, across the COMPLETE table. Like the team map it
// is filter-invariant; it backs the "hide single-tournament players" view.
func YearsPlayed(matches []model.Match) map[string]int {
	years := make(map[string]map[int]bool)
	for i := range matches {
		m := &matches[i]
		for _, raw := range [4]string{m.Left[0], m.Left[1], m.Right[0], m.Right[1]} {
			nm, ok := CleanName(raw)
			if !ok {
				continue
			}
			disp := GivenFirst(nm)
			if years[disp] == nil {
				years[disp] = make(map[int]bool)
			}
			years[disp][m.Year] = true
		}
	}
	out := make(map[string]int, len(years))
	for disp, ys := range years {
		out[disp] = len(ys)
	}
	return out
}
