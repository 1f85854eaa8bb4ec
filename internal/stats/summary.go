package stats

import (
	"sort"
	"strconv"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// SummaryRow is one line of a per-format or per-tournament player summary.
type SummaryRow struct {
	Label string
	Bucket
}

// FormatSummary folds the player's matches into one row per format, in
// canonical format order, plus a combined total. Formats the player never
// played in the filtered matches are omitted.
func FormatSummary(matches []model.Match, player string, team model.Team) ([]SummaryRow, Bucket) {
	var buckets [len(model.FormatOrder)]Bucket
	var total Bucket

	for i := range matches {
		m := &matches[i]
		_, _, ok := playerSide(m, player, team)
		if !ok {
			continue
		}
		pts := PointsFor(m, player, team)
		for fi, f := range model.FormatOrder {
			if m.Format == f {
				buckets[fi].add(pts)
			}
		}
		total.add(pts)
	}

	var rows []SummaryRow
	for fi, f := range model.FormatOrder {
		if buckets[fi].Matches == 0 {
			continue
		}
		rows = append(rows, SummaryRow{Label: f.String(), Bucket: buckets[fi]})
	}
	return rows, total
}

// TournamentSummary folds the player's matches into one row per year,
// newest first, plus a combined total. The label is "Year - Resort" when
// the resort map knows the year, otherwise just the year.
func TournamentSummary(matches []model.Match, resorts map[int]string, player string, team model.Team) ([]SummaryRow, Bucket) {
	byYear := make(map[int]*Bucket)
	var total Bucket

	for i := range matches {
		m := &matches[i]
		if _, _, ok := playerSide(m, player, team); !ok {
			continue
		}
		b := byYear[m.Year]
		if b == nil {
			b = &Bucket{}
			byYear[m.Year] = b
		}
		pts := PointsFor(m, player, team)
		b.add(pts)
		total.add(pts)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	rows := make([]SummaryRow, 0, len(years))
	for _, y := range years {
		label := strconv.Itoa(y)
		if resorts[y] != "" {
			label = model.Tournament{Year: y, Resort: resorts[y]}.Label()
		}
		rows = append(rows, SummaryRow{Label: label, Bucket: *byYear[y]})
	}
	return rows, total
}

// TeamTableRow is one roster line of a single tournament's side.
type TeamTableRow struct {
	Display string
	Bucket
}

// TeamTable builds one side's roster for a single year: every player who
// occupied a slot on that side, with the points and matches they earned
// there, ordered by collated display name. Side occupancy in the year's
// matches decides membership, not the series-wide team map, so a fill-in
// shows up on the side they actually played.
func TeamTable(matches []model.Match, year int, side model.Team) []TeamTableRow {
	acc := make(map[string]*TeamTableRow)

	for i := range matches {
		m := &matches[i]
		if m.Year != year {
			continue
		}
		for _, raw := range m.SidePlayers(side) {
			nm, ok := CleanName(raw)
			if !ok {
				continue
			}
			disp := GivenFirst(nm)
			r, seen := acc[disp]
			if !seen {
				r = &TeamTableRow{Display: disp}
				acc[disp] = r
			}
			r.add(m.SidePoints(side))
		}
	}

	rows := make([]TeamTableRow, 0, len(acc))
	for _, r := range acc {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return Less(rows[i].Display, rows[j].Display)
	})
	return rows
}

// SideTotals sums each side's points across one year's matches.
func SideTotals(matches []model.Match, year int) (left, right float64) {
	for i := range matches {
		m := &matches[i]
		if m.Year != year {
			continue
		}
		left += m.LeftPoints
		right += m.RightPoints
	}
	return left, right
}
