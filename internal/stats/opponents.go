package stats

import (
	"sort"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// OpponentRow is the player's head-to-head record against one opponent.
type OpponentRow struct {
	Name    string // canonical "Surname Given"
	Display string // "Given Surname"

	Wins   int
	Draws  int
	Losses int

	Bucket // the player's own points and match count against this opponent
}

// OpponentRows folds the player's matches into a row per opposing player.
// Every named slot on the opposing side counts, so a pair-format match
// advances two opponent rows, and a name occupying both opposing slots
// counts twice. Win, draw and loss follow the point differential of the
// match, not the Winner column.
//
// ambiguous counts matches in which the player's name appeared on both
// sides; those resolve to the player's own team.
func OpponentRows(matches []model.Match, player string, team model.Team) (rows []OpponentRow, ambiguous int) {
	acc := make(map[string]*OpponentRow)

	for i := range matches {
		m := &matches[i]
		side, amb, ok := playerSide(m, player, team)
		if !ok {
			continue
		}
		if amb {
			ambiguous++
		}

		own := m.SidePoints(side)
		theirs := m.SidePoints(side.Opponent())

		for _, raw := range m.SidePlayers(side.Opponent()) {
			nm, cok := CleanName(raw)
			if !cok {
				continue
			}
			r, seen := acc[nm]
			if !seen {
				r = &OpponentRow{Name: nm, Display: GivenFirst(nm)}
				acc[nm] = r
			}
			r.add(own)
			switch {
			case own > theirs:
				r.Wins++
			case own < theirs:
				r.Losses++
			default:
				r.Draws++
			}
		}
	}

	rows = make([]OpponentRow, 0, len(acc))
	for _, r := range acc {
		rows = append(rows, *r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if si, sj := rows[i].Success(), rows[j].Success(); si != sj {
			return si > sj
		}
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return Less(rows[i].Display, rows[j].Display)
	})
	return rows, ambiguous
}
