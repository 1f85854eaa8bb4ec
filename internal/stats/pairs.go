package stats

import (
	"sort"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// PairingRow is the player's record alongside one partner in a pair format.
type PairingRow struct {
	Partner string // partner's display name, "Given Surname"
	Bucket
}

// PairingRows folds the player's matches of one pair format into a row per
// partner, plus a combined total. Matches of other formats, and pair-format
// rows where the player's side has no second name, are skipped. Rows come
// back ordered by success percentage descending, points descending, then
// collated partner name ascending.
func PairingRows(matches []model.Match, player string, team model.Team, format model.Format) ([]PairingRow, Bucket) {
	if !format.Pairs() {
		return nil, Bucket{}
	}

	acc := make(map[string]*PairingRow)
	var total Bucket

	for i := range matches {
		m := &matches[i]
		if m.Format != format {
			continue
		}
		side, _, ok := playerSide(m, player, team)
		if !ok {
			continue
		}

		var partner string
		for _, nm := range m.SidePlayers(side) {
			if nm != player {
				partner = nm
			}
		}
		if partner == "" {
			continue
		}

		disp := GivenFirst(partner)
		r, seen := acc[disp]
		if !seen {
			r = &PairingRow{Partner: disp}
			acc[disp] = r
		}
		pts := m.SidePoints(side)
		r.add(pts)
		total.add(pts)
	}

	rows := make([]PairingRow, 0, len(acc))
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
		return Less(rows[i].Partner, rows[j].Partner)
	})
	return rows, total
}
