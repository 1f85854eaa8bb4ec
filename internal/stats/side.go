package stats

import "github.com/Jasen77/lefties-righties/internal/model"

// playerSide decides which side the player occupied in a match. A name
// present on both sides (a data-entry slip) is ambiguous and resolves to
// the player's own team; ambiguous reports that case so callers can count
// and surface it. ok is false when the player is not in the match at all.
func playerSide(m *model.Match, player string, team model.Team) (side model.Team, ambiguous, ok bool) {
	left := m.OnSide(player, model.Lefties)
	right := m.OnSide(player, model.Righties)
	switch {
	case left && right:
		return team, true, true
	case left:
		return model.Lefties, false, true
	case right:
		return model.Righties, false, true
	default:
		return model.TeamNone, false, false
	}
}

// PointsFor returns the points the player earned in the match, using the
// player's team to break a both-sides ambiguity. Zero when the player did
// not take part.
func PointsFor(m *model.Match, player string, team model.Team) float64 {
	side, _, ok := playerSide(m, player, team)
	if !ok {
		return 0
	}
	return m.SidePoints(side)
}
