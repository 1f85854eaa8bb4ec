package stats

import "github.com/Jasen77/lefties-righties/internal/model"

// BuildTeamMap assigns every player appearing in the match table to a team,
// based on how often they occupied Left versus Right slots. It must always
// be fed the COMPLETE table, never a filtered slice, so a player's team
// label does not shift as filters change.
//
// Tie-break when a player appeared equally often on both sides: Lefties if
// they have any left appearances, Righties if only right appearances, and
// Lefties as the final default.
func BuildTeamMap(matches []model.Match) map[string]model.Team {
	leftCount := make(map[string]int)
	rightCount := make(map[string]int)

	for i := range matches {
		m := &matches[i]
		for _, raw := range m.Left {
			if nm, ok := CleanName(raw); ok {
				leftCount[nm]++
			}
		}
		for _, raw := range m.Right {
			if nm, ok := CleanName(raw); ok {
				rightCount[nm]++
			}
		}
	}

	team := make(map[string]model.Team, len(leftCount)+len(rightCount))
	for nm := range leftCount {
		team[nm] = classify(leftCount[nm], rightCount[nm])
	}
	for nm := range rightCount {
		if _, done := team[nm]; !done {
			team[nm] = classify(leftCount[nm], rightCount[nm])
		}
	}
	return team
}

func classify(left, right int) model.Team {
	switch {
	case left > right:
		return model.Lefties
	case right > left:
		return model.Righties
	case left > 0:
		return model.Lefties
	case right > 0:
		return model.Righties
	default:
		return model.Lefties
	}
}

// teamOf resolves a player's team with a side-dependent default for names
// the classifier never saw: a name read from a left slot defaults to
// Lefties, from a right slot to Righties.
func teamOf(teamMap map[string]model.Team, name string, fallback model.Team) model.Team {
	if t, ok := teamMap[name]; ok {
		return t
	}
	return fallback
}
