package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/report"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var (
	statsYears   string
	statsFormats string
	statsTeams   string
	statsSort    string
	statsHideOne bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the player leaderboard",
	Long:  "Aggregate points and matches per player under the saved filter; flags override the filter for this run only.",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsYears, "years", "", "comma-separated years, or 'all' (default: saved filter)")
	statsCmd.Flags().StringVar(&statsFormats, "formats", "", "comma-separated formats, or 'all' (default: saved filter)")
	statsCmd.Flags().StringVar(&statsTeams, "teams", "", "comma-separated teams, or 'both' (default: saved filter)")
	statsCmd.Flags().StringVar(&statsSort, "sort", "", "abc, or <format|total>:<points|matches|success>")
	statsCmd.Flags().BoolVar(&statsHideOne, "hide-one-tournament", false, "hide players who appeared in a single year")
}

func runStats(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	years, formats, teams, err := overrideSets(&s.filter, statsYears, statsFormats, statsTeams)
	if err != nil {
		return err
	}
	key, err := stats.ParseSortKey(statsSort)
	if err != nil {
		return err
	}

	rows := stats.ComputeStats(s.table.Matches, years, formats, teams, s.teamMap)
	if statsHideOne {
		played := stats.YearsPlayed(s.table.Matches)
		kept := rows[:0]
		for _, r := range rows {
			if played[r.Display] > 1 {
				kept = append(kept, r)
			}
		}
		rows = kept
	}
	stats.SortRows(rows, key)

	if statsYears == "" && statsFormats == "" && statsTeams == "" {
		report.PrintFilterSummary(os.Stdout, s.filter)
		fmt.Println()
	}
	report.PrintStatsTable(rows, formats, key)
	return nil
}

// overrideSets derives the aggregation sets from the saved filter, with
// non-empty flag values replacing the corresponding selection for this
// invocation only. The snapshot on disk is untouched.
func overrideSets(fs *model.FilterState, yearsFlag, formatsFlag, teamsFlag string) (model.YearSet, model.FormatSet, model.TeamSet, error) {
	years := fs.YearSet()
	formats := fs.FormatSet()
	teams := fs.TeamSet()

	var err error
	if yearsFlag != "" {
		if years, err = parseYearsFlag(yearsFlag); err != nil {
			return nil, nil, nil, err
		}
	}
	if formatsFlag != "" {
		if formats, err = parseFormatsFlag(formatsFlag); err != nil {
			return nil, nil, nil, err
		}
	}
	if teamsFlag != "" {
		if teams, err = parseTeamsFlag(teamsFlag); err != nil {
			return nil, nil, nil, err
		}
	}
	return years, formats, teams, nil
}
