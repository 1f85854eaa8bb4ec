package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/report"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var tournamentsYear int

var tournamentsCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "List tournaments, or show one year's detail",
	Args:  cobra.NoArgs,
	RunE:  runTournaments,
}

func init() {
	tournamentsCmd.Flags().IntVar(&tournamentsYear, "year", 0, "show one tournament's result, rosters and matches")
}

func runTournaments(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	if tournamentsYear == 0 {
		report.PrintTournamentList(os.Stdout, s.table.Tournaments)
		return nil
	}
	return printTournamentDetail(s, tournamentsYear)
}

func printTournamentDetail(s *session, year int) error {
	tr := s.table.TournamentByYear(year)
	if tr == nil {
		return fmt.Errorf("no tournament in %d", year)
	}

	left, right := stats.SideTotals(s.table.Matches, year)
	winner := tr.Winner.String()
	if winner == "" {
		winner = "draw"
	}
	fmt.Printf("%s\n", tr.Label())
	fmt.Printf("Captains: %s (Lefties) vs %s (Righties)\n", tr.LeftCaptain, tr.RightCaptain)
	fmt.Printf("Result:   %s : %s  (%s)\n", stats.FormatPoints(left), stats.FormatPoints(right), winner)
	fmt.Printf("Standing: %s : %s\n", stats.FormatPoints(tr.StandingLeft), stats.FormatPoints(tr.StandingRight))

	report.PrintTeamTable(os.Stdout, "Lefties", stats.TeamTable(s.table.Matches, year, model.Lefties))
	report.PrintTeamTable(os.Stdout, "Righties", stats.TeamTable(s.table.Matches, year, model.Righties))

	var matches []model.Match
	for _, m := range s.table.Matches {
		if m.Year == year {
			matches = append(matches, m)
		}
	}
	stats.SortMatchListing(matches)
	fmt.Println("\nMatches")
	report.PrintMatchesTable(os.Stdout, matches, s.table.ResortByYear())
	return nil
}
