package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/report"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Print one player's detail view",
	Long:  "Summaries by format and tournament, partner records, head-to-head records and the match list, under the saved filter. The name may be given in either order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlayer,
}

func runPlayer(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	name := strings.Join(args, " ")
	canonical, team, err := s.resolvePlayer(name)
	if err != nil {
		return err
	}

	s.filter.SelectedPlayer = stats.GivenFirst(canonical)
	s.save()

	printPlayerDetail(s, canonical, team)
	return nil
}

func printPlayerDetail(s *session, canonical string, team model.Team) {
	display := stats.GivenFirst(canonical)
	fmt.Printf("%s  (%s)\n", display, team)
	if portrait := s.table.Portrait(canonical); portrait != "" {
		fmt.Printf("Portrait: %s\n", portrait)
	}

	filtered := stats.FilterMatches(s.table.Matches, s.filter.YearSet(), s.filter.FormatSet())
	mine := stats.PlayerMatches(filtered, canonical)
	if len(mine) == 0 {
		fmt.Println("no matches under the current filter")
		return
	}

	fmtRows, fmtTotal := stats.FormatSummary(mine, canonical, team)
	report.PrintSummaryTable(os.Stdout, "Summary", "FORMAT", fmtRows, fmtTotal)

	resorts := s.table.ResortByYear()
	trRows, trTotal := stats.TournamentSummary(mine, resorts, canonical, team)
	report.PrintSummaryTable(os.Stdout, "Tournaments", "TOURNAMENT", trRows, trTotal)

	for _, f := range [2]model.Format{model.Foursome, model.Fourball} {
		rows, total := stats.PairingRows(mine, canonical, team, f)
		if total.Matches == 0 {
			continue
		}
		report.PrintPairingTable(os.Stdout, f, rows, total)
	}

	oppRows, ambiguous := stats.OpponentRows(mine, canonical, team)
	if ambiguous > 0 {
		logrus.WithFields(logrus.Fields{
			"player":  display,
			"matches": ambiguous,
		}).Warn("player listed on both sides, resolved by team")
	}
	report.PrintOpponentTable(os.Stdout, oppRows)

	stats.SortMatchListing(mine)
	fmt.Println("\nMatches")
	report.PrintMatchesTable(os.Stdout, mine, resorts)
}
