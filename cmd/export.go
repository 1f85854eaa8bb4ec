package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/export"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var (
	exportOut    string
	exportPlayer string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current tables to an xlsx workbook",
	Long:  "Write the leaderboard (or, with --player, one player's detail tables) to a workbook computed under the saved filter.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: generated name in the working directory)")
	exportCmd.Flags().StringVar(&exportPlayer, "player", "", "export one player's detail workbook instead")
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var (
		wb      *export.Workbook
		subject string
	)
	if exportPlayer != "" {
		canonical, team, err := s.resolvePlayer(exportPlayer)
		if err != nil {
			return err
		}
		subject = stats.GivenFirst(canonical)
		if wb, err = export.PlayerWorkbook(s.table, s.filter, canonical, team); err != nil {
			return err
		}
	} else {
		subject = "Stats"
		rows := stats.ComputeStats(s.table.Matches, s.filter.YearSet(), s.filter.FormatSet(), s.filter.TeamSet(), s.teamMap)
		stats.SortRows(rows, stats.DefaultSortKey())
		var err error
		if wb, err = export.StatsWorkbook(s.table, rows, s.filter.FormatSet(), s.filter); err != nil {
			return err
		}
	}

	out := exportOut
	if out == "" {
		out = export.FileName(subject, time.Now())
	}
	if err := wb.SaveAs(out); err != nil {
		return err
	}
	fmt.Printf("exported %s\n", out)
	return nil
}
