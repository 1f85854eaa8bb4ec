// Package report renders the aggregate tables for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// displayFormats returns the selected formats in canonical order.
func displayFormats(selected model.FormatSet) []model.Format {
	var out []model.Format
	for _, f := range model.FormatOrder {
		if selected == nil || selected[f] {
			out = append(out, f)
		}
	}
	return out
}

// PrintStatsTable prints the player leaderboard to stdout.
func PrintStatsTable(rows []stats.PlayerRow, formats model.FormatSet, key stats.SortKey) {
	PrintStatsTableTo(os.Stdout, rows, formats, key)
}

// PrintStatsTableTo writes the leaderboard: one column group per selected
// format plus the total, in the order the rows arrive (the caller sorts).
func PrintStatsTableTo(w io.Writer, rows []stats.PlayerRow, formats model.FormatSet, key stats.SortKey) {
	shown := displayFormats(formats)

	header := []string{"#", "PLAYER", "TEAM"}
	for _, f := range shown {
		up := strings.ToUpper(f.String())
		header = append(header, up+" PTS", up+" M", up+" %")
	}
	header = append(header, "TOTAL PTS", "TOTAL M", "TOTAL %")

	table := newTable(w)
	table.Header(toAny(header)...)

	for i, r := range rows {
		row := []string{strconv.Itoa(i + 1), r.Display, r.Team.String()}
		for _, f := range shown {
			row = append(row, bucketCells(r.BucketFor(f))...)
		}
		row = append(row, bucketCells(r.Total)...)
		table.Append(toAny(row)...)
	}
	table.Render()
	fmt.Fprintf(w, "sorted by %s\n", key.String())
}

func bucketCells(b stats.Bucket) []string {
	return []string{
		stats.FormatPoints(b.Points),
		strconv.Itoa(b.Matches),
		stats.FormatSuccess(b.Success()),
	}
}

// PrintFilterSummary writes the active filter in one block.
func PrintFilterSummary(w io.Writer, fs model.FilterState) {
	tournaments := "all"
	if !fs.AllYears {
		tournaments = strings.Join(fs.SelectedLabels, ", ")
		if tournaments == "" {
			tournaments = "none"
		}
	}
	fmt.Fprintf(w, "Tournaments: %s\n", tournaments)

	var teams []string
	for _, t := range fs.Teams {
		teams = append(teams, t.String())
	}
	fmt.Fprintf(w, "Teams:       %s\n", strings.Join(teams, ", "))

	var formats []string
	for _, f := range fs.Formats {
		formats = append(formats, f.String())
	}
	fmt.Fprintf(w, "Formats:     %s\n", strings.Join(formats, ", "))

	if fs.SelectedPlayer != "" {
		fmt.Fprintf(w, "Player:      %s\n", fs.SelectedPlayer)
	}
}

// PrintTeamTable writes one tournament side's roster.
func PrintTeamTable(w io.Writer, title string, rows []stats.TeamTableRow) {
	fmt.Fprintf(w, "\n%s\n", title)
	table := newTable(w)
	table.Header("PLAYER", "PTS", "M", "SUCC")
	for _, r := range rows {
		table.Append(r.Display,
			stats.FormatPoints(r.Points),
			strconv.Itoa(r.Matches),
			stats.FormatSuccess(r.Success()))
	}
	table.Render()
}

// PrintMatchesTable writes a match listing, already ordered by the caller.
func PrintMatchesTable(w io.Writer, matches []model.Match, resorts map[int]string) {
	table := newTable(w)
	table.Header("YEAR", "RESORT", "DAY", "NO", "FORMAT", "LEFTIES", "RIGHTIES", "RESULT")
	for i := range matches {
		m := &matches[i]
		table.Append(
			strconv.Itoa(m.Year),
			resorts[m.Year],
			strconv.Itoa(m.Day),
			strconv.Itoa(m.Number),
			m.Format.String(),
			sideNames(m, model.Lefties),
			sideNames(m, model.Righties),
			fmt.Sprintf("%s : %s", stats.FormatPoints(m.LeftPoints), stats.FormatPoints(m.RightPoints)),
		)
	}
	table.Render()
}

func sideNames(m *model.Match, side model.Team) string {
	var full []string
	for _, nm := range m.SidePlayers(side) {
		full = append(full, stats.GivenFirst(nm))
	}
	return stats.ShortPair(strings.Join(full, ", "))
}

// PrintPairingTable writes the player's partner record for one pair format.
func PrintPairingTable(w io.Writer, format model.Format, rows []stats.PairingRow, total stats.Bucket) {
	fmt.Fprintf(w, "\nPairs %s\n", format.String())
	table := newTable(w)
	table.Header("PARTNER", "PTS", "M", "SUCC")
	for _, r := range rows {
		table.Append(r.Partner,
			stats.FormatPoints(r.Points),
			strconv.Itoa(r.Matches),
			stats.FormatSuccess(r.Success()))
	}
	table.Append("Total",
		stats.FormatPoints(total.Points),
		strconv.Itoa(total.Matches),
		stats.FormatSuccess(total.Success()))
	table.Render()
}

// PrintOpponentTable writes the player's head-to-head record.
func PrintOpponentTable(w io.Writer, rows []stats.OpponentRow) {
	fmt.Fprintln(w, "\nOpponents")
	table := newTable(w)
	table.Header("OPPONENT", "W", "D", "L", "PTS", "M", "SUCC")
	for _, r := range rows {
		table.Append(r.Display,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Draws),
			strconv.Itoa(r.Losses),
			stats.FormatPoints(r.Points),
			strconv.Itoa(r.Matches),
			stats.FormatSuccess(r.Success()))
	}
	table.Render()
}

// PrintSummaryTable writes a labeled bucket summary with a Total trailer,
// shared by the per-format and per-tournament player views.
func PrintSummaryTable(w io.Writer, title, labelHeader string, rows []stats.SummaryRow, total stats.Bucket) {
	fmt.Fprintf(w, "\n%s\n", title)
	table := newTable(w)
	table.Header(labelHeader, "PTS", "M", "SUCC")
	for _, r := range rows {
		table.Append(r.Label,
			stats.FormatPoints(r.Points),
			strconv.Itoa(r.Matches),
			stats.FormatSuccess(r.Success()))
	}
	table.Append("Total",
		stats.FormatPoints(total.Points),
		strconv.Itoa(total.Matches),
		stats.FormatSuccess(total.Success()))
	table.Render()
}

// PrintTournamentList writes the tournament roll, newest first.
func PrintTournamentList(w io.Writer, tournaments []model.Tournament) {
	ordered := make([]model.Tournament, len(tournaments))
	copy(ordered, tournaments)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Year > ordered[j].Year })

	table := newTable(w)
	table.Header("YEAR", "RESORT", "L-CAPTAIN", "R-CAPTAIN", "WINNER", "STANDING L:R")
	for _, tr := range ordered {
		winner := tr.Winner.String()
		if winner == "" {
			winner = "draw"
		}
		table.Append(
			strconv.Itoa(tr.Year),
			tr.Resort,
			tr.LeftCaptain,
			tr.RightCaptain,
			winner,
			fmt.Sprintf("%s : %s", stats.FormatPoints(tr.StandingLeft), stats.FormatPoints(tr.StandingRight)),
		)
	}
	table.Render()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
