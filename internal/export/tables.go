package export

import (
	"strconv"
	"strings"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

func bucketCells(b stats.Bucket) []string {
	return []string{
		stats.FormatPoints(b.Points),
		strconv.Itoa(b.Matches),
		stats.FormatSuccess(b.Success()),
	}
}

// StatsWorkbook builds the leaderboard export: the stats sheet in the
// caller's row order, one roster sheet per selected tournament side, the
// filtered match listing and the filter sheet.
func StatsWorkbook(table *model.Table, rows []stats.PlayerRow, formats model.FormatSet, fs model.FilterState) (*Workbook, error) {
	wb, err := NewWorkbook()
	if err != nil {
		return nil, err
	}

	var shown []model.Format
	for _, f := range model.FormatOrder {
		if formats == nil || formats[f] {
			shown = append(shown, f)
		}
	}

	headers := []string{"#", "Player", "Team"}
	for _, f := range shown {
		headers = append(headers, f.String()+" Pts", f.String()+" M", f.String()+" %")
	}
	headers = append(headers, "Total Pts", "Total M", "Total %")

	data := make([][]string, 0, len(rows))
	for i, r := range rows {
		row := []string{strconv.Itoa(i + 1), r.Display, r.Team.String()}
		for _, f := range shown {
			row = append(row, bucketCells(r.BucketFor(f))...)
		}
		row = append(row, bucketCells(r.Total)...)
		data = append(data, row)
	}
	if err := wb.AddSheet("Stats", headers, data); err != nil {
		return nil, err
	}

	years := fs.YearSet()
	for _, y := range table.Years() {
		if years != nil && !years[y] {
			continue
		}
		for _, side := range [2]model.Team{model.Lefties, model.Righties} {
			roster := stats.TeamTable(table.Matches, y, side)
			if len(roster) == 0 {
				continue
			}
			sheet := strconv.Itoa(y) + " " + side.String()
			rosterData := make([][]string, 0, len(roster))
			for _, r := range roster {
				rosterData = append(rosterData, append([]string{r.Display}, bucketCells(r.Bucket)...))
			}
			if err := wb.AddSheet(sheet, []string{"Player", "Pts", "M", "Succ"}, rosterData); err != nil {
				return nil, err
			}
		}
	}

	filtered := stats.FilterMatches(table.Matches, years, fs.FormatSet())
	stats.SortMatchListing(filtered)
	if err := addMatchesSheet(wb, table.ResortByYear(), filtered); err != nil {
		return nil, err
	}

	if err := addFilterSheet(wb, fs); err != nil {
		return nil, err
	}
	return wb, nil
}

// PlayerWorkbook builds the player-detail export: format and tournament
// summaries, both pairing tables, opponents, the player's matches and the
// filter sheet.
func PlayerWorkbook(table *model.Table, fs model.FilterState, player string, team model.Team) (*Workbook, error) {
	wb, err := NewWorkbook()
	if err != nil {
		return nil, err
	}

	filtered := stats.FilterMatches(table.Matches, fs.YearSet(), fs.FormatSet())
	mine := stats.PlayerMatches(filtered, player)

	fmtRows, fmtTotal := stats.FormatSummary(mine, player, team)
	if err := addSummarySheet(wb, "Summary", "Format", fmtRows, fmtTotal); err != nil {
		return nil, err
	}

	trRows, trTotal := stats.TournamentSummary(mine, table.ResortByYear(), player, team)
	if err := addSummarySheet(wb, "Tournaments", "Tournament", trRows, trTotal); err != nil {
		return nil, err
	}

	for _, f := range [2]model.Format{model.Foursome, model.Fourball} {
		rows, total := stats.PairingRows(mine, player, team, f)
		data := make([][]string, 0, len(rows)+1)
		for _, r := range rows {
			data = append(data, append([]string{r.Partner}, bucketCells(r.Bucket)...))
		}
		data = append(data, append([]string{"Total"}, bucketCells(total)...))
		if err := wb.AddSheet("Pairs "+f.String(), []string{"Partner", "Pts", "M", "Succ"}, data); err != nil {
			return nil, err
		}
	}

	oppRows, _ := stats.OpponentRows(mine, player, team)
	oppData := make([][]string, 0, len(oppRows))
	for _, r := range oppRows {
		row := []string{r.Display, strconv.Itoa(r.Wins), strconv.Itoa(r.Draws), strconv.Itoa(r.Losses)}
		oppData = append(oppData, append(row, bucketCells(r.Bucket)...))
	}
	if err := wb.AddSheet("Opponents", []string{"Opponent", "W", "D", "L", "Pts", "M", "Succ"}, oppData); err != nil {
		return nil, err
	}

	stats.SortMatchListing(mine)
	if err := addMatchesSheet(wb, table.ResortByYear(), mine); err != nil {
		return nil, err
	}

	if err := addFilterSheet(wb, fs); err != nil {
		return nil, err
	}
	return wb, nil
}

// addMatchesSheet writes an already-ordered match listing.
func addMatchesSheet(wb *Workbook, resorts map[int]string, matches []model.Match) error {
	data := make([][]string, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		data = append(data, []string{
			strconv.Itoa(m.Year),
			resorts[m.Year],
			strconv.Itoa(m.Day),
			strconv.Itoa(m.Number),
			m.Format.String(),
			exportSide(m, model.Lefties),
			exportSide(m, model.Righties),
			stats.FormatPoints(m.LeftPoints) + " : " + stats.FormatPoints(m.RightPoints),
		})
	}
	headers := []string{"Year", "Resort", "Day", "No", "Format", "Lefties", "Righties", "Result"}
	return wb.AddSheet("Matches", headers, data)
}

func exportSide(m *model.Match, side model.Team) string {
	var names []string
	for _, nm := range m.SidePlayers(side) {
		names = append(names, stats.GivenFirst(nm))
	}
	return strings.Join(names, ", ")
}

func addSummarySheet(wb *Workbook, sheet, label string, rows []stats.SummaryRow, total stats.Bucket) error {
	data := make([][]string, 0, len(rows)+1)
	for _, r := range rows {
		data = append(data, append([]string{r.Label}, bucketCells(r.Bucket)...))
	}
	data = append(data, append([]string{"Total"}, bucketCells(total)...))
	return wb.AddSheet(sheet, []string{label, "Pts", "M", "Succ"}, data)
}

// addFilterSheet records the filter the exported tables were computed
// under, so a saved workbook is self-describing.
func addFilterSheet(wb *Workbook, fs model.FilterState) error {
	tournaments := "all"
	if !fs.AllYears {
		tournaments = strings.Join(fs.SelectedLabels, ", ")
		if tournaments == "" {
			tournaments = "none"
		}
	}

	var teams, formats []string
	for _, t := range fs.Teams {
		teams = append(teams, t.String())
	}
	for _, f := range fs.Formats {
		formats = append(formats, f.String())
	}

	rows := [][]string{
		{"Tournaments", tournaments},
		{"Teams", strings.Join(teams, ", ")},
		{"Formats", strings.Join(formats, ", ")},
	}
	if fs.SelectedPlayer != "" {
		rows = append(rows, []string{"Player", fs.SelectedPlayer})
	}
	return wb.AddSheet("Filter", []string{"Setting", "Value"}, rows)
}
