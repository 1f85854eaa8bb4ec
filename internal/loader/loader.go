// Package loader reads the source spreadsheet into a model.Table. It is the
// only place that validates the workbook layout; everything downstream
// assumes a well-formed table.
package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// Sheet names of the source workbook.
const (
	SheetMatches     = "Zápasy"
	SheetTournaments = "Turnaje"
	SheetPlayers     = "Hráči"
)

// columns maps header labels to their column index within one sheet.
// Headers match case-insensitively after trimming.
type columns map[string]int

func headerColumns(row []string) columns {
	cols := make(columns, len(row))
	for i, h := range row {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func (c columns) require(sheet string, names ...string) error {
	for _, n := range names {
		if _, ok := c[strings.ToLower(n)]; !ok {
			return fmt.Errorf("sheet %q: missing column %q", sheet, n)
		}
	}
	return nil
}

// cell returns the trimmed cell under a header, the first present header
// winning when alternates are given. Absent headers and short rows yield "".
func (c columns) cell(row []string, names ...string) string {
	for _, n := range names {
		i, ok := c[strings.ToLower(n)]
		if !ok || i >= len(row) {
			continue
		}
		return strings.TrimSpace(row[i])
	}
	return ""
}

// Load reads the workbook at path. The match and tournament sheets are
// required; the player sheet is optional. Malformed numeric cells coerce
// to zero with a warning, so one bad cell never takes the whole load down.
func Load(path string) (*model.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	table := &model.Table{}

	if table.Matches, err = loadMatches(f); err != nil {
		return nil, err
	}
	if table.Tournaments, err = loadTournaments(f); err != nil {
		return nil, err
	}
	if table.Players, err = loadPlayers(f); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"matches":     len(table.Matches),
		"tournaments": len(table.Tournaments),
		"players":     len(table.Players),
	}).Debug("workbook loaded")
	return table, nil
}

func sheetRows(f *excelize.File, sheet string, required bool) ([][]string, columns, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		if !required {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		if !required {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("sheet %q: empty", sheet)
	}
	return rows[1:], headerColumns(rows[0]), nil
}

func loadMatches(f *excelize.File) ([]model.Match, error) {
	rows, cols, err := sheetRows(f, SheetMatches, true)
	if err != nil {
		return nil, err
	}
	if err := cols.require(SheetMatches,
		"Rok", "Deň", "Zápas", "Formát", "L1", "L2", "R1", "R2", "Lbody", "Rbody", "Víťaz"); err != nil {
		return nil, err
	}

	var matches []model.Match
	for ri, row := range rows {
		if blankRow(row) {
			continue
		}
		m := model.Match{
			Year:        cellInt(SheetMatches, ri, "Rok", cols.cell(row, "Rok")),
			Day:         cellInt(SheetMatches, ri, "Deň", cols.cell(row, "Deň")),
			Number:      cellInt(SheetMatches, ri, "Zápas", cols.cell(row, "Zápas")),
			Format:      model.ParseFormat(cols.cell(row, "Formát")),
			Left:        [2]string{cols.cell(row, "L1"), cols.cell(row, "L2")},
			Right:       [2]string{cols.cell(row, "R1"), cols.cell(row, "R2")},
			LeftPoints:  cellFloat(SheetMatches, ri, "Lbody", cols.cell(row, "Lbody")),
			RightPoints: cellFloat(SheetMatches, ri, "Rbody", cols.cell(row, "Rbody")),
			Winner:      model.ParseTeam(cols.cell(row, "Víťaz")),
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func loadTournaments(f *excelize.File) ([]model.Tournament, error) {
	rows, cols, err := sheetRows(f, SheetTournaments, true)
	if err != nil {
		return nil, err
	}
	if err := cols.require(SheetTournaments, "Rok", "Rezort"); err != nil {
		return nil, err
	}

	var out []model.Tournament
	for ri, row := range rows {
		if blankRow(row) {
			continue
		}
		out = append(out, model.Tournament{
			Year:          cellInt(SheetTournaments, ri, "Rok", cols.cell(row, "Rok")),
			Resort:        cols.cell(row, "Rezort"),
			LeftCaptain:   cols.cell(row, "L-Captain"),
			RightCaptain:  cols.cell(row, "R-Captain"),
			Winner:        model.ParseTeam(cols.cell(row, "Víťaz")),
			Logo:          cols.cell(row, "Logo"),
			Photo:         cols.cell(row, "Photo"),
			StandingLeft:  cellFloat(SheetTournaments, ri, "StavL", cols.cell(row, "StavL", "Stav L")),
			StandingRight: cellFloat(SheetTournaments, ri, "StavR", cols.cell(row, "StavR", "Stav R")),
		})
	}
	return out, nil
}

func loadPlayers(f *excelize.File) ([]model.PlayerInfo, error) {
	rows, cols, err := sheetRows(f, SheetPlayers, false)
	if err != nil || cols == nil {
		return nil, err
	}
	if err := cols.require(SheetPlayers, "Hráč"); err != nil {
		return nil, err
	}

	var out []model.PlayerInfo
	for _, row := range rows {
		name := cols.cell(row, "Hráč")
		if name == "" {
			continue
		}
		out = append(out, model.PlayerInfo{
			Name:     name,
			Portrait: cols.cell(row, "Portrét", "Portret"),
		})
	}
	return out, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cellInt parses an integer cell. Day cells often carry a trailing period
// ("3."), which is stripped. Anything unparsable coerces to 0.
func cellInt(sheet string, row int, column, raw string) int {
	if raw == "" {
		return 0
	}
	s := strings.TrimSuffix(raw, ".")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		warnCell(sheet, row, column, raw)
		return 0
	}
	return n
}

// cellFloat parses a point cell, accepting a comma decimal separator.
// Anything unparsable coerces to 0.
func cellFloat(sheet string, row int, column, raw string) float64 {
	if raw == "" {
		return 0
	}
	s := strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		warnCell(sheet, row, column, raw)
		return 0
	}
	return v
}

func warnCell(sheet string, row int, column, raw string) {
	logrus.WithFields(logrus.Fields{
		"sheet":  sheet,
		"row":    row + 2, // 1-based, plus the header row
		"column": column,
		"value":  raw,
	}).Warn("unparsable cell, using 0")
}
