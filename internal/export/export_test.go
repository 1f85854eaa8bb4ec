package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

func TestWorkbookRoundTrip(t *testing.T) {
	wb, err := NewWorkbook()
	require.NoError(t, err)

	require.NoError(t, wb.AddSheet("Roster", []string{"Player", "Pts"}, [][]string{
		{"Adam Nowak", "1.5"},
		{"Boris Varga", "0.5"},
	}))
	require.NoError(t, wb.AddSheet("Empty", []string{"Nothing"}, nil))

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Roster", "Empty"}, f.GetSheetList())

	rows, err := f.GetRows("Roster")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Player", "Pts"}, rows[0])
	assert.Equal(t, []string{"Adam Nowak", "1.5"}, rows[1])
	assert.Equal(t, []string{"Boris Varga", "0.5"}, rows[2])
}

func TestStatsWorkbook(t *testing.T) {
	table := &model.Table{
		Matches: []model.Match{
			{
				Year: 2024, Day: 1, Number: 1, Format: model.Single,
				Left: [2]string{"Nowak Adam", ""}, Right: [2]string{"Varga Boris", ""},
				LeftPoints: 1, Winner: model.Lefties,
			},
			{
				Year: 2024, Day: 2, Number: 1, Format: model.Single,
				Left: [2]string{"Nowak Adam", ""}, Right: [2]string{"Varga Boris", ""},
				RightPoints: 1, Winner: model.Righties,
			},
		},
		Tournaments: []model.Tournament{{Year: 2024, Resort: "Tále"}},
	}
	rows := []stats.PlayerRow{
		{
			Name: "Nowak Adam", Display: "Adam Nowak", Team: model.Lefties,
			Single: stats.Bucket{Points: 1, Matches: 2},
			Total:  stats.Bucket{Points: 1, Matches: 2},
		},
	}
	fs := model.FilterState{
		AllYears: true,
		Teams:    []model.Team{model.Lefties, model.Righties},
		Formats:  []model.Format{model.Single},
	}

	wb, err := StatsWorkbook(table, rows, model.FormatSet{model.Single: true}, fs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stats.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Stats", "2024 Lefties", "2024 Righties", "Matches", "Filter",
	}, f.GetSheetList())

	got, err := f.GetRows("Stats")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"#", "Player", "Team", "Single Pts", "Single M", "Single %", "Total Pts", "Total M", "Total %"}, got[0])
	assert.Equal(t, []string{"1", "Adam Nowak", "Lefties", "1", "2", "50 %", "1", "2", "50 %"}, got[1])

	roster, err := f.GetRows("2024 Lefties")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, []string{"Player", "Pts", "M", "Succ"}, roster[0])
	assert.Equal(t, []string{"Adam Nowak", "1", "2", "50 %"}, roster[1])

	matches, err := f.GetRows("Matches")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"2024", "Tále", "1", "1", "Single", "Adam Nowak", "Boris Varga", "1 : 0"}, matches[1])

	filter, err := f.GetRows("Filter")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tournaments", "all"}, filter[1])
}

func TestStatsWorkbookRespectsYearSelection(t *testing.T) {
	table := &model.Table{
		Matches: []model.Match{
			{
				Year: 2023, Day: 1, Number: 1, Format: model.Single,
				Left: [2]string{"Nowak Adam", ""}, Right: [2]string{"Varga Boris", ""},
				LeftPoints: 1,
			},
			{
				Year: 2024, Day: 1, Number: 1, Format: model.Single,
				Left: [2]string{"Nowak Adam", ""}, Right: [2]string{"Varga Boris", ""},
				RightPoints: 1,
			},
		},
		Tournaments: []model.Tournament{
			{Year: 2023, Resort: "Tále"},
			{Year: 2024, Resort: "Black Stork"},
		},
	}
	fs := model.FilterState{
		SelectedLabels: []string{"2024 - Black Stork"},
		Teams:          []model.Team{model.Lefties, model.Righties},
		Formats:        []model.Format{model.Single},
	}

	wb, err := StatsWorkbook(table, nil, fs.FormatSet(), fs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "filtered.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Only 2024's roster sheets; the match listing holds 2024 only.
	assert.Equal(t, []string{
		"Stats", "2024 Lefties", "2024 Righties", "Matches", "Filter",
	}, f.GetSheetList())

	matches, err := f.GetRows("Matches")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "2024", matches[1][0])
}

func TestPlayerWorkbookSheets(t *testing.T) {
	table := &model.Table{
		Matches: []model.Match{
			{
				Year: 2024, Day: 1, Number: 1, Format: model.Single,
				Left: [2]string{"Nowak Adam", ""}, Right: [2]string{"Varga Boris", ""},
				LeftPoints: 1, Winner: model.Lefties,
			},
			{
				Year: 2024, Day: 1, Number: 2, Format: model.Foursome,
				Left:  [2]string{"Nowak Adam", "Hudák Boris"},
				Right: [2]string{"Varga Boris", "Kral Emil"},
				LeftPoints: 0.5, RightPoints: 0.5,
			},
		},
		Tournaments: []model.Tournament{{Year: 2024, Resort: "Tále"}},
	}
	fs := model.FilterState{
		AllYears: true,
		Teams:    []model.Team{model.Lefties, model.Righties},
		Formats:  []model.Format{model.Foursome, model.Fourball, model.Single},
	}

	wb, err := PlayerWorkbook(table, fs, "Nowak Adam", model.Lefties)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "player.xlsx")
	require.NoError(t, wb.SaveAs(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		"Summary", "Tournaments", "Pairs Foursome", "Pairs Fourball",
		"Opponents", "Matches", "Filter",
	}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	// Foursome, Single and the Total trailer.
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"Total", "1.5", "2", "75 %"}, summary[3])
}

func TestSanitizeSheetName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Pairs Foursome", "Pairs Foursome"},
		{"a/b:c?d*e[f]g\\h", "abcdefgh"},
		{"", "Sheet"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeSheetName(c.in))
	}
	long := SanitizeSheetName("abcdefghijklmnopqrstuvwxyz0123456789")
	assert.Len(t, []rune(long), 31)
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "LR - Adam Nowak - 2026.08.29-14.30.05.xlsx", FileName("Adam Nowak", ts))
	assert.Equal(t, "LR - AB - 2026.08.29-14.30.05.xlsx", FileName("A/B:", ts))
}
