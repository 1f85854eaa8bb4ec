package stats

import (
	"testing"

	"github.com/Jasen77/lefties-righties/internal/model"
)

func TestFormatSummary(t *testing.T) {
	matches := scenarioMatches()
	mine := PlayerMatches(matches, "Nowak Adam")

	rows, total := FormatSummary(mine, "Nowak Adam", model.Lefties)
	if len(rows) != 2 {
		t.Fatalf("%d rows, want 2 (Foursome, Single)", len(rows))
	}
	if rows[0].Label != "Foursome" || rows[0].Points != 0.5 || rows[0].Matches != 1 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Label != "Single" || rows[1].Points != 1 || rows[1].Matches != 2 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
	if total.Points != 1.5 || total.Matches != 3 {
		t.Errorf("total = %+v", total)
	}
}

func TestTournamentSummary(t *testing.T) {
	matches := []model.Match{
		makeMatch(2023, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 1, 0),
		makeMatch(2024, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 0, 1),
		makeMatch(2024, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Horak Cyril", ""}, 1, 0),
	}
	resorts := map[int]string{2023: "Tále", 2024: "Black Stork"}

	rows, total := TournamentSummary(matches, resorts, "Nowak Adam", model.Lefties)
	if len(rows) != 2 {
		t.Fatalf("%d rows, want 2", len(rows))
	}
	// Newest year first.
	if rows[0].Label != "2024 - Black Stork" || rows[0].Points != 1 || rows[0].Matches != 2 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Label != "2023 - Tále" || rows[1].Points != 1 || rows[1].Matches != 1 {
		t.Errorf("rows[1] = %+v", rows[1])
	}
	if total.Points != 2 || total.Matches != 3 {
		t.Errorf("total = %+v", total)
	}
}

func TestTournamentSummaryUnknownResort(t *testing.T) {
	matches := []model.Match{
		makeMatch(2022, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 1, 0),
	}
	rows, _ := TournamentSummary(matches, map[int]string{}, "Nowak Adam", model.Lefties)
	if len(rows) != 1 || rows[0].Label != "2022" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestTeamTable(t *testing.T) {
	matches := []model.Match{
		makeMatch(2024, model.Fourball,
			[2]string{"Nowak Adam", "Hudák Boris"},
			[2]string{"Varga Boris", "Kral Emil"}, 1, 0),
		makeMatch(2024, model.Single, [2]string{"Chren Cyril", ""}, [2]string{"Varga Boris", ""}, 0.5, 0.5),
		// Other year, must not count.
		makeMatch(2023, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 1, 0),
	}

	rows := TeamTable(matches, 2024, model.Lefties)
	if len(rows) != 3 {
		t.Fatalf("%d rows, want 3", len(rows))
	}
	// Collated display names ascending.
	want := []string{"Adam Nowak", "Boris Hudák", "Cyril Chren"}
	for i, w := range want {
		if rows[i].Display != w {
			t.Fatalf("order = %+v, want %v", rows, want)
		}
	}
	if rows[2].Points != 0.5 || rows[2].Matches != 1 {
		t.Errorf("Chren = %+v", rows[2])
	}
}

func TestSideTotals(t *testing.T) {
	matches := []model.Match{
		makeMatch(2024, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 1, 0),
		makeMatch(2024, model.Single, [2]string{"Chren Cyril", ""}, [2]string{"Kral Emil", ""}, 0.5, 0.5),
		makeMatch(2023, model.Single, [2]string{"Nowak Adam", ""}, [2]string{"Varga Boris", ""}, 0, 1),
	}
	left, right := SideTotals(matches, 2024)
	if left != 1.5 || right != 0.5 {
		t.Errorf("totals = %v : %v", left, right)
	}
}
