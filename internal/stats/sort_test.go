package stats

import (
	"testing"

	"github.com/Jasen77/lefties-righties/internal/model"
)

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", DefaultSortKey(), false},
		{"abc", SortKey{Alphabetic: true}, false},
		{"total:points", SortKey{Format: model.FormatUnknown, Metric: MetricPoints}, false},
		{"single:success", SortKey{Format: model.Single, Metric: MetricSuccess}, false},
		{"Foursome:Matches", SortKey{Format: model.Foursome, Metric: MetricMatches}, false},
		{"total", SortKey{}, true},
		{"golf:points", SortKey{}, true},
		{"total:birdies", SortKey{}, true},
	}
	for _, c := range cases {
		got, err := ParseSortKey(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseSortKey(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSortKey(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseSortKey(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestSortRowsNumeric(t *testing.T) {
	rows := []PlayerRow{
		{Display: "Adam Nowak", Total: Bucket{Points: 2, Matches: 4}},
		{Display: "Boris Varga", Total: Bucket{Points: 3, Matches: 4}},
		{Display: "Cyril Horak", Total: Bucket{Points: 2, Matches: 4}},
	}
	SortRows(rows, SortKey{Format: model.FormatUnknown, Metric: MetricPoints})

	// Highest points first; the two-point tie breaks on collated name.
	want := []string{"Boris Varga", "Adam Nowak", "Cyril Horak"}
	for i, w := range want {
		if rows[i].Display != w {
			t.Fatalf("order = %v, want %v", displays(rows), want)
		}
	}
}

func TestSortRowsPerFormatMetric(t *testing.T) {
	rows := []PlayerRow{
		{Display: "Adam Nowak", Single: Bucket{Points: 1, Matches: 2}},
		{Display: "Boris Varga", Single: Bucket{Points: 2, Matches: 2}},
	}
	SortRows(rows, SortKey{Format: model.Single, Metric: MetricSuccess})
	if rows[0].Display != "Boris Varga" {
		t.Errorf("order = %v", displays(rows))
	}
}

func TestSortRowsAlphabetic(t *testing.T) {
	rows := []PlayerRow{
		{Display: "Ivan Ivan"},
		{Display: "Adam Chren"},
		{Display: "Boris Hudák"},
	}
	SortRows(rows, SortKey{Alphabetic: true})

	// Surname under Slovak collation: Hudák, Chren, Ivan.
	want := []string{"Boris Hudák", "Adam Chren", "Ivan Ivan"}
	for i, w := range want {
		if rows[i].Display != w {
			t.Fatalf("order = %v, want %v", displays(rows), want)
		}
	}
}

func TestSortMatchListing(t *testing.T) {
	matches := []model.Match{
		{Year: 2023, Day: 2, Number: 1},
		{Year: 2024, Day: 1, Number: 2},
		{Year: 2024, Day: 1, Number: 1},
		{Year: 2024, Day: 2, Number: 1},
	}
	SortMatchListing(matches)

	want := []model.Match{
		{Year: 2024, Day: 1, Number: 1},
		{Year: 2024, Day: 1, Number: 2},
		{Year: 2024, Day: 2, Number: 1},
		{Year: 2023, Day: 2, Number: 1},
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("order = %+v", matches)
		}
	}
}

func displays(rows []PlayerRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Display
	}
	return out
}
