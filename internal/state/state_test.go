package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jasen77/lefties-righties/internal/model"
)

func testTable() *model.Table {
	return &model.Table{
		Tournaments: []model.Tournament{
			{Year: 2023, Resort: "Tále"},
			{Year: 2024, Resort: "Black Stork"},
		},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	table := testTable()
	store := NewStore(t.TempDir(), "tester")

	fs := model.FilterState{
		AllYears:       false,
		SelectedLabels: []string{"2024 - Black Stork"},
		Teams:          []model.Team{model.Lefties},
		Formats:        []model.Format{model.Single, model.Fourball},
		SelectedPlayer: "Adam Nowak",
	}
	require.NoError(t, store.Save(fs))

	got := store.Load(table)
	assert.False(t, got.AllYears)
	assert.Equal(t, []string{"2024 - Black Stork"}, got.SelectedLabels)
	assert.Equal(t, []model.Team{model.Lefties}, got.Teams)
	assert.ElementsMatch(t, []model.Format{model.Single, model.Fourball}, got.Formats)
	assert.Equal(t, "Adam Nowak", got.SelectedPlayer)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	table := testTable()
	store := NewStore(t.TempDir(), "tester")

	got := store.Load(table)
	assert.True(t, got.AllYears)
	assert.Len(t, got.SelectedLabels, 2)
	assert.Equal(t, []model.Team{model.Lefties, model.Righties}, got.Teams)
	assert.Len(t, got.Formats, 3)
	assert.Empty(t, got.SelectedPlayer)
}

func TestLoadCorruptFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "tester")
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	got := store.Load(testTable())
	assert.True(t, got.AllYears)
	assert.Len(t, got.Formats, 3)
}

func TestLoadDropsStaleLabels(t *testing.T) {
	store := NewStore(t.TempDir(), "tester")
	fs := model.FilterState{
		SelectedLabels: []string{"2024 - Black Stork", "2019 - Gone Resort"},
		Teams:          []model.Team{model.Lefties, model.Righties},
		Formats:        []model.Format{model.Single},
	}
	require.NoError(t, store.Save(fs))

	got := store.Load(testTable())
	assert.Equal(t, []string{"2024 - Black Stork"}, got.SelectedLabels)
	assert.False(t, got.AllYears)
}

func TestLoadFullSelectionBecomesAllYears(t *testing.T) {
	store := NewStore(t.TempDir(), "tester")
	fs := model.FilterState{
		SelectedLabels: []string{"2023 - Tále", "2024 - Black Stork"},
		Teams:          []model.Team{model.Lefties, model.Righties},
		Formats:        []model.Format{model.Single},
	}
	require.NoError(t, store.Save(fs))

	got := store.Load(testTable())
	assert.True(t, got.AllYears)
}

func TestFilenameSanitized(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "weird user/../name")
	assert.Equal(t, filepath.Join(dir, "filter_state_weird_user_.._name.json"), store.Path())
}

func TestSaveCreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	store := NewStore(dir, "tester")
	require.NoError(t, store.Save(model.FilterState{AllYears: true}))
	_, err := os.Stat(store.Path())
	require.NoError(t, err)
}
