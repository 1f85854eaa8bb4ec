// Package state persists the per-user filter snapshot. The snapshot is a
// convenience, never a source of truth: a missing or corrupt file just
// means session defaults, and stale tournament labels are dropped against
// the currently loaded table.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Jasen77/lefties-righties/internal/model"
)

const snapshotVersion = 1

// snapshot is the on-disk schema of one saved filter.
type snapshot struct {
	Version        int      `json:"version"`
	AllYears       bool     `json:"t_all"`
	SelectedLabels []string `json:"t_selected_labels"`
	Teams          []string `json:"teams"`
	Formats        []string `json:"formats"`
	SelectedPlayer *string  `json:"player_selected_display"`
}

// Store reads and writes one user's filter snapshot under a directory.
type Store struct {
	path string
}

// NewStore builds a store rooted at dir for the given username. An empty
// username falls back to the current OS user, then to "default".
func NewStore(dir, username string) *Store {
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		}
	}
	if username == "" {
		username = "default"
	}
	name := fmt.Sprintf("filter_state_%s.json", sanitizeUser(username))
	return &Store{path: filepath.Join(dir, name)}
}

func (s *Store) Path() string { return s.path }

// Load returns the saved filter reconciled against the current table.
// A missing or unreadable snapshot yields the session defaults. Saved
// tournament labels are intersected with the table's tournaments and the
// all-years flag recomputed, so deleting a tournament from the workbook
// never leaves a phantom selection behind.
func (s *Store) Load(table *model.Table) model.FilterState {
	def := model.DefaultFilter(table)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return def
	}
	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		logrus.WithField("path", s.path).WithError(err).Warn("corrupt filter snapshot, using defaults")
		return def
	}

	known := make(map[string]bool, len(table.Tournaments))
	for _, tr := range table.Tournaments {
		known[tr.Label()] = true
	}
	var labels []string
	for _, lbl := range snap.SelectedLabels {
		if known[lbl] {
			labels = append(labels, lbl)
		}
	}

	fs := model.FilterState{
		AllYears:       snap.AllYears || len(labels) == len(known),
		SelectedLabels: labels,
		Teams:          parseTeams(snap.Teams),
		Formats:        parseFormats(snap.Formats),
	}
	if snap.AllYears {
		fs.SelectedLabels = def.SelectedLabels
	}
	if snap.SelectedPlayer != nil {
		fs.SelectedPlayer = *snap.SelectedPlayer
	}
	return fs
}

// Save writes the filter snapshot, creating the state directory if needed.
func (s *Store) Save(fs model.FilterState) error {
	snap := snapshot{
		Version:        snapshotVersion,
		AllYears:       fs.AllYears,
		SelectedLabels: fs.SelectedLabels,
		Teams:          teamStrings(fs.Teams),
		Formats:        formatStrings(fs.Formats),
	}
	if fs.SelectedPlayer != "" {
		p := fs.SelectedPlayer
		snap.SelectedPlayer = &p
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding filter snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing filter snapshot: %w", err)
	}
	return nil
}

// sanitizeUser keeps the username filename-safe: anything outside
// [A-Za-z0-9._-] becomes an underscore.
func sanitizeUser(u string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, u)
}

func teamStrings(teams []model.Team) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.String())
	}
	return out
}

func formatStrings(formats []model.Format) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		out = append(out, f.String())
	}
	return out
}

func parseTeams(ss []string) []model.Team {
	var out []model.Team
	for _, s := range ss {
		if t := model.ParseTeam(s); t != model.TeamNone {
			out = append(out, t)
		}
	}
	return out
}

func parseFormats(ss []string) []model.Format {
	var out []model.Format
	for _, s := range ss {
		if f := model.ParseFormat(s); f != model.FormatUnknown {
			out = append(out, f)
		}
	}
	return out
}
