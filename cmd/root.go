package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/loader"
	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/state"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var (
	dataPath string
	stateDir string
)

var rootCmd = &cobra.Command{
	Use:     "leftright",
	Short:   "Lefties vs Righties golf series statistics",
	Long:    "Read the series workbook and compute player, pairing and opponent statistics.",
	Version: "0.3.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultState := filepath.Join(mustUserHome(), ".leftright")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "GolfData.xlsx", "path to the source workbook")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state", defaultState, "directory for filter snapshots")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shellCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// session bundles one command invocation's loaded table, derived team map
// and persisted filter.
type session struct {
	cache   *loader.Cache
	table   *model.Table
	store   *state.Store
	filter  model.FilterState
	teamMap map[string]model.Team
}

func openSession() (*session, error) {
	cache := loader.NewCache(dataPath)
	table, err := cache.Table()
	if err != nil {
		return nil, fmt.Errorf("loading workbook: %w", err)
	}
	store := state.NewStore(stateDir, "")
	s := &session{
		cache:  cache,
		table:  table,
		store:  store,
		filter: store.Load(table),
	}
	s.refresh()
	return s, nil
}

// refresh rebuilds everything derived from the table after a (re)load.
func (s *session) refresh() {
	s.teamMap = stats.BuildTeamMap(s.table.Matches)
}

// save persists the filter snapshot; snapshot failures are not fatal.
func (s *session) save() {
	if err := s.store.Save(s.filter); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// resolvePlayer matches a name argument against the known players, in
// canonical or display form, case-insensitively. Several distinct names
// matching the argument is an error listing the candidates, never a pick
// that depends on map iteration order.
func (s *session) resolvePlayer(arg string) (canonical string, team model.Team, err error) {
	arg = strings.TrimSpace(arg)
	var hits []string
	for nm := range s.teamMap {
		if strings.EqualFold(nm, arg) || strings.EqualFold(stats.GivenFirst(nm), arg) {
			hits = append(hits, nm)
		}
	}
	switch len(hits) {
	case 0:
		return "", model.TeamNone, fmt.Errorf("unknown player %q", arg)
	case 1:
		return hits[0], s.teamMap[hits[0]], nil
	default:
		sort.Strings(hits)
		return "", model.TeamNone, fmt.Errorf("ambiguous player %q: matches %s", arg, strings.Join(hits, ", "))
	}
}

// parseYearsFlag parses a --years value: "all" lifts the restriction,
// otherwise a comma-separated year list.
func parseYearsFlag(v string) (model.YearSet, error) {
	if strings.EqualFold(strings.TrimSpace(v), "all") {
		return nil, nil
	}
	set := model.YearSet{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		set[y] = true
	}
	return set, nil
}

// parseFormatsFlag parses a --formats value: "all" or a comma-separated
// format list.
func parseFormatsFlag(v string) (model.FormatSet, error) {
	if strings.EqualFold(strings.TrimSpace(v), "all") {
		return model.AllFormats(), nil
	}
	set := model.FormatSet{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f := model.ParseFormat(part)
		if f == model.FormatUnknown {
			return nil, fmt.Errorf("unknown format %q", part)
		}
		set[f] = true
	}
	return set, nil
}

// parseTeamsFlag parses a --teams value: "both" or a comma-separated
// team list.
func parseTeamsFlag(v string) (model.TeamSet, error) {
	if strings.EqualFold(strings.TrimSpace(v), "both") {
		return model.BothTeams(), nil
	}
	set := model.TeamSet{}
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t := model.ParseTeam(part)
		if t == model.TeamNone {
			return nil, fmt.Errorf("unknown team %q", part)
		}
		set[t] = true
	}
	return set, nil
}
