package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Jasen77/lefties-righties/internal/export"
	"github.com/Jasen77/lefties-righties/internal/model"
	"github.com/Jasen77/lefties-righties/internal/report"
	"github.com/Jasen77/lefties-righties/internal/stats"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long:  "Open a persistent session holding the filter. Every filter change is saved immediately. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	cGreeting.Println("leftright shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("leftright")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		cmd, args := tokens[0], tokens[1:]

		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "filter":
			report.PrintFilterSummary(os.Stdout, s.filter)
		case "years":
			shellYears(s, args)
		case "formats":
			shellFormats(s, args)
		case "teams":
			shellTeams(s, args)
		case "all":
			s.filter = model.DefaultFilter(s.table)
			s.save()
			report.PrintFilterSummary(os.Stdout, s.filter)
		case "stats":
			shellStats(s, args)
		case "player":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: player <name>")
				continue
			}
			shellPlayer(s, strings.Join(args, " "))
		case "tournaments":
			shellTournaments(s, args)
		case "export":
			shellExport(s, args)
		case "reload":
			shellReload(s)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", cmd)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"filter", "show the active filter"},
		{"years <y,...> | all | none", "restrict to tournament years"},
		{"formats <f,...> | all", "restrict to formats (foursome, fourball, single)"},
		{"teams <t,...> | both", "restrict to teams (lefties, righties)"},
		{"all", "reset the filter to everything"},
		{"stats [sort-key]", "player leaderboard (abc or <format|total>:<metric>)"},
		{"player <name>", "one player's detail view"},
		{"tournaments [year]", "tournament list, or one year's detail"},
		{"export [player-name]", "write the current tables to a workbook"},
		{"reload", "re-read the workbook, keeping the filter"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-30s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

// shellYears updates the tournament selection. Selected years map back to
// their "Year - Resort" labels so the snapshot stays label-based.
func shellYears(s *session, args []string) {
	if len(args) == 0 {
		cError.Fprintln(os.Stderr, "usage: years <y,...> | all | none")
		return
	}
	arg := strings.Join(args, ",")
	switch strings.ToLower(arg) {
	case "all":
		def := model.DefaultFilter(s.table)
		s.filter.AllYears = true
		s.filter.SelectedLabels = def.SelectedLabels
	case "none":
		s.filter.AllYears = false
		s.filter.SelectedLabels = nil
	default:
		want := map[int]bool{}
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			y, err := strconv.Atoi(part)
			if err != nil {
				cError.Fprintf(os.Stderr, "invalid year %q\n", part)
				return
			}
			want[y] = true
		}
		var labels []string
		for _, tr := range s.table.Tournaments {
			if want[tr.Year] {
				labels = append(labels, tr.Label())
			}
		}
		s.filter.AllYears = len(labels) == len(s.table.Tournaments)
		s.filter.SelectedLabels = labels
	}
	s.save()
	report.PrintFilterSummary(os.Stdout, s.filter)
}

func shellFormats(s *session, args []string) {
	if len(args) == 0 {
		cError.Fprintln(os.Stderr, "usage: formats <f,...> | all")
		return
	}
	set, err := parseFormatsFlag(strings.Join(args, ","))
	if err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	s.filter.Formats = nil
	for _, f := range model.FormatOrder {
		if set[f] {
			s.filter.Formats = append(s.filter.Formats, f)
		}
	}
	s.save()
	report.PrintFilterSummary(os.Stdout, s.filter)
}

func shellTeams(s *session, args []string) {
	if len(args) == 0 {
		cError.Fprintln(os.Stderr, "usage: teams <t,...> | both")
		return
	}
	set, err := parseTeamsFlag(strings.Join(args, ","))
	if err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	s.filter.Teams = nil
	for _, t := range [2]model.Team{model.Lefties, model.Righties} {
		if set[t] {
			s.filter.Teams = append(s.filter.Teams, t)
		}
	}
	s.save()
	report.PrintFilterSummary(os.Stdout, s.filter)
}

func shellStats(s *session, args []string) {
	key := stats.DefaultSortKey()
	if len(args) > 0 {
		var err error
		if key, err = stats.ParseSortKey(args[0]); err != nil {
			cError.Fprintln(os.Stderr, err)
			return
		}
	}
	rows := stats.ComputeStats(s.table.Matches, s.filter.YearSet(), s.filter.FormatSet(), s.filter.TeamSet(), s.teamMap)
	stats.SortRows(rows, key)
	report.PrintStatsTable(rows, s.filter.FormatSet(), key)
}

func shellPlayer(s *session, name string) {
	canonical, team, err := s.resolvePlayer(name)
	if err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	s.filter.SelectedPlayer = stats.GivenFirst(canonical)
	s.save()
	printPlayerDetail(s, canonical, team)
}

func shellTournaments(s *session, args []string) {
	if len(args) == 0 {
		report.PrintTournamentList(os.Stdout, s.table.Tournaments)
		return
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		cError.Fprintf(os.Stderr, "invalid year %q\n", args[0])
		return
	}
	if err := printTournamentDetail(s, year); err != nil {
		cError.Fprintln(os.Stderr, err)
	}
}

func shellExport(s *session, args []string) {
	var (
		wb      *export.Workbook
		subject string
		err     error
	)
	if len(args) > 0 {
		name := strings.Join(args, " ")
		canonical, team, rerr := s.resolvePlayer(name)
		if rerr != nil {
			cError.Fprintln(os.Stderr, rerr)
			return
		}
		subject = stats.GivenFirst(canonical)
		wb, err = export.PlayerWorkbook(s.table, s.filter, canonical, team)
	} else {
		subject = "Stats"
		rows := stats.ComputeStats(s.table.Matches, s.filter.YearSet(), s.filter.FormatSet(), s.filter.TeamSet(), s.teamMap)
		stats.SortRows(rows, stats.DefaultSortKey())
		wb, err = export.StatsWorkbook(s.table, rows, s.filter.FormatSet(), s.filter)
	}
	if err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	out := export.FileName(subject, time.Now())
	if err := wb.SaveAs(out); err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("exported %s\n", out)
}

func shellReload(s *session) {
	table, err := s.cache.Reload()
	if err != nil {
		cError.Fprintln(os.Stderr, err)
		return
	}
	s.table = table
	s.refresh()
	s.filter = s.store.Load(table)
	fmt.Printf("reloaded: %d matches, %d tournaments\n", len(table.Matches), len(table.Tournaments))
}
