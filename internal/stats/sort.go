package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Jasen77/lefties-righties/internal/model"
)

// Metric selects which number of a bucket a numeric sort reads.
type Metric int

const (
	MetricPoints Metric = iota
	MetricMatches
	MetricSuccess
)

func (m Metric) String() string {
	switch m {
	case MetricMatches:
		return "matches"
	case MetricSuccess:
		return "success"
	default:
		return "points"
	}
}

// SortKey is one total ordering of the stats table: either alphabetic by
// surname, or a numeric metric of one format (FormatUnknown = Total).
type SortKey struct {
	Alphabetic bool
	Format     model.Format
	Metric     Metric
}

// DefaultSortKey orders by total points, the view a leaderboard opens on.
func DefaultSortKey() SortKey {
	return SortKey{Format: model.FormatUnknown, Metric: MetricPoints}
}

func (k SortKey) String() string {
	if k.Alphabetic {
		return "abc"
	}
	fmtName := "total"
	if k.Format != model.FormatUnknown {
		fmtName = strings.ToLower(k.Format.String())
	}
	return fmtName + ":" + k.Metric.String()
}

// ParseSortKey parses "abc" or "<format|total>:<points|matches|success>".
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "abc" {
		if s == "abc" {
			return SortKey{Alphabetic: true}, nil
		}
		return DefaultSortKey(), nil
	}

	fmtName, metricName, ok := strings.Cut(s, ":")
	if !ok {
		return SortKey{}, fmt.Errorf("invalid sort key %q: want abc or <format|total>:<points|matches|success>", s)
	}

	key := SortKey{}
	switch fmtName {
	case "total":
		key.Format = model.FormatUnknown
	default:
		key.Format = model.ParseFormat(fmtName)
		if key.Format == model.FormatUnknown {
			return SortKey{}, fmt.Errorf("unknown sort format %q", fmtName)
		}
	}

	switch metricName {
	case "points":
		key.Metric = MetricPoints
	case "matches":
		key.Metric = MetricMatches
	case "success":
		key.Metric = MetricSuccess
	default:
		return SortKey{}, fmt.Errorf("unknown sort metric %q", metricName)
	}
	return key, nil
}

// SortRows orders the stats table in place. Alphabetic means surname then
// full display name, both under Slovak collation. Numeric metrics sort
// descending with the collated display name ascending as tie-break.
func SortRows(rows []PlayerRow, key SortKey) {
	if key.Alphabetic {
		sort.SliceStable(rows, func(i, j int) bool {
			if c := Compare(Surname(rows[i].Display), Surname(rows[j].Display)); c != 0 {
				return c < 0
			}
			return Less(rows[i].Display, rows[j].Display)
		})
		return
	}

	value := func(r *PlayerRow) float64 {
		b := r.BucketFor(key.Format)
		switch key.Metric {
		case MetricMatches:
			return float64(b.Matches)
		case MetricSuccess:
			return float64(b.Success())
		default:
			return b.Points
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := value(&rows[i]), value(&rows[j])
		if vi != vj {
			return vi > vj
		}
		return Less(rows[i].Display, rows[j].Display)
	})
}

// SortMatchListing orders a match listing for display: year descending,
// then day and match number ascending.
func SortMatchListing(matches []model.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Year != matches[j].Year {
			return matches[i].Year > matches[j].Year
		}
		if matches[i].Day != matches[j].Day {
			return matches[i].Day < matches[j].Day
		}
		return matches[i].Number < matches[j].Number
	})
}
