package stats

import (
	"fmt"
	"math"
	"strconv"
)

// Bucket accumulates points and match count for one format (or the total).
type Bucket struct {
	Points  float64
	Matches int
}

func (b *Bucket) add(points float64) {
	b.Points += points
	b.Matches++
}

func (b *Bucket) merge(o Bucket) {
	b.Points += o.Points
	b.Matches += o.Matches
}

// Success is the success percentage: points per match as an integer
// percentage, rounded to nearest. Zero matches yield 0.
func (b Bucket) Success() int {
	if b.Matches == 0 {
		return 0
	}
	return int(math.Round(b.Points / float64(b.Matches) * 100))
}

// FormatPoints renders a point value: whole numbers without decimals,
// half-points with exactly one decimal place.
func FormatPoints(v float64) string {
	if v == math.Trunc(v) {
		return strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// FormatSuccess renders a success percentage, e.g. "50 %".
func FormatSuccess(pct int) string {
	return fmt.Sprintf("%d %%", pct)
}
