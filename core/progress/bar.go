// Package progress turns transfer samples into user-facing text.
package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/krau/tgxfer/common/utils/strutil"
)

// Formatter renders done out of total bytes.
type Formatter func(done, total int64) string

const barSegments = 10

// Percent returns done/total*100 rounded to two decimals. total <= 0 yields 0.
func Percent(done, total int64) float64 {
	if total <= 0 {
		return 0
	}
	done = min(max(done, 0), total)
	return math.Round(float64(done)/float64(total)*100*100) / 100
}

// Segments returns how many of the ten bar segments are filled for percent,
// rounding half away from zero.
func Segments(percent float64) int {
	n := int(math.Round(percent / 10))
	return min(max(n, 0), barSegments)
}

func render(percent float64, filled, empty string) string {
	n := Segments(percent)
	return strings.Repeat(filled, n) + strings.Repeat(empty, barSegments-n)
}

// Bar is the default Formatter:
//
//	Percent: 42.00%
//	420.00 KB/1000.00 KB
//	████░░░░░░
func Bar(done, total int64) string {
	percent := Percent(done, total)
	return fmt.Sprintf("Percent: %.2f%%\n%s/%s\n%s",
		percent,
		strutil.HumanReadableSize(done),
		strutil.HumanReadableSize(total),
		render(percent, "█", "░"),
	)
}
