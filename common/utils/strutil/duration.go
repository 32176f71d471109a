package strutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// FormatDuration renders d as "1d, 2h, 3m, 4s, 5ms", leaving out zero parts.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	days := ms / (24 * 3600 * 1000)
	ms -= days * 24 * 3600 * 1000
	hours := ms / (3600 * 1000)
	ms -= hours * 3600 * 1000
	minutes := ms / (60 * 1000)
	ms -= minutes * 60 * 1000
	seconds := ms / 1000
	ms -= seconds * 1000

	parts := make([]string, 0, 5)
	for _, p := range []struct {
		v    int64
		unit string
	}{
		{days, "d"},
		{hours, "h"},
		{minutes, "m"},
		{seconds, "s"},
		{ms, "ms"},
	} {
		if p.v != 0 {
			parts = append(parts, strconv.FormatInt(p.v, 10)+p.unit)
		}
	}
	if len(parts) == 0 {
		return "0 s"
	}
	return strings.Join(parts, ", ")
}

// FormatClock renders seconds as H:MM:SS, wrapping at one day.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	seconds %= 24 * 3600
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

var durationUnits = map[string]time.Duration{
	"s":     time.Second,
	"min":   time.Minute,
	"hour":  time.Hour,
	"day":   24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
}

// ParseDuration parses strings such as "30s", "5min", "2 hour" or "1year".
// It returns 0 when the unit is unknown or the number is missing.
func ParseDuration(s string) time.Duration {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if i == 0 {
		return 0
	}
	if i < 0 {
		i = len(s)
	}
	value, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0
	}
	unit, ok := durationUnits[strings.TrimSpace(s[i:])]
	if !ok {
		return 0
	}
	return time.Duration(value) * unit
}
