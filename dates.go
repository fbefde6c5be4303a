package main

import (
	"regexp"
	"strings"
	"time"
)

// recentWindowMonths is the trailing calendar window in which an order is
// still considered actionable.
const recentWindowMonths = 6

// datePatterns are tried in priority order. Only the first pattern that
// matches anywhere in the text is parsed: a malformed date matching an
// earlier shape yields no date even when a valid date in a later shape
// exists elsewhere in the line. That is deliberate and pinned by tests.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`), // M/D/YYYY or M-D-YY
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),   // YYYY-M-D
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2}`),   // M/D/YY
}

var dateLayouts = []string{"1/2/2006", "2006/1/2", "1/2/06"}

// ExtractDate finds the first recognizable calendar date in a line of text.
// The second return is false when no pattern matched or the matched text is
// not a valid date.
func ExtractDate(text string) (time.Time, bool) {
	for _, pattern := range datePatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		return parseDate(match)
	}
	return time.Time{}, false
}

func parseDate(s string) (time.Time, bool) {
	s = strings.ReplaceAll(s, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RecentCutoff returns the start of the recency window: six calendar months
// before now, truncated to midnight. AddDate rolls over rather than clamping
// when the target month is shorter (Aug 31 minus six months lands in March);
// the rollover matches the behavior clinical staff already rely on.
func RecentCutoff(now time.Time) time.Time {
	c := now.AddDate(0, -recentWindowMonths, 0)
	return time.Date(c.Year(), c.Month(), c.Day(), 0, 0, 0, 0, c.Location())
}

// IsOrderRecent reports whether an order date falls inside the recency
// window ending at now. Callers treat orders with no date as recent.
func IsOrderRecent(orderDate, now time.Time) bool {
	return !orderDate.Before(RecentCutoff(now))
}
