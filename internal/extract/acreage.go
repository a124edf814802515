package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// acreagePatterns match a decimal (with optional thousands separators) next
// to "acre(s)" in either order, plus the "more or less" legal boilerplate.
var acreagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`([0-9,]+(?:\.[0-9]+)?)\s+acres?`),
	regexp.MustCompile(`acres?.*?([0-9,]+(?:\.[0-9]+)?)`),
	regexp.MustCompile(`([0-9,]+)\s+acres?\s+more\s+or\s+less`),
}

// resolveAcres returns the first parsed acreage figure. No upper bound is
// applied; the value only feeds the per-acre rent reconciliation and export.
func resolveAcres(norm string) *float64 {
	for _, re := range acreagePatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		acres, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return &acres
	}
	return nil
}
