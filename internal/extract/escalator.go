package extract

import (
	"regexp"
	"strconv"
)

// Escalator percentages outside [0.5, 5.0] are implausible for annual rent
// increases and are skipped.
const (
	minEscalatorPct = 0.5
	maxEscalatorPct = 5.0
)

// escalatorPatterns accept the percentage on either side of the keyword.
var escalatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`escalat.*?([0-9]+(?:\.[0-9]+)?)\s*%`),
	regexp.MustCompile(`increas.*?([0-9]+(?:\.[0-9]+)?)\s*%.*?(?:annual|per\s+year)`),
	regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*%.*?escalat`),
	regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*percent.*?(?:annual|per\s+year).*?increas`),
}

// resolveEscalator returns the first in-range matched percentage as a
// fractional rate. 0.0 means "no escalator detected", not a confirmed zero.
func resolveEscalator(norm string) float64 {
	for _, re := range escalatorPatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		pct, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if pct >= minEscalatorPct && pct <= maxEscalatorPct {
			return pct / 100.0
		}
	}
	return 0.0
}
