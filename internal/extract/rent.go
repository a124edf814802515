package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Rent bounds: annual figures outside this window are treated as pattern
// noise and the next pattern is tried.
const (
	minAnnualRent = 1000
	maxAnnualRent = 10000000
)

// rentPatterns pair dollar amounts with rent context, most specific first.
// The first pattern whose captured amount parses and lands in range wins.
var rentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`annual\s+rental\s+payment[:\s]+\$([0-9,]+)`),
	regexp.MustCompile(`annual\s+rent.*?\$([0-9,]+)`),
	regexp.MustCompile(`rent.*?\$([0-9,]+).*?per\s+year`),
	regexp.MustCompile(`\$([0-9,]+).*?annual`),
	regexp.MustCompile(`payment.*?\$([0-9,]+)`),
	regexp.MustCompile(`lease\s+payment.*?\$([0-9,]+)`),
	regexp.MustCompile(`rent.*?of\s+\$([0-9,]+)`),
	regexp.MustCompile(`sum\s+of\s+\$([0-9,]+)`),
	regexp.MustCompile(`amount\s+of\s+\$([0-9,]+)`),
	regexp.MustCompile(`compensation.*?\$([0-9,]+)`),
	regexp.MustCompile(`shall\s+pay.*?\$([0-9,]+)`),
	regexp.MustCompile(`per\s+acre.*?\$([0-9,]+)`),
	regexp.MustCompile(`\$([0-9,]+).*?per\s+acre`),
	regexp.MustCompile(`([0-9,]+)\s+dollars?.*?annual`),
	regexp.MustCompile(`total.*?rent.*?\$([0-9,]+)`),
}

// perAcreRatePattern captures every "$X per [utilized] acre" rate in the text.
var perAcreRatePattern = regexp.MustCompile(`\$([0-9,]+(?:\.[0-9]+)?)\s+per\s+(?:utilized\s+)?acre`)

// resolveRent returns the first in-range dollar amount matched by the ordered
// rent patterns, or nil when nothing plausible matched.
func resolveRent(norm string) *int {
	for _, re := range rentPatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			// unparseable digits: discard this candidate, try the next rule
			continue
		}
		if amount >= minAnnualRent && amount <= maxAnnualRent {
			return &amount
		}
	}
	return nil
}

// applyPerAcreOverride reconciles the accepted rent against per-acre-rate
// language. Per-acre rates are typically more reliable than loosely matched
// dollar figures, so computed = max(rates) × acres replaces the accepted rent
// when rent is missing or disagrees by more than a factor of 3 either way.
// Agreement within 3× keeps the original figure to avoid rounding churn.
func applyPerAcreOverride(norm string, rent *int, acres *float64) *int {
	if acres == nil {
		return rent
	}
	var rates []float64
	for _, m := range perAcreRatePattern.FindAllStringSubmatch(norm, -1) {
		r, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		rates = append(rates, r)
	}
	if len(rates) == 0 {
		return rent
	}
	rate := rates[0]
	for _, r := range rates[1:] {
		if r > rate {
			rate = r
		}
	}
	computed := int(rate * *acres)

	if rent == nil || float64(*rent) > float64(computed)*3 || float64(*rent) < float64(computed)/3 {
		return &computed
	}
	return rent
}
