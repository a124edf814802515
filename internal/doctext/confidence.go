package doctext

import (
	"regexp"
	"strings"
)

var (
	reDollar  = regexp.MustCompile(`\$[0-9][0-9,]*(\.[0-9]+)?`)
	reTenure  = regexp.MustCompile(`\b(lease|lessor|lessee|landlord|tenant|term)\b`)
	reAcreage = regexp.MustCompile(`\b[0-9][0-9,.]*\s+acres?\b`)
)

func hasDollarAmount(s string) bool   { return reDollar.MatchString(s) }
func hasTenureLanguage(s string) bool { return reTenure.MatchString(s) }
func hasAcreageFigure(s string) bool  { return reAcreage.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common lease artifacts (dollar amounts, tenure
	// language, acreage figures). Each adds ~0.15-0.2.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDollarAmount(txtL) {
		score += 0.2
	}
	if hasTenureLanguage(txtL) {
		score += 0.2
	}
	if hasAcreageFigure(txtL) {
		score += 0.15
	}
	if len(txt) > 200 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
