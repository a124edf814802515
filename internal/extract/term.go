package extract

import (
	"regexp"
	"strconv"
)

// Typical solar leases run 15–35 years total. Candidates outside the window
// fall back to the smallest raw value, capped at 50, to avoid multi-hundred
// year artifacts from mis-matched patterns.
const (
	minPlausibleTerm = 15
	maxPlausibleTerm = 35
	maxFallbackTerm  = 50
)

// numberWordOrder fixes both the alternation order in the word patterns and
// the vocabulary of spelled-out terms.
var numberWordOrder = []string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen",
	"eighteen", "nineteen", "twenty", "thirty", "forty", "fifty", "sixty",
}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20, "thirty": 30, "forty": 40, "fifty": 50, "sixty": 60,
}

var termPatterns = buildTermPatterns()

func buildTermPatterns() []*regexp.Regexp {
	words := ""
	for i, w := range numberWordOrder {
		if i > 0 {
			words += "|"
		}
		words += w
	}
	return []*regexp.Regexp{
		regexp.MustCompile(`for\s+([0-9]+)\s+years?`),
		regexp.MustCompile(`term.*?([0-9]+)\s+years?`),
		regexp.MustCompile(`([0-9]+)\s+year\s+term`),
		regexp.MustCompile(`lease\s+term.*?([0-9]+)`),
		regexp.MustCompile(`initial\s+term.*?([0-9]+)\s+years?`),
		regexp.MustCompile(`period\s+of\s+([0-9]+)\s+years?`),
		regexp.MustCompile(`for\s+a\s+term\s+of\s+([0-9]+)`),
		regexp.MustCompile(`([0-9]+)\s+years?.*?term`),
		regexp.MustCompile(`commencing.*?([0-9]+)\s+years?`),
		regexp.MustCompile(`lease.*?([0-9]+)\s+years?.*?period`),
		regexp.MustCompile(`expires.*?([0-9]+)\s+years?`),
		// spelled-out number with a parenthetical digit echo: "twenty (20) years"
		regexp.MustCompile(`(` + words + `)\s*\([0-9]+\)?\s+years?`),
		regexp.MustCompile(`(` + words + `)\s+years?`),
	}
}

var renewalPattern = regexp.MustCompile(`([0-9]+)\s+renewal\s+terms?\s+of\s+([0-9]+)\s+years?`)

// termCandidates collects every match of every term pattern, digits and
// spelled-out words alike. Unlike rent this is not first-match-wins: the
// resolver needs the full candidate set.
func termCandidates(norm string) []int {
	var candidates []int
	for _, re := range termPatterns {
		for _, m := range re.FindAllStringSubmatch(norm, -1) {
			val := m[1]
			years := 0
			if n, err := strconv.Atoi(val); err == nil {
				years = n
			} else {
				years = numberWords[val]
			}
			if years > 0 {
				candidates = append(candidates, years)
			}
		}
	}
	return candidates
}

// appendRenewalTotal detects "N renewal terms of M years" and appends the
// implied total commitment: initial term (max candidate so far, or M when
// nothing else matched) plus N×M.
func appendRenewalTotal(norm string, candidates []int) []int {
	m := renewalPattern.FindStringSubmatch(norm)
	if m == nil {
		return candidates
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return candidates
	}
	years, err := strconv.Atoi(m[2])
	if err != nil {
		return candidates
	}
	initial := years
	if len(candidates) > 0 {
		initial = candidates[0]
		for _, c := range candidates[1:] {
			if c > initial {
				initial = c
			}
		}
	}
	return append(candidates, initial+count*years)
}

// resolveTermYears picks a single term from the candidate set: the maximum
// inside the plausible window, since longer in-window terms represent total
// commitment (base plus options) rather than a sub-clause. With no in-window
// candidate the minimum raw value is used if it is at most 50, else nothing.
func resolveTermYears(norm string) *int {
	candidates := appendRenewalTotal(norm, termCandidates(norm))
	if len(candidates) == 0 {
		return nil
	}

	best := 0
	for _, c := range candidates {
		if c >= minPlausibleTerm && c <= maxPlausibleTerm && c > best {
			best = c
		}
	}
	if best > 0 {
		return &best
	}

	min := candidates[0]
	for _, c := range candidates[1:] {
		if c < min {
			min = c
		}
	}
	if min <= maxFallbackTerm {
		return &min
	}
	return nil
}
