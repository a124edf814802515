package extract

import (
	"regexp"
	"strings"
)

// developerPatterns match a company name ending in llc/inc near lessee or
// developer keywords, or a bare solar/energy/renewable name ending in llc.
// Matches are accepted or rejected outright; the job-level extraction
// confidence carries the quality signal.
var developerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`lessee[:\s]+([a-z\s,\.]+llc)`),
	regexp.MustCompile(`lessee[:\s]+([a-z\s,\.]+inc)`),
	regexp.MustCompile(`developer[:\s]+([a-z\s,\.]+llc)`),
	regexp.MustCompile(`([a-z\s]+solar[a-z\s]*llc)`),
	regexp.MustCompile(`([a-z\s]+energy[a-z\s]*llc)`),
	regexp.MustCompile(`([a-z\s]+renewable[a-z\s]*llc)`),
}

// resolveDeveloper accepts the first trimmed, title-cased match longer than
// 5 characters; anything shorter is unlikely to be a real company name.
func resolveDeveloper(norm string) *string {
	for _, re := range developerPatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		company := titleCase(strings.TrimSpace(m[1]))
		if len(company) > 5 {
			return &company
		}
	}
	return nil
}
