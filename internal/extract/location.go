package extract

import "regexp"

// combinedLocationPattern captures "<county> county, <state>" in one shot.
// It is tried first because the combined form is unambiguous and carries
// more information than either token alone.
var combinedLocationPattern = regexp.MustCompile(`([a-z]+)\s+county[\s,]+([a-z]+)`)

// locationPatterns are the single-capture fallbacks, in priority order.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`state\s+of\s+([a-z]+)`),
	regexp.MustCompile(`in\s+the\s+state\s+of\s+([a-z]+)`),
	regexp.MustCompile(`([a-z]+)\s+state`),
	regexp.MustCompile(`county[,\s]+([a-z]+)`),
	regexp.MustCompile(`within\s+([a-z]+)\s+county`),
	regexp.MustCompile(`located\s+in\s+([a-z]+)`),
	regexp.MustCompile(`situated\s+in\s+([a-z]+)`),
	regexp.MustCompile(`([a-z]+)\s+county`),
}

// resolveLocation prefers the combined county+state form, falling back to the
// ordered single-capture patterns. Tokens of 2 characters or fewer are
// rejected to avoid capturing stray initials.
func resolveLocation(norm string) *string {
	if m := combinedLocationPattern.FindStringSubmatch(norm); m != nil {
		county := titleCase(m[1])
		state := titleCase(m[2])
		if len(county) > 2 && len(state) > 2 {
			loc := county + " County, " + state
			return &loc
		}
	}
	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		loc := titleCase(m[1])
		if len(loc) > 2 {
			return &loc
		}
	}
	return nil
}
