package extract

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase capitalizes each word. Casers are stateful, so one is built per
// call rather than shared.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
