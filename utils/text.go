package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TitleCase normalizes a skill or role name for display ("full stack
// developer" -> "Full Stack Developer"). Known acronyms keep their casing.
func TitleCase(s string) string {
	t := titleCaser.String(strings.TrimSpace(s))
	for _, acr := range []string{"Sql", "Api", "Aws", "Css", "Html", "Ci/Cd", "Ml"} {
		upper := strings.ToUpper(acr)
		t = strings.ReplaceAll(t, acr+" ", upper+" ")
		if strings.HasSuffix(t, acr) {
			t = strings.TrimSuffix(t, acr) + upper
		}
	}
	return t
}

// Truncate shortens s to max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
