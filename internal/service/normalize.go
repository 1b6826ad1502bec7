package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase normalizes drink and ingredient names, so "dark rum" and
// "Dark Rum" land on the same stored value. Casers are stateful, so one is
// built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
