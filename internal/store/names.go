package store

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleName trims s and title-cases every word in it, lower-casing the rest,
// so "bench PRESS " and "Bench press" both become "Bench Press".
func TitleName(s string) string {
	// a Caser keeps state between calls, so one per call
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// SameName reports whether a and b normalise to the same name.
func SameName(a, b string) bool {
	return TitleName(a) == TitleName(b)
}
