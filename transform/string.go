package transform

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Upper converts the whole string to upper case.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower converts the whole string to lower case.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CapitalizeWords applies CapitalizeFirst to every space-separated word.
// Only spaces start a new word, so "jean-pierre" becomes "Jean-pierre".
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = CapitalizeFirst(Trim(w))
	}
	return strings.Join(words, " ")
}

// CapitalizeFirst upper-cases the first letter of the string and lower-cases
// the remainder.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return Upper(string(r)) + Lower(s[size:])
}
