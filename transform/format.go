package transform

import "strings"

// Currency normalizes an amount to digits with exactly two fractional digits.
// The currency symbol and all whitespace are dropped, thousands separators
// are removed and a comma used as decimal mark becomes a point. Empty input
// yields "0.00".
//
// A separator is taken as the decimal mark when it is a point, or when it is
// the last separator and at most two digits follow it.
func Currency(s string) string {
	s = strings.ReplaceAll(s, "$", "")
	s = whitespaceRegex.ReplaceAllString(s, "")

	whole, frac := s, ""
	if i := strings.LastIndexAny(s, ".,"); i >= 0 {
		if s[i] == '.' || len(s)-i-1 <= 2 {
			whole, frac = s[:i], s[i+1:]
		}
	}

	whole = strings.NewReplacer(",", "", ".", "").Replace(whole)
	if whole == "" {
		whole = "0"
	}

	frac = (frac + "00")[:2]
	return whole + "." + frac
}

// PostalCode upper-cases a Canadian postal code and inserts a single space
// after the third character when none is present.
func PostalCode(s string) string {
	s = Upper(s)
	if strings.Contains(s, " ") || len(s) <= 3 {
		return s
	}
	return s[:3] + " " + s[3:]
}

// Phone keeps the digits of a North American number and re-punctuates them
// as (AAA)BBB-CCCC.
func Phone(s string) string {
	d := nonDigitRegex.ReplaceAllString(s, "")
	return "(" + span(d, 0, 3) + ")" + span(d, 3, 6) + "-" + span(d, 6, 10)
}

// SocialSec strips spaces and hyphens from a social insurance number and
// regroups it as AAA BBB CCC.
func SocialSec(s string) string {
	d := separatorRegex.ReplaceAllString(s, "")
	return span(d, 0, 3) + " " + span(d, 3, 6) + " " + span(d, 6, 9)
}

// URL removes a leading http:// and lower-cases what remains.
func URL(s string) string {
	return Lower(httpPrefixRegex.ReplaceAllString(Trim(s), ""))
}

// span is s[from:to] clamped to the string bounds.
func span(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
