package formatvalidate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Patterns run against the trimmed field value.
var (
	postalCodeRegex = regexp.MustCompile(`(?i)^[A-Z][0-9][A-Z] ?[0-9][A-Z][0-9]$`)
	phoneRegex      = regexp.MustCompile(`^\(?[0-9]{3}[-) ]?\s?[0-9]{3}[- ]?[0-9]{4}$`)
	currencyRegex   = regexp.MustCompile(`^\$?\s*([0-9]{1,3}([, ][0-9]{3})+|[0-9]+)([.,][0-9]{0,2})?$`)
	emailRegex      = regexp.MustCompile(`(?i)^[0-9a-z._%+-]+@[0-9a-z-]+(\.[0-9a-z-]+)*\.[a-z]{2,}$`)
	integerRegex    = regexp.MustCompile(`^[+-]?[0-9]+$`)
	socialSecRegex  = regexp.MustCompile(`^[0-9]{3}[ -]?[0-9]{3}[ -]?[0-9]{3}$`)
	urlRegex        = regexp.MustCompile(`(?i)^(https?://)?([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}(:[0-9]{1,5})?(/\S*)?$`)
)

func matches(re *regexp.Regexp) func(string, map[string]string) bool {
	return func(value string, _ map[string]string) bool {
		return re.MatchString(value)
	}
}

// isPresent fails empty and whitespace-only values.
func isPresent(value string, _ map[string]string) bool {
	return strings.TrimSpace(value) != ""
}

// hasMinLength counts runes, not bytes.
func hasMinLength(value string, params map[string]string) bool {
	n, ok := parseCount(params[ParamLength])
	if !ok {
		return true
	}
	return utf8.RuneCountInString(value) >= n
}

// parseCount accepts non-negative base-10 integers.
func parseCount(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
