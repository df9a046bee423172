package transform

import "regexp"

var (
	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// spaces and hyphens used as group separators in identifiers
	separatorRegex = regexp.MustCompile(`[\s-]+`)

	httpPrefixRegex = regexp.MustCompile(`(?i)^http://`)
)
