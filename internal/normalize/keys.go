package normalize

import (
	"fmt"
	"strings"
)

// ToLowerDotPath normalizes a configuration key to a lowercase dot-separated path.
// Double underscores (__) are treated as level separators and converted to dots.
// Single underscores within a level are preserved.
// Examples:
//   - "INVALIDCLASS" → "invalidclass"
//   - "CUSTOMMESSAGES__FVREQUIRED" → "custommessages.fvrequired"
//   - "KEEP_FOCUS" → "keep_focus"
func ToLowerDotPath(key string) string {
	normalized := strings.ReplaceAll(key, "__", ".")
	return strings.ToLower(normalized)
}

// ApplyPrefix joins a parent path and a key with a dot. Either side may be
// empty.
func ApplyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}

// SplitAssignment parses "key=value". The key is trimmed and must not be
// empty; the value is kept verbatim.
func SplitAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid assignment %q: want key=value", s)
	}
	return key, value, nil
}
