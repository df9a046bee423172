package formatvalidate

import (
	"maps"
	"strconv"
	"strings"
)

const (
	// DefaultInvalidClass is applied to messages and groups when neither the
	// field nor the Config names one.
	DefaultInvalidClass = "warning"

	// InvalidMarkerClass is set on every field that currently fails a rule.
	// Submission is blocked while any field in the form carries it.
	InvalidMarkerClass = "invalidFormElement"
)

// Config holds per-form engine settings. It is merged over DefaultConfig by
// Attach and is read-only afterwards.
type Config struct {
	// InvalidClass tags rendered messages and the field's control group.
	InvalidClass string

	// KeepFocus returns focus to a field that fails validation. Default: true.
	KeepFocus Optional[bool]

	// ShowConsoleMessages reports markup defects through the logger. Default: true.
	ShowConsoleMessages Optional[bool]

	// CustomMessages overrides built-in messages, keyed by rule class name.
	CustomMessages map[string]string

	// Marker replaces the default rendering of invalid/valid state.
	Marker Marker

	provenance []KeyProvenance
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		InvalidClass:        DefaultInvalidClass,
		KeepFocus:           Some(true),
		ShowConsoleMessages: Some(true),
	}
}

// Merge returns c with every set field of over applied on top. Custom
// messages are merged key by key.
func (c Config) Merge(over Config) Config {
	out := c
	if over.InvalidClass != "" {
		out.InvalidClass = over.InvalidClass
	}
	if over.KeepFocus.Set {
		out.KeepFocus = over.KeepFocus
	}
	if over.ShowConsoleMessages.Set {
		out.ShowConsoleMessages = over.ShowConsoleMessages
	}
	if over.Marker != nil {
		out.Marker = over.Marker
	}

	if len(c.CustomMessages) > 0 || len(over.CustomMessages) > 0 {
		out.CustomMessages = make(map[string]string, len(c.CustomMessages)+len(over.CustomMessages))
		maps.Copy(out.CustomMessages, c.CustomMessages)
		maps.Copy(out.CustomMessages, over.CustomMessages)
	}

	out.provenance = append(append([]KeyProvenance(nil), c.provenance...), over.provenance...)
	return out
}

// Provenance returns where each loaded key came from. Empty for configs
// built in code.
func (c Config) Provenance() []KeyProvenance {
	return append([]KeyProvenance(nil), c.provenance...)
}

// customMessage looks up a rule override, exact key first.
func (c Config) customMessage(rule RuleKind) (string, bool) {
	name := rule.String()
	if msg, ok := c.CustomMessages[name]; ok {
		return msg, true
	}
	for key, msg := range c.CustomMessages {
		if strings.EqualFold(key, name) {
			return msg, true
		}
	}
	return "", false
}

// setting returns the engine-wide default for a parameter name.
func (c Config) setting(param string) (string, bool) {
	switch strings.ToLower(param) {
	case "invalidclass":
		if c.InvalidClass == "" {
			return DefaultInvalidClass, true
		}
		return c.InvalidClass, true
	case "keepfocus":
		return strconv.FormatBool(c.KeepFocus.OrDefault(true)), true
	case "showconsolemessages":
		return strconv.FormatBool(c.ShowConsoleMessages.OrDefault(true)), true
	}
	return "", false
}
