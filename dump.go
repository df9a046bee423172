package formatvalidate

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	withSources bool   // Include where each value came from
	asJSON      bool   // Output as JSON instead of text format
	indent      string // Indentation for JSON output (default: "  ")
}

// WithSources includes source attribution in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs JSON instead of text.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

func applyDumpOptions(opts []DumpOption) dumpConfig {
	cfg := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type failureJSON struct {
	Rule          string `json:"rule"`
	Message       string `json:"message"`
	InvalidClass  string `json:"invalidClass,omitempty"`
	MessageSource string `json:"messageSource,omitempty"`
	ClassSource   string `json:"classSource,omitempty"`
}

type fieldJSON struct {
	Key      string        `json:"key"`
	Value    string        `json:"value"`
	Invalid  bool          `json:"invalid"`
	Rules    []string      `json:"rules"`
	Failures []failureJSON `json:"failures,omitempty"`
}

type stateJSON struct {
	Valid  bool        `json:"valid"`
	Fields []fieldJSON `json:"fields"`
}

// DumpState writes the current state of every field known to ctrl. It does
// not run any pipeline; call IsValid first for an up-to-date report.
func DumpState(w io.Writer, ctrl *Controller, opts ...DumpOption) error {
	if ctrl == nil {
		return fmt.Errorf("controller is nil")
	}
	cfg := applyDumpOptions(opts)
	fields := ctrl.Fields()

	if cfg.asJSON {
		out := stateJSON{Valid: !ctrl.engine.anyInvalid(), Fields: make([]fieldJSON, 0, len(fields))}
		for _, f := range fields {
			fj := fieldJSON{Key: f.Key, Value: f.Value, Invalid: f.Invalid, Rules: ruleNames(f.Rules)}
			for _, fail := range f.Failures {
				entry := failureJSON{Rule: fail.Rule.String(), Message: fail.Message, InvalidClass: fail.InvalidClass}
				if cfg.withSources {
					entry.MessageSource = fail.MessageFrom.String()
					entry.ClassSource = fail.ClassFrom.String()
				}
				fj.Failures = append(fj.Failures, entry)
			}
			out.Fields = append(out.Fields, fj)
		}
		return writeJSON(w, out, cfg.indent)
	}

	var b strings.Builder
	for _, f := range fields {
		state := "valid"
		if f.Invalid {
			state = "invalid"
		}
		fmt.Fprintf(&b, "%s: %q %s [%s]\n", f.Key, f.Value, state, strings.Join(ruleNames(f.Rules), " "))
		for _, fail := range f.Failures {
			fmt.Fprintf(&b, "  - %s: %q", fail.Rule, fail.Message)
			if cfg.withSources {
				fmt.Fprintf(&b, " (message: %s, class: %s)", fail.MessageFrom, fail.ClassFrom)
			}
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// DumpConfig writes the effective settings of cfg. With WithSources, keys
// loaded by a ConfigLoader show the source that supplied them.
func DumpConfig(w io.Writer, cfg Config, opts ...DumpOption) error {
	dc := applyDumpOptions(opts)

	sources := make(map[string]string, len(cfg.provenance))
	for _, p := range cfg.provenance {
		sources[p.Key] = p.SourceName
	}

	type entry struct {
		key   string
		value any
	}
	entries := []entry{
		{"invalidClass", cfg.InvalidClass},
		{"keepFocus", optionalValue(cfg.KeepFocus)},
		{"showConsoleMessages", optionalValue(cfg.ShowConsoleMessages)},
	}
	names := make([]string, 0, len(cfg.CustomMessages))
	for name := range cfg.CustomMessages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entries = append(entries, entry{"customMessages." + name, cfg.CustomMessages[name]})
	}

	if dc.asJSON {
		out := make(map[string]any, len(entries))
		for _, e := range entries {
			if dc.withSources {
				out[e.key] = map[string]any{"value": e.value, "source": sources[strings.ToLower(e.key)]}
				continue
			}
			out[e.key] = e.value
		}
		return writeJSON(w, out, dc.indent)
	}

	var b strings.Builder
	for _, e := range entries {
		switch v := e.value.(type) {
		case string:
			fmt.Fprintf(&b, "%s: %q", e.key, v)
		case nil:
			fmt.Fprintf(&b, "%s: <not set>", e.key)
		default:
			fmt.Fprintf(&b, "%s: %v", e.key, v)
		}
		if src := sources[strings.ToLower(e.key)]; dc.withSources && src != "" {
			fmt.Fprintf(&b, " (source: %s)", src)
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func optionalValue[T any](o Optional[T]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return nil
}

func ruleNames(kinds []RuleKind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func writeJSON(w io.Writer, v any, indent string) error {
	var data []byte
	var err error
	if indent != "" {
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
