package formatvalidate

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Configuration keys recognized by ConfigLoader. Keys are matched after
// lower-casing.
const (
	KeyInvalidClass        = "invalidclass"
	KeyKeepFocus           = "keepfocus"
	KeyShowConsoleMessages = "showconsolemessages"
	KeyCustomMessages      = "custommessages"
)

// ConfigLoader builds a Config from layered sources.
// Sources are processed in order (later override earlier).
type ConfigLoader struct {
	sources []Source
	strict  bool // Fail on unknown keys (default: true)
}

// NewConfigLoader creates a ConfigLoader with no sources and strict mode
// enabled.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		sources: make([]Source, 0),
		strict:  true,
	}
}

// WithSource adds a source. Sources are processed in order (later override earlier).
func (l *ConfigLoader) WithSource(src Source) *ConfigLoader {
	l.sources = append(l.sources, src)
	return l
}

// Strict controls whether unknown keys cause errors. Default: true.
func (l *ConfigLoader) Strict(strict bool) *ConfigLoader {
	l.strict = strict
	return l
}

type mergedEntry struct {
	value      any
	sourceName string
}

// Load merges every source and binds the result. Binding and strict-mode
// failures are returned together as a *ValidationError. Settings absent
// from every source stay unset, so the result can be passed to Attach or
// merged over DefaultConfig.
func (l *ConfigLoader) Load(ctx context.Context) (Config, error) {
	merged := make(map[string]mergedEntry)

	for _, source := range l.sources {
		var data map[string]any
		var originalKeys map[string]string
		var err error

		if withKeys, ok := source.(SourceWithKeys); ok {
			data, originalKeys, err = withKeys.LoadWithKeys(ctx)
		} else {
			data, err = source.Load(ctx)
		}
		if err != nil {
			return Config{}, fmt.Errorf("load source %s: %w", source.Name(), err)
		}

		for key, value := range data {
			normalized := strings.ToLower(key)

			// env sources report the variable each key came from
			sourceName := source.Name()
			if orig, ok := originalKeys[normalized]; ok && strings.HasPrefix(sourceName, "env") {
				sourceName = "env:" + orig
			}
			merged[normalized] = mergedEntry{value: value, sourceName: sourceName}
		}
	}

	var cfg Config
	var errs []FieldError

	for _, key := range sortedKeys(merged) {
		entry := merged[key]
		bound, fe := bindKey(&cfg, key, entry.value)
		if fe != nil {
			errs = append(errs, *fe)
			continue
		}
		if !bound {
			if l.strict {
				errs = append(errs, FieldError{
					FieldPath: key,
					Code:      ErrCodeUnknownKey,
					Message:   "unknown configuration key (strict mode)",
				})
			}
			continue
		}
		cfg.provenance = append(cfg.provenance, KeyProvenance{Key: key, SourceName: entry.sourceName})
	}

	if len(errs) > 0 {
		return Config{}, &ValidationError{FieldErrors: errs}
	}
	return cfg, nil
}

// bindKey applies one normalized key to cfg. It reports false for keys it
// does not recognize.
func bindKey(cfg *Config, key string, value any) (bool, *FieldError) {
	switch key {
	case KeyInvalidClass:
		s, ok := value.(string)
		if !ok {
			return true, typeError(key, "string", value)
		}
		cfg.InvalidClass = strings.TrimSpace(s)
		return true, nil

	case KeyKeepFocus, KeyShowConsoleMessages:
		b, ok := toBool(value)
		if !ok {
			return true, typeError(key, "bool", value)
		}
		if key == KeyKeepFocus {
			cfg.KeepFocus = Some(b)
		} else {
			cfg.ShowConsoleMessages = Some(b)
		}
		return true, nil
	}

	name, ok := strings.CutPrefix(key, KeyCustomMessages+".")
	if !ok {
		return false, nil
	}
	rule, ok := LookupRule(name)
	if !ok {
		return true, &FieldError{
			FieldPath: key,
			Code:      ErrCodeUnknownRule,
			Message:   fmt.Sprintf("no rule named %q", name),
		}
	}
	msg, ok := value.(string)
	if !ok {
		return true, typeError(key, "string", value)
	}
	if cfg.CustomMessages == nil {
		cfg.CustomMessages = make(map[string]string)
	}
	cfg.CustomMessages[rule.String()] = msg
	return true, nil
}

// toBool accepts booleans and strconv.ParseBool spellings.
func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	}
	return false, false
}

func typeError(key, want string, value any) *FieldError {
	return &FieldError{
		FieldPath: key,
		Code:      ErrCodeInvalidType,
		Message:   fmt.Sprintf("expected %s, got %T", want, value),
	}
}

func sortedKeys(m map[string]mergedEntry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
