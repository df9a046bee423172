package sourceenv

import (
	"context"
	"os"
	"strings"

	"github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/internal/normalize"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix filters vars starting with prefix (stripped before normalization).
	// Empty = load all vars.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// Keys are always normalized to lowercase after prefix stripping.
	CaseSensitive bool

	// Environ overrides os.Environ, mainly for tests.
	Environ func() []string
}

type envSource struct {
	opts Options
}

// New creates an environment variable source.
func New(opts Options) formatvalidate.SourceWithKeys {
	if opts.Environ == nil {
		opts.Environ = os.Environ
	}
	return &envSource{opts: opts}
}

// Load scans environment variables, filters by prefix, and normalizes keys.
func (e *envSource) Load(ctx context.Context) (map[string]any, error) {
	result, _, err := e.LoadWithKeys(ctx)
	return result, err
}

// LoadWithKeys also reports the variable each normalized key came from.
func (e *envSource) LoadWithKeys(ctx context.Context) (map[string]any, map[string]string, error) {
	result := make(map[string]any)
	originalKeys := make(map[string]string)

	for _, env := range e.opts.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		key, ok := e.stripPrefix(name)
		if !ok || key == "" {
			continue
		}

		// FOO__BAR → foo.bar
		normalized := normalize.ToLowerDotPath(key)
		result[normalized] = value
		originalKeys[normalized] = name
	}

	return result, originalKeys, nil
}

func (e *envSource) stripPrefix(name string) (string, bool) {
	prefix := e.opts.Prefix
	if prefix == "" {
		return name, true
	}
	if len(name) < len(prefix) {
		return "", false
	}
	if e.opts.CaseSensitive {
		return strings.CutPrefix(name, prefix)
	}
	if !strings.EqualFold(name[:len(prefix)], prefix) {
		return "", false
	}
	return name[len(prefix):], true
}

// Name returns "env" or "env:<prefix>".
func (e *envSource) Name() string {
	if e.opts.Prefix == "" {
		return "env"
	}
	return "env:" + e.opts.Prefix
}
