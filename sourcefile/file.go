package sourcefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/internal/normalize"
)

// Options configures file source behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false (returns empty map).
	Required bool
}

type decodeFunc func(data []byte, v any) error

var decoders = map[string]decodeFunc{
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
	"json": json.Unmarshal,
	"toml": toml.Unmarshal,
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-based configuration source.
func New(path string, opts Options) formatvalidate.SourceWithKeys {
	return &fileSource{path: path, opts: opts}
}

// Load reads and parses the file, returning flattened configuration.
func (f *fileSource) Load(ctx context.Context) (map[string]any, error) {
	result, _, err := f.LoadWithKeys(ctx)
	return result, err
}

// LoadWithKeys reads and parses the file. Original keys keep the casing
// used in the file.
func (f *fileSource) LoadWithKeys(ctx context.Context) (map[string]any, map[string]string, error) {
	raw, err := f.decode()
	if err != nil || raw == nil {
		return map[string]any{}, map[string]string{}, err
	}

	flattened := make(map[string]any)
	originalKeys := make(map[string]string)
	flatten("", raw, flattened, originalKeys)
	return flattened, originalKeys, nil
}

// decode parses the file into a nested map without flattening. Missing
// optional files yield nil.
func (f *fileSource) decode() (map[string]any, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) && !f.opts.Required {
			return nil, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("required config file not found: %s: %w", f.path, err)
		}
		return nil, fmt.Errorf("read config file %s: %w", f.path, err)
	}

	format := strings.ToLower(f.opts.Format)
	if format == "" {
		format = inferFormat(f.path)
	}
	decode, ok := decoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported file format: %q (supported: yaml, json, toml)", format)
	}

	var raw map[string]any
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s file %s: %w", strings.ToUpper(format), f.path, err)
	}
	return raw, nil
}

// flatten turns nested maps into lower-case dot-separated keys.
func flatten(prefix string, value any, result map[string]any, originalKeys map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			flatten(normalize.ApplyPrefix(prefix, key), val, result, originalKeys)
		}
	case map[any]any:
		for key, val := range v {
			if s, ok := key.(string); ok {
				flatten(normalize.ApplyPrefix(prefix, s), val, result, originalKeys)
			}
		}
	default:
		if prefix != "" {
			lower := strings.ToLower(prefix)
			result[lower] = value
			originalKeys[lower] = prefix
		}
	}
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	return "file:" + filepath.Base(f.path)
}

func inferFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// ReadValues decodes a flat or nested file of field values, as used for
// pre-filling a form. Nested keys are joined with dots; non-string scalars
// are formatted with %v.
func ReadValues(path string) (map[string]string, error) {
	raw, err := (&fileSource{path: path, opts: Options{Required: true}}).decode()
	if err != nil {
		return nil, err
	}

	flat := make(map[string]any)
	orig := make(map[string]string)
	flatten("", raw, flat, orig)

	out := make(map[string]string, len(flat))
	for lower, v := range flat {
		key := orig[lower]
		if v == nil {
			out[key] = ""
			continue
		}
		out[key] = fmt.Sprint(v)
	}
	return out, nil
}
