package formatvalidate

import (
	"context"
	"maps"
	"strings"
)

// Source provides flat configuration data. Keys are dot-separated
// (e.g. "custommessages.fvrequired").
type Source interface {
	Load(ctx context.Context) (map[string]any, error)

	// Name identifies the source in provenance (e.g. "file:form.yaml").
	Name() string
}

// SourceWithKeys is implemented by sources that can report the original
// key each normalized key was read from.
type SourceWithKeys interface {
	Source
	LoadWithKeys(ctx context.Context) (data map[string]any, originalKeys map[string]string, err error)
}

type mapSource struct {
	name string
	data map[string]any
}

// MapSource wraps in-memory data, typically command-line overrides.
func MapSource(name string, data map[string]any) Source {
	flat := make(map[string]any, len(data))
	for k, v := range data {
		flat[strings.TrimSpace(k)] = v
	}
	return &mapSource{name: name, data: flat}
}

func (m *mapSource) Load(context.Context) (map[string]any, error) {
	out := make(map[string]any, len(m.data))
	maps.Copy(out, m.data)
	return out, nil
}

func (m *mapSource) Name() string {
	return m.name
}
