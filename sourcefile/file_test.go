package sourcefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "form.yaml",
			content: `
invalidClass: error
keepFocus: false
customMessages:
  fvRequired: Please fill this in
`,
		},
		{
			name: "toml",
			file: "form.toml",
			content: `
invalidClass = "error"
keepFocus = false

[customMessages]
fvRequired = "Please fill this in"
`,
		},
		{
			name:    "json",
			file:    "form.json",
			content: `{"invalidClass": "error", "keepFocus": false, "customMessages": {"fvRequired": "Please fill this in"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := New(writeFile(t, tt.file, tt.content), Options{})

			data, keys, err := src.LoadWithKeys(context.Background())
			require.NoError(t, err)

			assert.Equal(t, "error", data["invalidclass"])
			assert.Equal(t, false, data["keepfocus"])
			assert.Equal(t, "Please fill this in", data["custommessages.fvrequired"])
			assert.Equal(t, "customMessages.fvRequired", keys["custommessages.fvrequired"])
			assert.Equal(t, "file:"+tt.file, src.Name())
		})
	}
}

func TestFileSource_ExplicitFormat(t *testing.T) {
	path := writeFile(t, "form.conf", "invalidClass: error\n")

	data, err := New(path, Options{Format: "YAML"}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "error", data["invalidclass"])
}

func TestFileSource_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	data, err := New(path, Options{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = New(path, Options{Required: true}).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_Errors(t *testing.T) {
	_, err := New(writeFile(t, "form.ini", "x=1"), Options{}).Load(context.Background())
	assert.ErrorContains(t, err, "unsupported file format")

	_, err = New(writeFile(t, "form.json", "{"), Options{}).Load(context.Background())
	assert.ErrorContains(t, err, "parse JSON file")
}

func TestFileSource_EmptyFile(t *testing.T) {
	data, err := New(writeFile(t, "form.yaml", ""), Options{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestReadValues(t *testing.T) {
	path := writeFile(t, "values.yaml", `
email: " Ada@Example.com "
age: 42
postal: a0a0a0
empty:
`)

	values, err := ReadValues(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"email":  " Ada@Example.com ",
		"age":    "42",
		"postal": "a0a0a0",
		"empty":  "",
	}, values)

	_, err = ReadValues(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
