// Package sourcefile loads engine configuration from YAML, JSON, or TOML files.
//
// Format is auto-detected from extension (.yaml, .yml, .json, .toml).
//
// Example:
//
//	source := sourcefile.New("form.yaml", sourcefile.Options{Required: true})
//	cfg, err := formatvalidate.NewConfigLoader().WithSource(source).Load(ctx)
//
// A file such as
//
//	invalidClass: error
//	customMessages:
//	  fvRequired: Please fill this in
//
// yields the keys "invalidclass" and "custommessages.fvrequired".
package sourcefile
