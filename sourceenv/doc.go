// Package sourceenv loads engine configuration from environment variables.
//
// Key normalization: FV_CUSTOMMESSAGES__FVREQUIRED → custommessages.fvrequired
//
// Example:
//
//	source := sourceenv.New(sourceenv.Options{Prefix: "FV_"})
//	cfg, err := formatvalidate.NewConfigLoader().WithSource(source).Load(ctx)
package sourceenv
