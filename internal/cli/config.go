package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/internal/normalize"
	"github.com/Azhovan/formatvalidate/sourceenv"
	"github.com/Azhovan/formatvalidate/sourcefile"
)

// configFlags are shared by every command that builds a Config.
type configFlags struct {
	files     []string
	envPrefix string
	set       []string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.files, "config", nil, "Config file (yaml, toml or json); repeatable, later files win")
	cmd.Flags().StringVar(&f.envPrefix, "env-prefix", "", "Read settings from environment variables with this prefix (e.g. FV_)")
	cmd.Flags().StringArrayVar(&f.set, "set", nil, "Override a setting, e.g. --set invalidClass=error; repeatable")
}

// load layers files, then environment, then --set overrides.
func (f *configFlags) load(ctx context.Context) (formatvalidate.Config, error) {
	loader := formatvalidate.NewConfigLoader()
	for _, path := range f.files {
		loader.WithSource(sourcefile.New(path, sourcefile.Options{Required: true}))
	}
	if f.envPrefix != "" {
		loader.WithSource(sourceenv.New(sourceenv.Options{Prefix: f.envPrefix}))
	}

	if len(f.set) > 0 {
		overrides := make(map[string]any, len(f.set))
		for _, kv := range f.set {
			key, value, err := normalize.SplitAssignment(kv)
			if err != nil {
				return formatvalidate.Config{}, fmt.Errorf("--set: %w", err)
			}
			overrides[key] = value
		}
		loader.WithSource(formatvalidate.MapSource("flag:--set", overrides))
	}

	cfg, err := loader.Load(ctx)
	if err != nil {
		return formatvalidate.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	var flags configFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective engine configuration and where each setting came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd.Context())
			if err != nil {
				return err
			}

			opts := []formatvalidate.DumpOption{formatvalidate.WithSources()}
			if asJSON {
				opts = append(opts, formatvalidate.AsJSON())
			}
			return formatvalidate.DumpConfig(cmd.OutOrStdout(), formatvalidate.DefaultConfig().Merge(cfg), opts...)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return cmd
}
