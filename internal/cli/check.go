package cli

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Azhovan/formatvalidate"
	"github.com/Azhovan/formatvalidate/dom"
	"github.com/Azhovan/formatvalidate/htmlform"
	"github.com/Azhovan/formatvalidate/logger"
	"github.com/Azhovan/formatvalidate/sourcefile"
)

type checkOptions struct {
	config    configFlags
	form      string
	values    string
	asJSON    bool
	sources   bool
	render    string
	logFormat string
	verbose   bool
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check <page.html>",
		Short: "Fill a form, run every rule and report the result",
		Long: "check parses an HTML page, optionally fills its fields from a values file, " +
			"runs each field's rules as if the user had tabbed through the form, then " +
			"runs a full validation sweep. It exits non-zero when any field is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVar(&opts.form, "form", "", "Selector of the form to check (default: first form)")
	cmd.Flags().StringVar(&opts.values, "values", "", "File of field values keyed by id or name (yaml, toml or json)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&opts.sources, "sources", false, "Show where each message and class came from")
	cmd.Flags().StringVar(&opts.render, "render", "", "Write the resulting page, messages included, to this file")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "Diagnostics format: text or json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	return cmd
}

func runCheck(cmd *cobra.Command, page string, opts checkOptions) error {
	cfg, err := opts.config.load(cmd.Context())
	if err != nil {
		return err
	}

	format, err := logger.ParseFormat(opts.logFormat)
	if err != nil {
		return err
	}
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(format),
		logger.WithLevel(level),
		logger.WithAttr(slog.String("page", page)),
	)

	f, err := os.Open(page)
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer f.Close()

	doc, form, err := htmlform.LoadForm(f, opts.form)
	if err != nil {
		return err
	}

	ctrl := formatvalidate.Attach(form, cfg, formatvalidate.WithLogger(log))

	if opts.values != "" {
		values, err := sourcefile.ReadValues(opts.values)
		if err != nil {
			return fmt.Errorf("read values: %w", err)
		}
		if err := fill(doc, form, values, log); err != nil {
			return err
		}
	}

	valid := ctrl.IsValid()
	log.Debug("validation sweep finished", slog.Bool("valid", valid))

	dumpOpts := []formatvalidate.DumpOption{}
	if opts.asJSON {
		dumpOpts = append(dumpOpts, formatvalidate.AsJSON())
	}
	if opts.sources {
		dumpOpts = append(dumpOpts, formatvalidate.WithSources())
	}
	if err := formatvalidate.DumpState(cmd.OutOrStdout(), ctrl, dumpOpts...); err != nil {
		return err
	}

	if opts.render != "" {
		if err := renderFile(opts.render, doc); err != nil {
			return err
		}
	}

	if !valid {
		return ErrInvalidForm
	}
	return nil
}

// fill types each value into its control and tabs away, so blur handlers
// run in document order. Keys match the control's id, then its name.
func fill(doc *dom.Document, form *dom.Form, values map[string]string, log *slog.Logger) error {
	used := make(map[string]bool, len(values))
	for _, n := range form.Controls() {
		key := n.ID()
		v, ok := values[key]
		if !ok {
			key, _ = n.Attr("name")
			v, ok = values[key]
		}
		if !ok || key == "" {
			continue
		}
		used[key] = true

		doc.Tab(n)
		n.SetValue(v)
		log.Debug("filled field", slog.String("field", key), slog.String("value", v))
	}
	doc.Blur()

	var unknown []string
	for key := range values {
		if !used[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("values for unknown fields: %v", unknown)
	}
	return nil
}

func renderFile(path string, doc *dom.Document) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return htmlform.Render(out, doc)
}
