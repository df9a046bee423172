package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Azhovan/formatvalidate"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLASS\tSHAPE\tPARAMS\tMESSAGE")
			for _, rule := range formatvalidate.Rules() {
				info := rule.Describe()
				params := strings.Join(info.Params, ",")
				if params == "" {
					params = "-"
				}
				msg := info.DefaultMessage
				if msg == "" {
					msg = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.Shape, params, msg)
			}
			return w.Flush()
		},
	}
}
