package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newToolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Verifica se as ferramentas configuradas estão instaladas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := opts.newRunner()
			available := runner.Probe(cmd.Context())

			out := cmd.OutOrStdout()
			for _, tool := range runner.Tools() {
				if !available[tool.Name] {
					fmt.Fprintf(out, "- %s: not installed (%s)\n", tool.Name, tool.Command)
					continue
				}
				fmt.Fprintf(out, "- %s: %s\n", tool.Name, runner.Version(tool.Name))
			}
			return nil
		},
	}
}
