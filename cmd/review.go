package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodurunani99/Automated-Code-review/internal/config"
	"github.com/kodurunani99/Automated-Code-review/internal/report"
)

func newReviewCmd(opts *options) *cobra.Command {
	var outputFormat, sarifDir string

	reviewCmd := &cobra.Command{
		Use:   "review [arquivo]",
		Short: "Revisa um arquivo Python sem prompt interativo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("output") {
				cfg.Output = outputFormat
			}
			if cmd.Flags().Changed("sarif-dir") {
				cfg.SarifDir = sarifDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.cfg = cfg

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("%s: %s", fileNotFoundMsg, path)
				}
				return err
			}
			opts.logger.Infof("Revisando arquivo: %s", path)

			runner := opts.newRunner()
			out := cmd.OutOrStdout()

			if cfg.FailFast {
				if cfg.Output != "text" {
					return fmt.Errorf("--fail-fast só suporta saída text (recebido '%s')", cfg.Output)
				}
				return report.PrintLines(out, runner.Analyze(cmd.Context(), string(data)), report.IsTerminal(out))
			}

			rep, err := runner.Review(cmd.Context(), string(data))
			if err != nil {
				return fmt.Errorf("revisão: %w", err)
			}
			rep.Target = path

			return report.Render(out, rep, report.Options{
				Format:   cfg.Output,
				SarifDir: cfg.SarifDir,
				Styled:   report.IsTerminal(out),
				Logger:   opts.logger,
			})
		},
	}

	reviewCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Formato da saída (text, json, yaml, sarif)")
	reviewCmd.Flags().StringVar(&sarifDir, "sarif-dir", config.DefaultSarifDir, "Diretório do relatório SARIF")
	return reviewCmd
}
