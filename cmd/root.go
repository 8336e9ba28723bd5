package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kodurunani99/Automated-Code-review/internal/analysis"
	"github.com/kodurunani99/Automated-Code-review/internal/config"
	"github.com/kodurunani99/Automated-Code-review/internal/logging"
)

// options guarda as flags globais e o que é montado a partir delas antes de
// cada comando.
type options struct {
	configPath     string
	debugMode      bool
	keepBlankLines bool
	failFast       bool

	cfg    config.Config
	logger *zap.SugaredLogger
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pyreview",
		Short: "pyreview - revisão de código Python com pylint e flake8",
		Long: "Sem subcomando, pede o caminho de um arquivo Python, roda pylint e\n" +
			"flake8 sobre o conteúdo e imprime a saída das duas ferramentas.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runInteractive(cmd, opts)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Arquivo de configuração YAML")
	flags.BoolVar(&opts.debugMode, "debug", false, "Habilita logs em nível debug")
	flags.BoolVar(&opts.keepBlankLines, "keep-blank-lines", false, "Mantém linhas em branco da saída das ferramentas")
	flags.BoolVar(&opts.failFast, "fail-fast", false, "Qualquer falha descarta a saída de todas as ferramentas")

	rootCmd.AddCommand(newReviewCmd(opts))
	rootCmd.AddCommand(newToolsCmd(opts))
	return rootCmd
}

func Execute(ctx context.Context) {
	cobra.CheckErr(NewRootCmd().ExecuteContext(ctx))
}

// setup inicializa o logger e aplica defaults <- arquivo <- flags.
func (o *options) setup(cmd *cobra.Command) error {
	o.logger = logging.InitLogger(o.debugMode)

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("keep-blank-lines") {
		cfg.KeepBlankLines = o.keepBlankLines
	}
	if flags.Changed("fail-fast") {
		cfg.FailFast = o.failFast
	}
	o.cfg = cfg

	o.logger.Debugw("configuração carregada",
		"arquivo", o.configPath,
		"ferramentas", len(cfg.Tools),
		"timeout", cfg.Timeout,
		"keep_blank_lines", cfg.KeepBlankLines,
		"fail_fast", cfg.FailFast,
	)
	return nil
}

func (o *options) newRunner() *analysis.Runner {
	return analysis.NewRunner(
		analysis.WithTools(o.cfg.ResolvedTools()...),
		analysis.WithKeepBlankLines(o.cfg.KeepBlankLines),
		analysis.WithLogger(o.logger),
	)
}

// lines roda a análise no modo configurado e devolve as linhas a imprimir.
func (o *options) lines(ctx context.Context, runner *analysis.Runner, source string) ([]string, error) {
	if o.cfg.FailFast {
		return runner.Analyze(ctx, source), nil
	}
	rep, err := runner.Review(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("revisão: %w", err)
	}
	return rep.Lines(), nil
}
