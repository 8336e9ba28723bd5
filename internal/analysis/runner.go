// Package analysis grava o código recebido em um arquivo temporário, roda os
// verificadores externos sobre ele e junta a saída de todos.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kodurunani99/Automated-Code-review/internal/parser"
	"github.com/kodurunani99/Automated-Code-review/internal/scanner"
)

// ErrorPrefix abre a linha sintética que substitui a saída quando a análise falha.
const ErrorPrefix = "Error during analysis: "

// ContentTarget é o nome usado nos findings quando o chamador não informa o arquivo.
const ContentTarget = "<content>"

const probeTimeout = 10 * time.Second

// Runner executa as ferramentas configuradas, uma depois da outra, sobre um
// arquivo temporário. Seguro para uso concorrente: cada chamada tem seu
// próprio arquivo.
type Runner struct {
	tools     []scanner.Tool
	keepBlank bool
	logger    *zap.SugaredLogger

	mu        sync.RWMutex
	probed    bool
	available map[string]bool
	versions  map[string]string
}

type Option func(*Runner)

// WithTools troca as ferramentas (e a ordem) usadas pelo Runner.
func WithTools(tools ...scanner.Tool) Option {
	return func(r *Runner) {
		r.tools = append([]scanner.Tool(nil), tools...)
	}
}

// WithKeepBlankLines mantém as linhas em branco da saída das ferramentas,
// inclusive a linha vazia gerada pelo "\n" final.
func WithKeepBlankLines(keep bool) Option {
	return func(r *Runner) {
		r.keepBlank = keep
	}
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		tools:     append([]scanner.Tool(nil), scanner.DefaultTools...),
		logger:    zap.NewNop().Sugar(),
		available: map[string]bool{},
		versions:  map[string]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tools devolve uma cópia das ferramentas configuradas.
func (r *Runner) Tools() []scanner.Tool {
	return append([]scanner.Tool(nil), r.tools...)
}

// Analyze roda todas as ferramentas sobre source e devolve as linhas de saída
// de cada uma, na ordem das ferramentas. Qualquer falha (arquivo temporário,
// ferramenta que não inicia, timeout) descarta tudo e devolve uma única
// linha começando com ErrorPrefix.
func (r *Runner) Analyze(ctx context.Context, source string) []string {
	ctx, span := startSpan(ctx, "analysis.Analyze", len(r.tools), len(source))
	defer span.End()

	lines, err := r.analyze(ctx, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Debugw("análise falhou", "erro", err)
		recordIssueLines(ctx, "all-or-nothing", 1)
		return []string{ErrorPrefix + err.Error()}
	}

	span.SetAttributes(attribute.Int("review.lines", len(lines)))
	recordIssueLines(ctx, "all-or-nothing", len(lines))
	return lines
}

func (r *Runner) analyze(ctx context.Context, source string) (lines []string, err error) {
	path, err := writeTransient(source)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && err == nil {
			lines, err = nil, fmt.Errorf("remover arquivo temporário: %w", rmErr)
		}
	}()

	for _, tool := range r.tools {
		start := time.Now()
		out, runErr := scanner.Run(ctx, tool, path)
		if runErr != nil {
			recordToolRun(ctx, tool.Name, StatusFailed, time.Since(start))
			return nil, runErr
		}
		recordToolRun(ctx, tool.Name, StatusOK, time.Since(start))

		toolLines := parser.Lines(out.Stdout, r.keepBlank)
		r.logger.Debugw("ferramenta executada",
			"ferramenta", tool.Name,
			"arquivo", path,
			"exit", out.ExitCode,
			"linhas", len(toolLines),
		)
		lines = append(lines, toolLines...)
	}
	return lines, nil
}

// Review roda cada ferramenta de forma independente: a falha de uma não
// descarta a saída das outras. Ferramentas ausentes no probe não são
// executadas e aparecem como StatusUnavailable. Só retorna erro se o
// arquivo temporário não puder ser criado.
func (r *Runner) Review(ctx context.Context, source string) (*Report, error) {
	ctx, span := startSpan(ctx, "analysis.Review", len(r.tools), len(source))
	defer span.End()

	r.ensureProbed(ctx)

	path, err := writeTransient(source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			r.logger.Warnw("não foi possível remover arquivo temporário", "arquivo", path, "erro", err)
		}
	}()

	report := &Report{
		ID:            uuid.NewString(),
		Target:        ContentTarget,
		transientPath: path,
	}
	for _, tool := range r.tools {
		report.Checks = append(report.Checks, r.runCheck(ctx, tool, path))
	}

	lines := report.Lines()
	span.SetAttributes(
		attribute.String("review.id", report.ID),
		attribute.Int("review.lines", len(lines)),
		attribute.Bool("review.has_failures", report.HasFailures()),
	)
	recordIssueLines(ctx, "independent", len(lines))
	r.logger.Debugw("revisão concluída", "id", report.ID, "linhas", len(lines), "falhas", report.HasFailures())
	return report, nil
}

func (r *Runner) runCheck(ctx context.Context, tool scanner.Tool, path string) CheckResult {
	res := CheckResult{Tool: tool.Name, Version: r.Version(tool.Name)}

	if !r.IsAvailable(tool.Name) {
		res.Status = StatusUnavailable
		res.setErr(&scanner.ToolError{Tool: tool.Name, Err: scanner.ErrToolNotFound})
		recordToolRun(ctx, tool.Name, res.Status, 0)
		r.logger.Warnw("ferramenta indisponível, pulando", "ferramenta", tool.Name, "comando", tool.Command)
		return res
	}

	start := time.Now()
	out, err := scanner.Run(ctx, tool, path)
	res.Duration = time.Since(start)
	res.Stderr = out.Stderr
	res.ExitCode = out.ExitCode

	switch {
	case err != nil:
		res.Status = StatusFailed
		var toolErr *scanner.ToolError
		if !errors.As(err, &toolErr) {
			err = &scanner.ToolError{Tool: tool.Name, Err: err}
		}
		res.setErr(err)
	case out.Failed():
		res.Status = StatusFailed
		res.setErr(&scanner.ToolError{Tool: tool.Name, Err: scanner.ErrToolFailed, Stderr: firstLine(out.Stderr)})
	default:
		res.Status = StatusOK
		res.Lines = parser.Lines(out.Stdout, r.keepBlank)
	}

	recordToolRun(ctx, tool.Name, res.Status, res.Duration)
	if res.Err != nil {
		r.logger.Warnw("ferramenta falhou", "ferramenta", tool.Name, "erro", res.Err)
	}
	return res
}

func (c *CheckResult) setErr(err error) {
	c.Err = err
	c.Error = err.Error()
}

// Probe consulta a versão de todas as ferramentas em paralelo e guarda quais
// estão disponíveis. Pode ser chamado de novo para refazer a detecção.
func (r *Runner) Probe(ctx context.Context) map[string]bool {
	available := make([]bool, len(r.tools))
	versions := make([]string, len(r.tools))

	g, gCtx := errgroup.WithContext(ctx)
	for i, tool := range r.tools {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(gCtx, probeTimeout)
			defer cancel()

			v, err := scanner.Probe(probeCtx, tool)
			if err != nil {
				r.logger.Warnw("ferramenta não instalada", "ferramenta", tool.Name, "comando", tool.Command, "erro", err)
				return nil
			}
			available[i], versions[i] = true, v
			r.logger.Debugw("ferramenta disponível", "ferramenta", tool.Name, "versao", v)
			return nil
		})
	}
	_ = g.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	result := make(map[string]bool, len(r.tools))
	for i, tool := range r.tools {
		r.available[tool.Name] = available[i]
		r.versions[tool.Name] = versions[i]
		result[tool.Name] = available[i]
	}
	r.probed = true
	return result
}

func (r *Runner) ensureProbed(ctx context.Context) {
	r.mu.RLock()
	probed := r.probed
	r.mu.RUnlock()
	if !probed {
		r.Probe(ctx)
	}
}

// IsAvailable informa o resultado do último Probe para a ferramenta.
func (r *Runner) IsAvailable(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available[name]
}

func (r *Runner) Version(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.versions[name]
}

// writeTransient cria o arquivo temporário com uma cópia exata de source.
func writeTransient(source string) (string, error) {
	f, err := os.CreateTemp("", "pyreview-*.py")
	if err != nil {
		return "", fmt.Errorf("criar arquivo temporário: %w", err)
	}
	path := f.Name()
	if _, err := f.WriteString(source); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("escrever arquivo temporário: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("fechar arquivo temporário: %w", err)
	}
	return path, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
