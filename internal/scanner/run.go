package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay limita a espera pelos pipes depois que o processo é morto por timeout.
const waitDelay = 2 * time.Second

// Output guarda o resultado bruto de uma execução.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed informa se a ferramenta terminou com erro sem escrever nada no
// stdout. pylint e flake8 saem com código != 0 quando encontram problemas,
// então só o código de saída não basta.
func (o Output) Failed() bool {
	return o.ExitCode != 0 && strings.TrimSpace(o.Stdout) == ""
}

// Run executa a ferramenta sobre path e captura stdout e stderr.
// Só retorna erro quando o processo não pôde ser iniciado, excedeu
// tool.Timeout ou ctx foi cancelado; código de saída != 0 fica em Output.
func Run(ctx context.Context, tool Tool, path string) (Output, error) {
	runCtx := ctx
	if tool.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, tool.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, tool.Command, tool.Argv(path)...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return out, &ToolError{Tool: tool.Name, Err: ErrToolTimeout, Stderr: out.Stderr}
	}
	if ctx.Err() != nil {
		return out, ctx.Err()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, &ToolError{Tool: tool.Name, Err: fmt.Errorf("%w: %w", ErrToolNotFound, err)}
	}
	return out, nil
}

// Probe consulta a versão da ferramenta. Retorna a primeira linha impressa
// ou ErrToolNotFound se o executável não puder ser iniciado.
func Probe(ctx context.Context, tool Tool) (string, error) {
	cmd := exec.CommandContext(ctx, tool.Command, tool.versionArgv()...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ToolError{Tool: tool.Name, Err: ErrToolFailed, Stderr: strings.TrimSpace(string(out))}
		}
		return "", &ToolError{Tool: tool.Name, Err: fmt.Errorf("%w: %w", ErrToolNotFound, err)}
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return first, nil
}
