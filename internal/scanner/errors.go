package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound indica que o executável não pôde ser iniciado
	// (fora do PATH ou sem permissão).
	ErrToolNotFound = errors.New("ferramenta não encontrada")

	// ErrToolTimeout indica que a ferramenta excedeu o timeout configurado.
	ErrToolTimeout = errors.New("tempo limite excedido")

	// ErrToolFailed indica que a ferramenta terminou com erro sem produzir saída.
	ErrToolFailed = errors.New("falha na execução")

	// ErrUnknownTool indica um nome sem definição embutida e sem command.
	ErrUnknownTool = errors.New("ferramenta não suportada")
)

// ToolError associa uma falha de execução à ferramenta que a causou.
type ToolError struct {
	Tool   string
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
