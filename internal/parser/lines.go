package parser

import (
	"strings"
)

// SplitLines quebra a saída de uma ferramenta em "\n" sem descartar nada.
// Uma saída terminada em "\n" gera uma última linha vazia, e uma saída vazia
// gera uma única linha vazia.
func SplitLines(output string) []string {
	return strings.Split(output, "\n")
}

// DropBlank remove linhas vazias ou só com espaços, preservando a ordem.
func DropBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Lines aplica SplitLines e, se keepBlank for falso, DropBlank.
func Lines(output string, keepBlank bool) []string {
	lines := SplitLines(output)
	if keepBlank {
		return lines
	}
	return DropBlank(lines)
}
