package adapters

import (
	"path/filepath"
	"strconv"

	"github.com/kodurunani99/Automated-Code-review/internal/model"
)

// Parser converte linhas de saída de uma ferramenta em findings.
type Parser func(lines []string) []model.Finding

var parsers = map[string]Parser{
	"pylint": ParsePylintLines,
	"flake8": ParseFlake8Lines,
}

// ForTool devolve o parser da ferramenta, ou nil se ela não tiver um.
func ForTool(name string) Parser {
	return parsers[name]
}

func safeLine(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func normalizePath(p string) string {
	return filepath.ToSlash(p)
}
