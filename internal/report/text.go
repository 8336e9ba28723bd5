package report

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/kodurunani99/Automated-Code-review/internal/analysis"
)

const NoIssuesMessage = "No issues found."

// As linhas saem exatamente como a ferramenta escreveu: sem conversão de tabs.
var (
	styleBase    = lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	styleError   = styleBase.Foreground(lipgloss.Color("#E74C3C"))
	styleWarning = styleBase.Foreground(lipgloss.Color("#F4D03F"))
	styleLow     = styleBase.Foreground(lipgloss.Color("#20B9B4"))
	styleMuted   = styleBase.Foreground(lipgloss.Color("#2C4A54"))
)

// código da mensagem: pylint (W0611) ou flake8 (F401, E501)
var issueCode = regexp.MustCompile(`: ([A-Z])\d{2,4}[: ]`)

// PrintLines escreve uma linha por problema, ou NoIssuesMessage se não houver nenhum.
// Com styled, as linhas são coloridas pela letra do código.
func PrintLines(w io.Writer, lines []string, styled bool) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, NoIssuesMessage)
		return err
	}
	for _, line := range lines {
		if styled {
			line = styleLine(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func styleLine(line string) string {
	if strings.HasPrefix(line, analysis.ErrorPrefix) {
		return styleError.Bold(true).Render(line)
	}
	m := issueCode.FindStringSubmatch(line)
	if m == nil {
		return styleMuted.Render(line)
	}
	switch m[1] {
	case "E", "F":
		return styleError.Render(line)
	case "W":
		return styleWarning.Render(line)
	default:
		return styleLow.Render(line)
	}
}

// IsTerminal informa se w é um terminal; só nesse caso vale colorir.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
