package adapters

import (
	"regexp"
	"strings"

	"github.com/kodurunani99/Automated-Code-review/internal/model"
)

// Formato padrão do flake8: path:line:col: CODE mensagem
var flake8Line = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]+\d+) (.*)$`)

func ParseFlake8Lines(lines []string) []model.Finding {
	out := make([]model.Finding, 0, len(lines))
	for _, line := range lines {
		m := flake8Line.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		out = append(out, model.Finding{
			ToolName:  "flake8",
			RuleID:    m[4],
			Severity:  flake8Severity(m[4]),
			Message:   strings.TrimSpace(m[5]),
			FilePath:  normalizePath(m[1]),
			StartLine: safeLine(atoi(m[2])),
			Column:    safeLine(atoi(m[3])),
		})
	}
	return out
}

func flake8Severity(code string) model.Severity {
	switch {
	case strings.HasPrefix(code, "E9"), strings.HasPrefix(code, "F"):
		return model.SevHigh
	case strings.HasPrefix(code, "E"), strings.HasPrefix(code, "W"):
		return model.SevMedium
	case strings.HasPrefix(code, "C"):
		return model.SevLow
	default:
		return model.SevInfo
	}
}
