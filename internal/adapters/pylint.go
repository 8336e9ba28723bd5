package adapters

import (
	"regexp"
	"strings"

	"github.com/kodurunani99/Automated-Code-review/internal/model"
	"github.com/kodurunani99/Automated-Code-review/internal/parser"
)

// Formato texto do pylint: path:line:col: MSGID: mensagem (símbolo)
var pylintLine = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]\d{4}): (.*)$`)

var pylintSymbol = regexp.MustCompile(`^(.*) \(([a-z0-9-]+)\)$`)

// ParsePylintLines extrai findings das linhas do pylint. Cabeçalhos de
// módulo, a nota final e linhas em branco são ignorados.
func ParsePylintLines(lines []string) []model.Finding {
	var out []model.Finding
	for _, line := range lines {
		m := pylintLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		msg, symbol := m[5], ""
		if s := pylintSymbol.FindStringSubmatch(msg); s != nil {
			msg, symbol = s[1], s[2]
		}
		out = append(out, model.Finding{
			ToolName:  "pylint",
			RuleID:    m[4],
			RuleName:  symbol,
			Severity:  pylintSeverity(m[4]),
			Message:   strings.TrimSpace(msg),
			FilePath:  normalizePath(m[1]),
			StartLine: safeLine(atoi(m[2])),
			// pylint reporta coluna 0-based
			Column: safeLine(atoi(m[3])) + 1,
		})
	}
	return out
}

func pylintSeverity(msgID string) model.Severity {
	switch parser.SeverityMarker(msgID[0]) {
	case 'F', parser.Error:
		return model.SevHigh
	case parser.Warning:
		return model.SevMedium
	case 'R', parser.Convention:
		return model.SevLow
	default:
		return model.SevInfo
	}
}
