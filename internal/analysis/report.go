package analysis

import (
	"path/filepath"
	"time"

	"github.com/kodurunani99/Automated-Code-review/internal/adapters"
	"github.com/kodurunani99/Automated-Code-review/internal/model"
)

type CheckStatus string

const (
	StatusOK          CheckStatus = "ok"
	StatusFailed      CheckStatus = "failed"
	StatusUnavailable CheckStatus = "unavailable"
)

// CheckResult é o resultado de uma ferramenta dentro de uma revisão.
type CheckResult struct {
	Tool     string        `json:"tool" yaml:"tool"`
	Version  string        `json:"version,omitempty" yaml:"version,omitempty"`
	Status   CheckStatus   `json:"status" yaml:"status"`
	Lines    []string      `json:"lines" yaml:"lines"`
	Stderr   string        `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	ExitCode int           `json:"exit_code" yaml:"exit_code"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`

	Err error `json:"-" yaml:"-"`
}

// Report agrega os resultados de todas as ferramentas, na ordem de execução.
type Report struct {
	ID     string        `json:"id" yaml:"id"`
	Target string        `json:"target" yaml:"target"`
	Checks []CheckResult `json:"checks" yaml:"checks"`

	// caminho do arquivo temporário analisado, trocado por Target nos findings
	transientPath string
}

// Lines concatena as linhas de cada ferramenta. Uma ferramenta que falhou ou
// não está instalada contribui com uma única linha "Error during analysis: ...".
func (r *Report) Lines() []string {
	var out []string
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			out = append(out, ErrorPrefix+c.Error)
			continue
		}
		out = append(out, c.Lines...)
	}
	return out
}

// Findings interpreta as linhas das ferramentas que têm parser.
func (r *Report) Findings() []model.Finding {
	var out []model.Finding
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			continue
		}
		parse := adapters.ForTool(c.Tool)
		if parse == nil {
			continue
		}
		for _, f := range parse(c.Lines) {
			if r.transientPath != "" && f.FilePath == filepath.ToSlash(r.transientPath) && r.Target != "" {
				f.FilePath = r.Target
			}
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) HasFailures() bool {
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			return true
		}
	}
	return false
}

// Versions mapeia ferramenta -> versão detectada no probe.
func (r *Report) Versions() map[string]string {
	out := make(map[string]string, len(r.Checks))
	for _, c := range r.Checks {
		if c.Version != "" {
			out[c.Tool] = c.Version
		}
	}
	return out
}
