package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kodurunani99/Automated-Code-review/internal/analysis"
	"github.com/kodurunani99/Automated-Code-review/internal/model"
	"github.com/kodurunani99/Automated-Code-review/internal/sarif"
)

const sarifFileBase = "pyreview"

type Options struct {
	Format   string // text, json, yaml, sarif
	SarifDir string
	Styled   bool
	Logger   *zap.SugaredLogger
}

type document struct {
	ID       string                 `json:"id" yaml:"id"`
	Target   string                 `json:"target" yaml:"target"`
	Checks   []analysis.CheckResult `json:"checks" yaml:"checks"`
	Findings []model.Finding        `json:"findings" yaml:"findings"`
	Lines    []string               `json:"lines" yaml:"lines"`
}

// Render escreve o relatório em w no formato pedido.
func Render(w io.Writer, rep *analysis.Report, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	switch strings.ToLower(opts.Format) {
	case "", "text":
		return PrintLines(w, rep.Lines(), opts.Styled)

	case "json":
		encoded, err := json.MarshalIndent(newDocument(rep), "", "  ")
		if err != nil {
			return fmt.Errorf("gerar JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(encoded))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(rep)); err != nil {
			return fmt.Errorf("gerar YAML: %w", err)
		}
		return enc.Close()

	case "sarif":
		findings := rep.Findings()
		sarif.SortFindings(findings)
		outPath, err := sarif.Export(findings, opts.SarifDir, sarifFileBase, rep.Versions())
		if err != nil {
			return err
		}
		logger.Infow("Resultado salvo com sucesso", "formato", "sarif", "arquivo", outPath, "findings", len(findings))
		_, err = fmt.Fprintf(w, "SARIF report written to %s\n", outPath)
		return err
	}

	return fmt.Errorf("formato de saída '%s' não suportado", opts.Format)
}

func newDocument(rep *analysis.Report) document {
	doc := document{
		ID:       rep.ID,
		Target:   rep.Target,
		Checks:   rep.Checks,
		Findings: rep.Findings(),
		Lines:    rep.Lines(),
	}
	if doc.Findings == nil {
		doc.Findings = []model.Finding{}
	}
	if doc.Lines == nil {
		doc.Lines = []string{}
	}
	return doc
}
