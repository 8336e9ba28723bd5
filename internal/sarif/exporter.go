package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kodurunani99/Automated-Code-review/internal/model"
)

const (
	Version = "2.1.0"
	// schema RTM reconhecido por GitHub/VSCode
	Schema = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule descreve uma regra da ferramenta; Name é o símbolo do pylint.
type Rule struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

// Build agrupa os findings em um run por ferramenta, na ordem em que cada
// ferramenta aparece. versions mapeia nome da ferramenta -> versão (opcional).
func Build(findings []model.Finding, versions map[string]string) Log {
	var order []string
	byTool := map[string][]Result{}
	rules := map[string][]Rule{}
	seenRule := map[string]bool{}
	for _, f := range findings {
		if _, seen := byTool[f.ToolName]; !seen {
			order = append(order, f.ToolName)
			byTool[f.ToolName] = []Result{}
		}
		byTool[f.ToolName] = append(byTool[f.ToolName], toResult(f))

		key := f.ToolName + "\x00" + f.RuleID
		if !seenRule[key] {
			seenRule[key] = true
			rules[f.ToolName] = append(rules[f.ToolName], Rule{ID: f.RuleID, Name: f.RuleName})
		}
	}

	runs := make([]Run, 0, len(order))
	for _, name := range order {
		runs = append(runs, Run{
			Tool: Tool{Driver: Driver{
				Name:    name,
				Version: versions[name],
				Rules:   rules[name],
			}},
			Results: byTool[name],
		})
	}

	return Log{Version: Version, Schema: Schema, Runs: runs}
}

// Export gera <outDir>/<fileBase>.sarif a partir dos findings.
func Export(findings []model.Finding, outDir, fileBase string, versions map[string]string) (string, error) {
	log := Build(findings, versions)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("criar dir sarif: %w", err)
	}
	outPath := filepath.Join(outDir, fileBase+".sarif")

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sarif: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("escrever sarif: %w", err)
	}
	return outPath, nil
}

func toResult(f model.Finding) Result {
	fileURI := toURI(f.FilePath)
	if strings.TrimSpace(fileURI) == "" {
		fileURI = "UNKNOWN"
	}
	start := f.StartLine
	if start <= 0 {
		start = 1
	}
	return Result{
		RuleID: f.RuleID,
		Level:  sevToLevel(f.Severity),
		Message: Message{
			Text: strings.TrimSpace(f.Message),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: fileURI,
					},
					Region: Region{
						StartLine:   start,
						StartColumn: f.Column,
					},
				},
			},
		},
	}
}

func SortFindings(fs []model.Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].FilePath == fs[j].FilePath {
			if fs[i].StartLine == fs[j].StartLine {
				return fs[i].RuleID < fs[j].RuleID
			}
			return fs[i].StartLine < fs[j].StartLine
		}
		return fs[i].FilePath < fs[j].FilePath
	})
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevHigh:
		return "error"
	case model.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
