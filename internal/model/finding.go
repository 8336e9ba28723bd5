package model

type Severity string

const (
	SevHigh   Severity = "HIGH"
	SevMedium Severity = "MEDIUM"
	SevLow    Severity = "LOW"
	SevInfo   Severity = "INFO"
)

// Finding é uma linha de saída do pylint/flake8 já normalizada.
// StartLine é 1-based; Column 0 significa que a ferramenta não informou coluna.
type Finding struct {
	ToolName  string   `json:"tool" yaml:"tool"`
	RuleID    string   `json:"rule_id" yaml:"rule_id"`
	RuleName  string   `json:"rule_name,omitempty" yaml:"rule_name,omitempty"`
	Severity  Severity `json:"severity" yaml:"severity"`
	Message   string   `json:"message" yaml:"message"`
	FilePath  string   `json:"file" yaml:"file"`
	StartLine int      `json:"line" yaml:"line"`
	Column    int      `json:"column,omitempty" yaml:"column,omitempty"`
}
