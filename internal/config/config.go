package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kodurunani99/Automated-Code-review/internal/scanner"
)

const (
	DefaultTimeout  = 60 * time.Second
	DefaultSarifDir = ".pyreview"
)

var validOutputs = map[string]bool{"text": true, "json": true, "yaml": true, "sarif": true}

// Config é o conteúdo do arquivo YAML (--config). Campos ausentes mantêm o default.
type Config struct {
	// Tools na ordem de execução; vazio usa pylint e depois flake8.
	Tools []scanner.Tool `yaml:"tools"`
	// Timeout aplicado a ferramentas sem timeout próprio. 0 desliga.
	Timeout        time.Duration `yaml:"timeout"`
	KeepBlankLines bool          `yaml:"keep_blank_lines"`
	FailFast       bool          `yaml:"fail_fast"`
	Output         string        `yaml:"output"`
	SarifDir       string        `yaml:"sarif_dir"`
}

func Default() Config {
	tools := make([]scanner.Tool, len(scanner.DefaultTools))
	copy(tools, scanner.DefaultTools)
	return Config{
		Tools:    tools,
		Timeout:  DefaultTimeout,
		Output:   "text",
		SarifDir: DefaultSarifDir,
	}
}

// Load lê o arquivo em path sobre os defaults. path vazio devolve Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("ler config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config inválida: %w", err)
	}
	return cfg, nil
}

// Validate completa ferramentas declaradas só pelo nome e checa o restante.
func (c *Config) Validate() error {
	if len(c.Tools) == 0 {
		c.Tools = Default().Tools
	}

	var errs []error
	seen := map[string]bool{}
	for i, t := range c.Tools {
		if builtin, ok := scanner.Lookup(t.Name); ok && t.Command == "" {
			builtin.Timeout = t.Timeout
			if len(t.Args) > 0 {
				builtin.Args = t.Args
			}
			if len(t.VersionArgs) > 0 {
				builtin.VersionArgs = t.VersionArgs
			}
			c.Tools[i] = builtin
			t = builtin
		}
		switch {
		case strings.TrimSpace(t.Name) == "":
			errs = append(errs, fmt.Errorf("tools[%d]: name obrigatório", i))
		case t.Command == "":
			errs = append(errs, fmt.Errorf("tools[%d]: %w: '%s' (informe command)", i, scanner.ErrUnknownTool, t.Name))
		case seen[t.Name]:
			errs = append(errs, fmt.Errorf("tools[%d]: nome duplicado '%s'", i, t.Name))
		}
		seen[t.Name] = true
		if t.Timeout < 0 {
			errs = append(errs, fmt.Errorf("tools[%d] (%s): timeout negativo", i, t.Name))
		}
	}

	if c.Timeout < 0 {
		errs = append(errs, errors.New("timeout negativo"))
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if c.Output == "" {
		c.Output = "text"
	}
	if !validOutputs[c.Output] {
		errs = append(errs, fmt.Errorf("output '%s' não suportado (text, json, yaml, sarif)", c.Output))
	}
	if c.SarifDir == "" {
		c.SarifDir = DefaultSarifDir
	}
	return errors.Join(errs...)
}

// ResolvedTools devolve as ferramentas com o timeout global aplicado onde
// não há timeout próprio.
func (c Config) ResolvedTools() []scanner.Tool {
	out := make([]scanner.Tool, len(c.Tools))
	for i, t := range c.Tools {
		if t.Timeout == 0 {
			t.Timeout = c.Timeout
		}
		out[i] = t
	}
	return out
}
