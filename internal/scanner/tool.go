package scanner

import (
	"time"
)

// Tool descreve como invocar um verificador externo. O caminho do arquivo
// analisado é sempre anexado ao final de Args.
type Tool struct {
	Name        string        `yaml:"name"`
	Command     string        `yaml:"command"`
	Args        []string      `yaml:"args"`
	VersionArgs []string      `yaml:"version_args"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Argv devolve os argumentos completos para analisar path.
func (t Tool) Argv(path string) []string {
	args := make([]string, 0, len(t.Args)+1)
	args = append(args, t.Args...)
	return append(args, path)
}

func (t Tool) versionArgv() []string {
	if len(t.VersionArgs) == 0 {
		return []string{"--version"}
	}
	return t.VersionArgs
}
