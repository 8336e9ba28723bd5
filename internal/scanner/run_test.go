package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.sh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestRun_CapturesOutputAndPassesPath(t *testing.T) {
	script := writeScript(t, `echo "args: $@"; echo "aviso" >&2`)
	tool := Tool{Name: "fake", Command: script, Args: []string{"--output-format=text"}}

	out, err := Run(context.Background(), tool, "/tmp/alvo.py")
	require.NoError(t, err)

	assert.Equal(t, "args: --output-format=text /tmp/alvo.py\n", out.Stdout)
	assert.Equal(t, "aviso\n", out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
	assert.False(t, out.Failed())
}

func TestRun_NonZeroExitWithFindingsIsNotAnError(t *testing.T) {
	script := writeScript(t, `echo "x.py:1:1: F401 'os' imported but unused"; exit 1`)

	out, err := Run(context.Background(), Tool{Name: "fake", Command: script}, "x.py")
	require.NoError(t, err)

	assert.Equal(t, 1, out.ExitCode)
	assert.False(t, out.Failed())
}

func TestRun_NonZeroExitWithoutStdoutFailed(t *testing.T) {
	script := writeScript(t, `echo "boom" >&2; exit 32`)

	out, err := Run(context.Background(), Tool{Name: "fake", Command: script}, "x.py")
	require.NoError(t, err)

	assert.Equal(t, 32, out.ExitCode)
	assert.True(t, out.Failed())
}

func TestRun_MissingExecutable(t *testing.T) {
	tool := Tool{Name: "ghost", Command: "pyreview-ferramenta-inexistente"}

	_, err := Run(context.Background(), tool, "x.py")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrToolNotFound)
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "ghost", toolErr.Tool)
}

func TestRun_Timeout(t *testing.T) {
	script := writeScript(t, `exec sleep 5`)
	tool := Tool{Name: "lento", Command: script, Timeout: 100 * time.Millisecond}

	start := time.Now()
	_, err := Run(context.Background(), tool, "x.py")

	assert.ErrorIs(t, err, ErrToolTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestRun_ContextCanceled(t *testing.T) {
	script := writeScript(t, `echo ok`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Tool{Name: "fake", Command: script}, "x.py")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbe(t *testing.T) {
	script := writeScript(t, `echo "fake 1.2.3"; echo "python 3.12"`)

	version, err := Probe(context.Background(), Tool{Name: "fake", Command: script})
	require.NoError(t, err)
	assert.Equal(t, "fake 1.2.3", version)

	_, err = Probe(context.Background(), Tool{Name: "ghost", Command: "pyreview-ferramenta-inexistente"})
	assert.ErrorIs(t, err, ErrToolNotFound)

	failing := writeScript(t, `echo "sem versão" >&2; exit 2`)
	_, err = Probe(context.Background(), Tool{Name: "quebrada", Command: failing})
	assert.ErrorIs(t, err, ErrToolFailed)
}

func TestToolArgv(t *testing.T) {
	assert.Equal(t, []string{"--output-format=text", "a.py"}, Pylint.Argv("a.py"))
	assert.Equal(t, []string{"a.py"}, Flake8.Argv("a.py"))
	// Argv não pode alterar o slice da definição embutida.
	assert.Equal(t, []string{"--output-format=text"}, Pylint.Args)
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("flake8")
	require.True(t, ok)
	assert.Equal(t, "flake8", tool.Command)

	_, ok = Lookup("kics")
	assert.False(t, ok)
}
