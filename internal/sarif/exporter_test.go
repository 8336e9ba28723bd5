package sarif

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodurunani99/Automated-Code-review/internal/model"
)

func sampleFindings() []model.Finding {
	return []model.Finding{
		{ToolName: "pylint", RuleID: "W0611", RuleName: "unused-import", Severity: model.SevMedium, Message: "Unused import os", FilePath: "<content>", StartLine: 1, Column: 1},
		{ToolName: "flake8", RuleID: "F401", Severity: model.SevHigh, Message: "'os' imported but unused ", FilePath: "./demo.py", StartLine: 1, Column: 1},
		{ToolName: "pylint", RuleID: "C0114", Severity: model.SevLow, Message: "Missing module docstring", FilePath: "", StartLine: 0},
	}
}

func TestBuild_GroupsRunsByTool(t *testing.T) {
	log := Build(sampleFindings(), map[string]string{"pylint": "3.2.0"})

	require.Len(t, log.Runs, 2)
	assert.Equal(t, "pylint", log.Runs[0].Tool.Driver.Name)
	assert.Equal(t, "3.2.0", log.Runs[0].Tool.Driver.Version)
	assert.Len(t, log.Runs[0].Results, 2)
	assert.Equal(t, "flake8", log.Runs[1].Tool.Driver.Name)

	first := log.Runs[0].Results[0]
	assert.Equal(t, "W0611", first.RuleID)
	assert.Equal(t, []Rule{
		{ID: "W0611", Name: "unused-import"},
		{ID: "C0114"},
	}, log.Runs[0].Tool.Driver.Rules)
	assert.Equal(t, []Rule{{ID: "F401"}}, log.Runs[1].Tool.Driver.Rules)
	assert.Equal(t, "warning", first.Level)

	fl := log.Runs[1].Results[0]
	assert.Equal(t, "error", fl.Level)
	assert.Equal(t, "'os' imported but unused", fl.Message.Text)
	assert.Equal(t, "demo.py", fl.Locations[0].PhysicalLocation.ArtifactLocation.URI)

	noLoc := log.Runs[0].Results[1]
	assert.Equal(t, "note", noLoc.Level)
	assert.Equal(t, "UNKNOWN", noLoc.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 1, noLoc.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestExport_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := Export(sampleFindings(), dir, "pyreview", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pyreview.sarif"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var log Log
	require.NoError(t, json.Unmarshal(data, &log))
	assert.Equal(t, Version, log.Version)
	assert.Len(t, log.Runs, 2)
}

func TestBuild_NoFindings(t *testing.T) {
	log := Build(nil, nil)
	assert.Empty(t, log.Runs)
	assert.Equal(t, Schema, log.Schema)
}

func TestSortFindings(t *testing.T) {
	fs := []model.Finding{
		{FilePath: "b.py", StartLine: 1, RuleID: "A"},
		{FilePath: "a.py", StartLine: 2, RuleID: "B"},
		{FilePath: "a.py", StartLine: 2, RuleID: "A"},
		{FilePath: "a.py", StartLine: 1, RuleID: "Z"},
	}
	SortFindings(fs)

	assert.Equal(t, "Z", fs[0].RuleID)
	assert.Equal(t, "A", fs[1].RuleID)
	assert.Equal(t, "B", fs[2].RuleID)
	assert.Equal(t, "b.py", fs[3].FilePath)
}
