package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSeverity(t *testing.T) {
	output := "************* Module demo\n" +
		"C0114: Missing module docstring (missing-module-docstring)\n" +
		"W0611: Unused import os (unused-import)\n" +
		"E0401: Unable to import 'nope' (import-error)\n" +
		"R0903: Too few public methods (too-few-public-methods)\n" +
		"\n" +
		"Your code has been rated at 0.00/10\n"

	got := FilterSeverity(output)

	assert.Equal(t, []string{
		"C0114: Missing module docstring (missing-module-docstring)",
		"W0611: Unused import os (unused-import)",
		"E0401: Unable to import 'nope' (import-error)",
	}, got)
}

func TestFilterSeverity_EmptyOutput(t *testing.T) {
	assert.Empty(t, FilterSeverity(""))
}

func TestHasSeverityMarker(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"C0301: Line too long", true},
		{"W0611: Unused import", true},
		{"Error: file not found", true},
		{"F0001: fatal", false},
		{" C0114", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasSeverityMarker(tt.line); got != tt.expected {
			t.Errorf("HasSeverityMarker(%q): esperado %v, obtido %v", tt.line, tt.expected, got)
		}
	}
}
