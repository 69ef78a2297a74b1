package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeRewritten, "rewritten to ./a.js", "src/main.ts", 3, "./a")
	d.AddWarning(CodeUnresolved, "no matching file", "src/main.ts", 4, "./missing")

	var other Diagnostics
	other.AddError(CodeParse, "syntax error", "src/broken.ts")
	other.AddError(CodeWrite, "permission denied", "out/main.js")

	d.Merge(other)

	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.Equal(t, 1, d.Count(CodeRewritten))
	assert.Equal(t, 1, d.Count(CodeParse))
	assert.Equal(t, 0, d.Count(CodeNonLiteral))
	assert.Len(t, d.All(), 4)
	assert.Equal(t, DiagnosticError, d.All()[0].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "src/broken.ts: [parse] syntax error; out/main.js: [write] permission denied", err.Error())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "full",
			diag:     Diagnostic{Code: CodeUnresolved, Message: "no matching file", File: "a.ts", Line: 7, Specifier: "./b"},
			expected: `a.ts:7 "./b": [unresolved] no matching file`,
		},
		{
			name:     "no line",
			diag:     Diagnostic{Code: CodeRead, Message: "boom", File: "a.ts"},
			expected: "a.ts: [read] boom",
		},
		{
			name:     "message only",
			diag:     Diagnostic{Message: "plain"},
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
