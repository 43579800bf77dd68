package main

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDiagnosticMessage(t *testing.T) {
	tests := []struct {
		name     string
		d        Diagnostic
		message  string
		rendered string
	}{
		{
			name:     "file not found",
			d:        newDiagnostic(CodeSourceFileNotFound, CategoryError, "src/missing.ts"),
			message:  "File 'src/missing.ts' not found.",
			rendered: "error TS6053: File 'src/missing.ts' not found.",
		},
		{
			name:     "namespace required",
			d:        newDiagnostic(CodeNamespaceRequired, CategoryError, "app"),
			message:  "Bundle 'app' uses library packaging but has no namespace.",
			rendered: "error TS9002: Bundle 'app' uses library packaging but has no namespace.",
		},
		{
			name:     "missing arguments leave placeholders",
			d:        newDiagnostic(CodeCannotFindModule, CategoryWarning, "./x"),
			message:  "Cannot find module './x' imported from '{1}'.",
			rendered: "warning TS2307: Cannot find module './x' imported from '{1}'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.d.Message(), tt.message)
			assert.Equal(t, tt.d.String(), tt.rendered)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, formatMessage("{1} before {0}", "a", "b"), "b before a")
	assert.Equal(t, formatMessage("no args {0}"), "no args {0}")
	assert.Equal(t, formatMessage("{x} {0} {", "a"), "{x} a {")
}

func TestHasErrors(t *testing.T) {
	warning := newDiagnostic(CodeCircularDependency, CategoryWarning, "a -> a")
	failure := newDiagnostic(CodeSourceFileNotFound, CategoryError, "a.ts")

	assert.Assert(t, !hasErrors(nil))
	assert.Assert(t, !hasErrors([]Diagnostic{warning}))
	assert.Assert(t, hasErrors([]Diagnostic{warning, failure}))
}
