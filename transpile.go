package main

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

const transpiledExtension = ".js"

// TranspileBundle runs the assembled bundle text through esbuild as an opaque
// TypeScript input and returns JavaScript. Messages from esbuild come back as
// diagnostics; the returned text is empty when any of them is an error.
func TranspileBundle(output *BundleOutput) (string, []Diagnostic) {
	loader := api.LoaderTS
	if output.Extension == markupExtension {
		loader = api.LoaderTSX
	}

	result := api.Transform(output.Text, api.TransformOptions{
		Loader:     loader,
		Format:     api.FormatESModule,
		Target:     api.ES2020,
		Sourcefile: output.Path,
	})

	var diagnostics []Diagnostic
	for _, msg := range result.Errors {
		diagnostics = append(diagnostics, transpileDiagnostic(output.Path, CategoryError, msg))
	}
	for _, msg := range result.Warnings {
		diagnostics = append(diagnostics, transpileDiagnostic(output.Path, CategoryWarning, msg))
	}
	if len(result.Errors) > 0 {
		return "", diagnostics
	}
	return string(result.Code), diagnostics
}

func transpileDiagnostic(file string, category DiagnosticCategory, msg api.Message) Diagnostic {
	text := msg.Text
	if msg.Location != nil {
		text = fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text)
	}
	d := newDiagnostic(CodeTranspileFailed, category, file, text)
	d.File = file
	return d
}

// transpiledPath swaps the bundle extension for `.js`.
func transpiledPath(output *BundleOutput) string {
	return strings.TrimSuffix(output.Path, output.Extension) + transpiledExtension
}
