package main

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestTranspileBundle(t *testing.T) {
	output := &BundleOutput{
		Path:      "dist/app.ts",
		Extension: ".ts",
		Text:      "import { readFileSync } from 'fs';\nexport namespace App {\n  export const size: number = readFileSync.length;\n}",
	}

	js, diagnostics := TranspileBundle(output)

	assert.Assert(t, !hasErrors(diagnostics))
	assert.Assert(t, is.Contains(js, `from "fs"`))
	assert.Assert(t, is.Contains(js, "export var App"))
	assert.Assert(t, !strings.Contains(js, ": number"))
}

func TestTranspileBundleMarkup(t *testing.T) {
	output := &BundleOutput{
		Path:      "dist/widgets.tsx",
		Extension: ".tsx",
		Text:      "import React from 'react';\nexport const View = (props: { label: string }) => <b>{props.label}</b>;\n",
	}

	js, diagnostics := TranspileBundle(output)

	assert.Assert(t, !hasErrors(diagnostics))
	assert.Assert(t, is.Contains(js, "React.createElement"))
}

func TestTranspileBundleReportsErrors(t *testing.T) {
	output := &BundleOutput{Path: "dist/broken.ts", Extension: ".ts", Text: "export const = ;\n"}

	js, diagnostics := TranspileBundle(output)

	assert.Equal(t, js, "")
	assert.Assert(t, hasErrors(diagnostics))
	assert.Equal(t, diagnostics[0].Code, CodeTranspileFailed)
	assert.Equal(t, diagnostics[0].File, "dist/broken.ts")
	assert.Assert(t, is.Contains(diagnostics[0].Message(), "Transpile of 'dist/broken.ts': 1:"))
}

func TestTranspiledPath(t *testing.T) {
	assert.Equal(t, transpiledPath(&BundleOutput{Path: "dist/app.ts", Extension: ".ts"}), "dist/app.js")
	assert.Equal(t, transpiledPath(&BundleOutput{Path: "dist/app.tsx", Extension: ".tsx"}), "dist/app.js")
}
