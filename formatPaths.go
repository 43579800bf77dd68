package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	fileLabel    = color.New(color.FgCyan).SprintFunc()
	dimLabel     = color.New(color.Faint).SprintFunc()
	okLabel      = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// FormatEmissionOrder prints the units of a build in the order their bodies
// appear in the bundle.
func FormatEmissionOrder(w io.Writer, name string, units []string) {
	if len(units) == 0 {
		fmt.Fprintln(w, "No units emitted.")
		return
	}

	fmt.Fprintf(w, "%s (%d):\n\n", name, len(units))
	for i, unit := range units {
		fmt.Fprintf(w, "%s ➞ %s\n", dimLabel(fmt.Sprintf("%3d", i+1)), unit)
	}
	fmt.Fprintln(w)
}

func FormatDiagnostic(d Diagnostic) string {
	label := warningLabel(d.Category.String())
	if d.Category == CategoryError {
		label = errorLabel(d.Category.String())
	}

	var b strings.Builder
	if d.File != "" {
		b.WriteString(fileLabel(d.File))
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s %s: %s", label, dimLabel(fmt.Sprintf("TS%d", d.Code)), d.Message())
	return b.String()
}

func FormatDiagnostics(w io.Writer, diagnostics []Diagnostic) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, FormatDiagnostic(d))
	}
}

func FormatBundleSummary(w io.Writer, result BundleResult) {
	name := result.Bundle.displayName()
	if !result.Succeeded() {
		fmt.Fprintf(w, "%s %s\n", errorLabel("✗"), name)
		return
	}
	fmt.Fprintf(w, "%s %s ➞ %s %s\n", okLabel("✓"), name, result.Output.Path,
		dimLabel(fmt.Sprintf("(%d units, %d bytes)", len(result.Output.Units), len(result.Output.Text))))
}
