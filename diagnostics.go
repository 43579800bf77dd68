package main

import (
	"fmt"
	"strconv"
	"strings"
)

type DiagnosticCategory uint8

const (
	CategoryError DiagnosticCategory = iota
	CategoryWarning
)

func (c DiagnosticCategory) String() string {
	switch c {
	case CategoryError:
		return "error"
	case CategoryWarning:
		return "warning"
	}
	return "unknown"
}

type DiagnosticCode uint16

const (
	CodeCannotFindModule     DiagnosticCode = 2307
	CodeSourceFileNotFound   DiagnosticCode = 6053
	CodeCircularDependency   DiagnosticCode = 9001
	CodeNamespaceRequired    DiagnosticCode = 9002
	CodeExternalReexportKept DiagnosticCode = 9003
	CodeTranspileFailed      DiagnosticCode = 9004
)

var diagnosticTemplates = map[DiagnosticCode]string{
	CodeCannotFindModule:     "Cannot find module '{0}' imported from '{1}'.",
	CodeSourceFileNotFound:   "File '{0}' not found.",
	CodeCircularDependency:   "Circular dependency: {0}.",
	CodeNamespaceRequired:    "Bundle '{0}' uses library packaging but has no namespace.",
	CodeExternalReexportKept: "Re-export from external module '{0}' in '{1}' is kept in the bundle body.",
	CodeTranspileFailed:      "Transpile of '{0}': {1}",
}

// Diagnostic is a numbered build message. Template arguments are substituted
// positionally: {0} is Args[0].
type Diagnostic struct {
	Code     DiagnosticCode
	Category DiagnosticCategory
	Template string
	Args     []string
	File     string
	Span     Span
}

func newDiagnostic(code DiagnosticCode, category DiagnosticCategory, args ...string) Diagnostic {
	return Diagnostic{
		Code:     code,
		Category: category,
		Template: diagnosticTemplates[code],
		Args:     args,
	}
}

func (d Diagnostic) Message() string {
	return formatMessage(d.Template, d.Args...)
}

func (d Diagnostic) String() string {
	prefix := ""
	if d.File != "" {
		prefix = d.File + ": "
	}
	return fmt.Sprintf("%s%s TS%d: %s", prefix, d.Category, d.Code, d.Message())
}

func formatMessage(template string, args ...string) string {
	if len(args) == 0 {
		return template
	}
	var b strings.Builder
	i := 0
	for i < len(template) {
		if template[i] == '{' {
			end := strings.IndexByte(template[i:], '}')
			if end > 1 {
				if idx, err := strconv.Atoi(template[i+1 : i+end]); err == nil && idx >= 0 && idx < len(args) {
					b.WriteString(args[idx])
					i += end + 1
					continue
				}
			}
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}

func hasErrors(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Category == CategoryError {
			return true
		}
	}
	return false
}
