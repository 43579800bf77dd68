package main

import (
	"strings"
)

func ImportNodeKindToString(kind ImportNodeKind) string {
	switch kind {
	case NamedImport:
		return "NamedImport"
	case NamespaceImport:
		return "NamespaceImport"
	case DefaultImport:
		return "DefaultImport"
	case SideEffectImport:
		return "SideEffectImport"
	case ImportEquals:
		return "ImportEquals"
	case ExportReexport:
		return "ExportReexport"
	default:
		return "Unknown"
	}
}

func ReferenceKindToString(kind ReferenceKind) string {
	switch kind {
	case InternalReference:
		return "Internal"
	case AmbientReference:
		return "Ambient"
	case ExternalReference:
		return "External"
	case UnresolvedReference:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// StringifyMinimalDependencyTree renders the tree in key order with each
// unit's import nodes in source order.
func StringifyMinimalDependencyTree(tree *MinimalDependencyTree) string {
	var b strings.Builder

	for _, k := range tree.Keys() {
		b.WriteString(k)
		b.WriteString(":\n")

		deps, _ := tree.Dependencies(k)
		if len(deps) == 0 {
			b.WriteString("  (no dependencies)\n")
			continue
		}

		for _, d := range deps {
			b.WriteString("  - specifier: ")
			b.WriteString(d.Node.Specifier)
			b.WriteString("\n")
			b.WriteString("    kind: ")
			b.WriteString(ImportNodeKindToString(d.Node.Kind))
			b.WriteString("\n")
			b.WriteString("    reference: ")
			b.WriteString(ReferenceKindToString(d.Reference.Kind))
			if target := d.targetPath(); target != "" {
				b.WriteString(" -> ")
				b.WriteString(target)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
