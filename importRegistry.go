package main

import (
	"strings"
)

type registryKey struct {
	module  string
	binding string
}

// registration remembers where a binding was hoisted and whether only its
// type side has been imported so far.
type registration struct {
	entry    *preambleEntry
	index    int
	typeOnly bool
}

// preambleEntry is one hoisted statement. Verbatim statements are emitted
// as is; the others are rendered from their bindings.
type preambleEntry struct {
	module   string
	verbatim string
	bindings []Binding
	typeOnly bool
}

func (e *preambleEntry) String() string {
	if e.verbatim != "" {
		return e.verbatim
	}
	return reconstructImport(e.module, e.bindings, e.typeOnly)
}

// promote turns the binding at index into a value import. The rest of a
// type-only statement keeps its meaning through inline type modifiers.
func (e *preambleEntry) promote(index int) {
	if e.typeOnly {
		e.typeOnly = false
		for i := range e.bindings {
			e.bindings[i].IsType = true
		}
	}
	e.bindings[index].IsType = false
}

// ImportRegistry is the per-build record of external bindings already hoisted
// into the preamble. Preamble entries keep first-encountered order.
type ImportRegistry struct {
	seen    map[registryKey]registration
	entries []*preambleEntry
}

func NewImportRegistry() *ImportRegistry {
	return &ImportRegistry{seen: make(map[registryKey]registration)}
}

// TryRegister records (module, binding) as a value import and reports whether
// it was new.
func (r *ImportRegistry) TryRegister(module string, binding string) bool {
	key := registryKey{module: module, binding: binding}
	if _, ok := r.seen[key]; ok {
		return false
	}
	r.seen[key] = registration{}
	return true
}

func (r *ImportRegistry) emit(entry *preambleEntry) {
	r.entries = append(r.entries, entry)
	Debug("preamble import", "statement", entry.String())
}

// Preamble returns the hoisted import statements, one per line.
func (r *ImportRegistry) Preamble() string {
	var b strings.Builder
	for _, entry := range r.entries {
		b.WriteString(entry.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Entries returns the hoisted statements in emission order.
func (r *ImportRegistry) Entries() []string {
	var entries []string
	for _, entry := range r.entries {
		entries = append(entries, entry.String())
	}
	return entries
}

// registerBinding hoists b into entry unless (module, local) is known. A value
// import of a binding seen only as a type upgrades the earlier statement in
// place instead, since TypeScript rejects a second declaration of the name.
func (r *ImportRegistry) registerBinding(entry *preambleEntry, b Binding, typeOnly bool) {
	key := registryKey{module: entry.module, binding: b.Local}
	prev, ok := r.seen[key]
	switch {
	case !ok:
		r.seen[key] = registration{entry: entry, index: len(entry.bindings), typeOnly: typeOnly}
		entry.bindings = append(entry.bindings, b)
	case prev.typeOnly && !typeOnly:
		prev.entry.promote(prev.index)
		prev.typeOnly = false
		r.seen[key] = prev
		Debug("preamble import promoted to value", "module", entry.module, "binding", b.Local)
	}
}

// Rewrite hoists the still unregistered bindings of an external node into the
// preamble. It reports whether the node has to stay in the unit body, which is
// only the case for re-exports.
func (r *ImportRegistry) Rewrite(unit *SourceUnit, node ImportNode) (keepInBody bool) {
	switch node.Kind {
	case ExportReexport:
		return true

	case ImportEquals:
		if len(node.Bindings) == 1 && r.TryRegister(node.Specifier, node.Bindings[0].Local) {
			r.emit(&preambleEntry{module: node.Specifier, verbatim: strings.TrimSpace(unit.Text[node.Span.Start:node.Span.End])})
		}
		return false

	case SideEffectImport:
		if r.TryRegister(node.Specifier, "") {
			r.emit(&preambleEntry{module: node.Specifier, verbatim: "import " + quoteSpecifier(node.Specifier) + ";"})
		}
		return false

	case NamedImport, NamespaceImport, DefaultImport:
		entry := &preambleEntry{module: node.Specifier, typeOnly: node.TypeOnly}
		for _, b := range node.Bindings {
			r.registerBinding(entry, b, node.TypeOnly || b.IsType)
		}
		if len(entry.bindings) > 0 {
			r.emit(entry)
		}
		return false
	}
	return false
}

// reconstructImport renders `import <bindings> from '<module>';` for bindings
// that all come from one import declaration.
func reconstructImport(module string, bindings []Binding, typeOnly bool) string {
	var defaultBinding, namespaceBinding string
	var named []string
	for _, b := range bindings {
		switch b.Kind {
		case BindingDefault:
			defaultBinding = b.Local
		case BindingNamespace:
			namespaceBinding = "* as " + b.Local
		case BindingNamed:
			name := b.Local
			if b.Imported != "" && b.Imported != b.Local {
				name = b.Imported + " as " + b.Local
			}
			if b.IsType && !typeOnly {
				name = "type " + name
			}
			named = append(named, name)
		}
	}

	var clauses []string
	if defaultBinding != "" {
		clauses = append(clauses, defaultBinding)
	}
	if namespaceBinding != "" {
		clauses = append(clauses, namespaceBinding)
	}
	if len(named) > 0 {
		clauses = append(clauses, "{ "+strings.Join(named, ", ")+" }")
	}

	prefix := "import "
	if typeOnly {
		prefix = "import type "
	}
	return prefix + strings.Join(clauses, ", ") + " from " + quoteSpecifier(module) + ";"
}

func quoteSpecifier(module string) string {
	return "'" + strings.ReplaceAll(module, "'", "\\'") + "'"
}
