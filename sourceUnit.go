package main

// Span is a half-open byte range [Start, End) into a unit's text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

type ImportNodeKind uint8

const (
	NamedImport      ImportNodeKind = iota // import { a, b as c } from 'm'
	NamespaceImport                        // import * as ns from 'm'
	DefaultImport                          // import d from 'm', import d, { a } from 'm'
	SideEffectImport                       // import 'm'
	ImportEquals                           // import x = require('m')
	ExportReexport                         // export { a } from 'm', export * from 'm'
)

type BindingKind uint8

const (
	BindingNamed BindingKind = iota
	BindingDefault
	BindingNamespace
)

// Binding is one name brought into scope by an import node.
// Imported is the name on the module side and is empty when it equals Local.
type Binding struct {
	Kind     BindingKind
	Local    string
	Imported string
	IsType   bool
}

func (b Binding) SourceName() string {
	if b.Imported == "" {
		return b.Local
	}
	return b.Imported
}

type ImportNode struct {
	Kind      ImportNodeKind
	Span      Span
	Specifier string // empty when the statement has no literal module specifier
	Bindings  []Binding
	TypeOnly  bool
}

type DeclKind uint8

const (
	DeclOther DeclKind = iota
	DeclNamespace
	DeclExportList // export { a, b as c };
)

// TopLevelDecl is a depth-0 declaration that carries an export modifier.
// For DeclExportList the modifier span covers the whole statement.
type TopLevelDecl struct {
	Kind           DeclKind
	Name           string
	ExportModifier Span
}

// SourceUnit is a parsed file. Path is the canonical, slash separated path
// relative to the project root and is the unit's identity.
type SourceUnit struct {
	Path              string
	Text              string
	IsMarkup          bool
	IsDeclarationOnly bool
	Nodes             []ImportNode
	Declarations      []TopLevelDecl
	AmbientModules    []string
}

type ReferenceKind uint8

const (
	InternalReference ReferenceKind = iota
	AmbientReference
	ExternalReference
	UnresolvedReference
)

// ModuleReference is the classified target of an ImportNode.
// Target is set only for InternalReference.
type ModuleReference struct {
	Kind   ReferenceKind
	Target *SourceUnit
}
