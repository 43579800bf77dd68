package main

// EmittedUnit is the edited body of one internal unit.
type EmittedUnit struct {
	Path     string
	Text     string
	IsMarkup bool
}

type unitFrame struct {
	unit   *SourceUnit
	deps   []MinimalDependency
	next   int
	blanks []Span
}

// depsWalker emits internal units dependencies-first. All of its state is
// owned by a single build.
type depsWalker struct {
	fe          FrontEnd
	tree        *MinimalDependencyTree
	registry    *ImportRegistry
	packageType PackageType
	namespace   string

	seen        map[string]bool
	active      map[string]bool
	emitted     []EmittedUnit
	diagnostics []Diagnostic
}

func newDepsWalker(fe FrontEnd, registry *ImportRegistry, packageType PackageType, namespace string) *depsWalker {
	return &depsWalker{
		fe:          fe,
		tree:        NewMinimalDependencyTree(),
		registry:    registry,
		packageType: packageType,
		namespace:   namespace,
		seen:        make(map[string]bool),
		active:      make(map[string]bool),
	}
}

// walkEntry merges entryTree into the build's tree and emits every unit of it,
// the entry last unless an earlier entry already pulled it in.
func (w *depsWalker) walkEntry(entry *SourceUnit, entryTree *MinimalDependencyTree) {
	w.tree.Merge(entryTree)
	for _, key := range entryTree.Keys() {
		w.addUnit(w.tree.Unit(key))
	}
	w.addUnit(entry)
}

// addUnit is a depth-first post-order traversal on an explicit stack. A
// reference to a unit that is already emitted or still on the stack counts as
// satisfied, which makes cycles terminate.
func (w *depsWalker) addUnit(root *SourceUnit) {
	if root == nil || w.seen[root.Path] || w.active[root.Path] {
		return
	}

	stack := []*unitFrame{w.enter(root)}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.deps) {
			w.emit(top)
			stack = stack[:len(stack)-1]
			continue
		}

		dep := top.deps[top.next]
		top.next++

		switch dep.Reference.Kind {
		case InternalReference:
			top.blanks = append(top.blanks, dep.Node.Span)
			target := dep.Reference.Target
			if w.active[target.Path] {
				Debug("cycle back-edge", "from", top.unit.Path, "to", target.Path)
				continue
			}
			if w.seen[target.Path] {
				continue
			}
			stack = append(stack, w.enter(target))

		case AmbientReference:
			top.blanks = append(top.blanks, dep.Node.Span)

		case UnresolvedReference, ExternalReference:
			if dep.Reference.Kind == UnresolvedReference {
				w.warn(top.unit, dep.Node.Span, CodeCannotFindModule, dep.Node.Specifier, top.unit.Path)
			}
			if w.registry.Rewrite(top.unit, dep.Node) {
				w.warn(top.unit, dep.Node.Span, CodeExternalReexportKept, dep.Node.Specifier, top.unit.Path)
				continue
			}
			top.blanks = append(top.blanks, dep.Node.Span)
		}
	}
}

func (w *depsWalker) enter(unit *SourceUnit) *unitFrame {
	w.active[unit.Path] = true
	deps, ok := w.tree.Dependencies(unit.Path)
	if !ok {
		deps = classifyUnit(w.fe, unit)
	}
	return &unitFrame{unit: unit, deps: deps}
}

func (w *depsWalker) emit(frame *unitFrame) {
	unit := frame.unit
	blanks := frame.blanks
	if w.packageType == PackageComponent {
		blanks = append(blanks, exportModifierSpans(unit, w.namespace)...)
	}
	text := BlankSpans(w.fe.GetText(unit), blanks)

	w.emitted = append(w.emitted, EmittedUnit{Path: unit.Path, Text: text, IsMarkup: unit.IsMarkup})
	w.seen[unit.Path] = true
	delete(w.active, unit.Path)
	Debug("unit added", "path", unit.Path, "blanked", len(blanks))
}

func (w *depsWalker) warn(unit *SourceUnit, span Span, code DiagnosticCode, args ...string) {
	d := newDiagnostic(code, CategoryWarning, args...)
	d.File = unit.Path
	d.Span = span
	w.diagnostics = append(w.diagnostics, d)
}

func classifyUnit(fe FrontEnd, unit *SourceUnit) []MinimalDependency {
	deps := make([]MinimalDependency, 0, len(unit.Nodes))
	for _, node := range unit.Nodes {
		deps = append(deps, MinimalDependency{Node: node, Reference: ClassifyReference(fe, unit, node)})
	}
	return deps
}
