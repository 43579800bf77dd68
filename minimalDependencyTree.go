package main

// MinimalDependency is one import node of a unit together with its classified
// target.
type MinimalDependency struct {
	Node      ImportNode
	Reference ModuleReference
}

func (d MinimalDependency) targetPath() string {
	if d.Reference.Kind != InternalReference || d.Reference.Target == nil {
		return ""
	}
	return d.Reference.Target.Path
}

// MinimalDependencyTree maps a unit path to its dependencies. Keys keep
// registration order and the first registration of a key wins.
type MinimalDependencyTree struct {
	order []string
	deps  map[string][]MinimalDependency
	units map[string]*SourceUnit
}

func NewMinimalDependencyTree() *MinimalDependencyTree {
	return &MinimalDependencyTree{
		deps:  make(map[string][]MinimalDependency),
		units: make(map[string]*SourceUnit),
	}
}

func (t *MinimalDependencyTree) Keys() []string {
	return t.order
}

func (t *MinimalDependencyTree) Len() int {
	return len(t.order)
}

func (t *MinimalDependencyTree) Dependencies(path string) ([]MinimalDependency, bool) {
	deps, ok := t.deps[path]
	return deps, ok
}

func (t *MinimalDependencyTree) Unit(path string) *SourceUnit {
	return t.units[path]
}

// register adds unit under its path unless the key is already present.
func (t *MinimalDependencyTree) register(unit *SourceUnit, deps []MinimalDependency) bool {
	if _, exists := t.deps[unit.Path]; exists {
		return false
	}
	t.order = append(t.order, unit.Path)
	t.deps[unit.Path] = deps
	t.units[unit.Path] = unit
	return true
}

// Merge copies keys of other that are not registered yet. Edge lists of keys
// already present are left untouched.
func (t *MinimalDependencyTree) Merge(other *MinimalDependencyTree) {
	for _, path := range other.order {
		t.register(other.units[path], other.deps[path])
	}
}

// InternalEdges returns, per unit, the paths of the internal units it imports.
func (t *MinimalDependencyTree) InternalEdges() map[string][]string {
	edges := make(map[string][]string, len(t.order))
	for _, path := range t.order {
		for _, d := range t.deps[path] {
			if target := d.targetPath(); target != "" {
				edges[path] = append(edges[path], target)
			}
		}
	}
	return edges
}

// CollectDependencies classifies every import node reachable from entry
// through internal references. Keys are in breadth-first discovery order,
// starting with entry itself.
func CollectDependencies(fe FrontEnd, entry *SourceUnit) *MinimalDependencyTree {
	tree := NewMinimalDependencyTree()
	queue := []*SourceUnit{entry}
	queued := map[string]bool{entry.Path: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		deps := classifyUnit(fe, current)
		for _, d := range deps {
			if target := d.targetPath(); target != "" && !queued[target] {
				queued[target] = true
				queue = append(queue, d.Reference.Target)
			}
		}
		tree.register(current, deps)
	}

	return tree
}
