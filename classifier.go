package main

// ClassifyReference resolves node's module specifier through fe and decides
// how the bundle treats it:
//   - Internal: an emittable source unit, merged into the bundle body.
//   - Ambient: a `declare module` name or a declaration-only unit.
//   - Unresolved: no literal specifier, or a relative path with no file.
//   - External: everything else, e.g. a package specifier.
func ClassifyReference(fe FrontEnd, from *SourceUnit, node ImportNode) ModuleReference {
	if node.Specifier == "" {
		return ModuleReference{Kind: UnresolvedReference}
	}

	symbol := fe.ResolveSymbol(from, node.Specifier)
	switch symbol.Kind {
	case SymbolAmbientModule:
		return ModuleReference{Kind: AmbientReference}
	case SymbolSourceFile:
		target, err := fe.Parse(symbol.Path)
		if err != nil {
			return ModuleReference{Kind: UnresolvedReference}
		}
		if target.IsDeclarationOnly {
			return ModuleReference{Kind: AmbientReference}
		}
		return ModuleReference{Kind: InternalReference, Target: target}
	case SymbolNotFound:
		if isRelativeSpecifier(node.Specifier) {
			return ModuleReference{Kind: UnresolvedReference}
		}
	}
	return ModuleReference{Kind: ExternalReference}
}
