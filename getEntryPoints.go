package main

import "slices"

// CollectProjectTree classifies every file of the project. Files that fail to
// parse are skipped.
func CollectProjectTree(fe FrontEnd, files []string) *MinimalDependencyTree {
	tree := NewMinimalDependencyTree()
	for _, file := range files {
		if _, ok := tree.Dependencies(file); ok {
			continue
		}
		unit, err := fe.Parse(file)
		if err != nil {
			Debug("skipping unparsable file", "path", file, "err", err)
			continue
		}
		tree.Merge(CollectDependencies(fe, unit))
	}
	return tree
}

// GetEntryPoints returns the non-declaration units no other unit imports,
// sorted.
func GetEntryPoints(minimalTree *MinimalDependencyTree, resultExclude []string, resultInclude []string) ([]string, error) {
	referencedFiles := map[string]byte{}
	for _, targets := range minimalTree.InternalEdges() {
		for _, target := range targets {
			referencedFiles[target] = 0
		}
	}

	excludeGlobs, err := CreateGlobMatchers(resultExclude, ".")
	if err != nil {
		return nil, err
	}
	includeGlobs, err := CreateGlobMatchers(resultInclude, ".")
	if err != nil {
		return nil, err
	}

	notReferencedFiles := []string{}
	for _, filePath := range minimalTree.Keys() {
		if _, wasReferenced := referencedFiles[filePath]; wasReferenced {
			continue
		}
		if unit := minimalTree.Unit(filePath); unit != nil && unit.IsDeclarationOnly {
			continue
		}
		if len(includeGlobs) == 0 || MatchesAnyGlobMatcher(filePath, includeGlobs) {
			if !MatchesAnyGlobMatcher(filePath, excludeGlobs) {
				notReferencedFiles = append(notReferencedFiles, filePath)
			}
		}
	}

	slices.Sort(notReferencedFiles)
	return notReferencedFiles, nil
}
