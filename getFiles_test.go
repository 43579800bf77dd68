package main

import (
	"testing"
	"testing/fstest"

	"gotest.tools/v3/assert"
)

func TestListSourceFiles(t *testing.T) {
	fsys := fstest.MapFS{
		".gitignore":                source("dist/\n# generated code\n**/*.gen.ts\n!keep.ts\n"),
		"index.ts":                  source(""),
		"src/a.ts":                  source(""),
		"src/b.tsx":                 source(""),
		"src/c.js":                  source(""),
		"src/styles.css":            source(""),
		"src/api.gen.ts":            source(""),
		"src/legacy/.gitignore":     source("old.ts\n"),
		"src/legacy/old.ts":         source(""),
		"src/legacy/new.mts":        source(""),
		"src/skip/s.ts":             source(""),
		"types/globals.d.ts":        source(""),
		"dist/out.ts":               source(""),
		"node_modules/lib/index.ts": source(""),
		".git/hooks/x.ts":           source(""),
	}

	files, err := ListSourceFiles(fsys, []string{"src/skip"})

	assert.NilError(t, err)
	assert.DeepEqual(t, files, []string{
		"index.ts",
		"src/a.ts",
		"src/b.tsx",
		"src/legacy/new.mts",
		"types/globals.d.ts",
	})
}

func TestListSourceFilesInvalidExclude(t *testing.T) {
	_, err := ListSourceFiles(fstest.MapFS{}, []string{"src/[a"})
	assert.ErrorContains(t, err, "invalid glob pattern")
}

func TestParseGitIgnoreSkipsCommentsAndNegations(t *testing.T) {
	matchers, err := parseGitIgnore("# comment\n\n!keep.ts\n  build  \n", ".")

	assert.NilError(t, err)
	assert.Equal(t, len(matchers), 1)
	assert.Assert(t, MatchesAnyGlobMatcher("packages/web/build/a.ts", matchers))
	assert.Assert(t, !MatchesAnyGlobMatcher("keep.ts", matchers))
}

func TestExpandEntryPatterns(t *testing.T) {
	files := []string{"src/a.ts", "src/b.tsx", "src/legacy/new.ts", "src/types.d.ts"}

	entries, err := ExpandEntryPatterns(files, []string{"./src/z.ts", "src/**.ts", "src/a.ts"})

	assert.NilError(t, err)
	assert.DeepEqual(t, entries, []string{"src/z.ts", "src/a.ts", "src/legacy/new.ts"})
}

func TestExpandDeclarationPatterns(t *testing.T) {
	files := []string{"src/a.ts", "src/types.d.ts", "types/globals.d.ts"}

	declarations, err := ExpandDeclarationPatterns(files, []string{"**/*.d.ts"})

	assert.NilError(t, err)
	assert.DeepEqual(t, declarations, []string{"src/types.d.ts", "types/globals.d.ts"})
}

func TestHasCorrectExtension(t *testing.T) {
	for name, expected := range map[string]bool{
		"a.ts":      true,
		"a.tsx":     true,
		"a.d.ts":    true,
		"a.mts":     true,
		"a.cts":     true,
		"a.js":      false,
		"a.json":    false,
		"Makefile":  false,
		"a.ts.orig": false,
	} {
		assert.Equal(t, hasCorrectExtension(name), expected, name)
	}
}
