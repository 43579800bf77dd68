package main

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestFindCircularDepsInProjectTree(t *testing.T) {
	fsys := fstest.MapFS{
		"src/index.ts":         source("import './fileA';\nimport './cycle/first';\n"),
		"src/fileA.tsx":        source("import type { T } from './types';\n"),
		"src/types.ts":         source("import './fileA';\nexport type T = string;\n"),
		"src/cycle/first.ts":   source("import './second';\n"),
		"src/cycle/second.tsx": source("import './third';\n"),
		"src/cycle/third.ts":   source("import './first';\n"),
		"src/standalone.ts":    source("import { readFile } from 'fs';\n"),
	}
	program := newTestProgram(t, fsys, ProgramOptions{})
	files := []string{"src/cycle/first.ts", "src/cycle/second.tsx", "src/cycle/third.ts", "src/fileA.tsx", "src/index.ts", "src/standalone.ts", "src/types.ts"}

	tree := CollectProjectTree(program, files)
	circularDeps := FindCircularDependencies(tree.InternalEdges(), files)

	expectedCircularDeps := [][]string{
		{"src/cycle/first.ts", "src/cycle/second.tsx", "src/cycle/third.ts", "src/cycle/first.ts"},
		{"src/fileA.tsx", "src/types.ts", "src/fileA.tsx"},
	}

	if !reflect.DeepEqual(circularDeps, expectedCircularDeps) {
		t.Errorf("\nCircular deps not equal\n %s\n----vs----\n\n%s", FormatCircularDependencies(circularDeps), FormatCircularDependencies(expectedCircularDeps))
	}
}

func TestFindMultipleCircularDepsFromSameNode(t *testing.T) {
	edges := map[string][]string{
		"_index.ts": {"fileA.ts"},
		"fileA.ts":  {"fileB.ts", "fileC.ts"},
		"fileB.ts":  {"_index.ts"},
		"fileC.ts":  {"_index.ts"},
	}

	// Starting at _index.ts asserts the search order that discovers two cycles through fileA
	circularDeps := FindCircularDependencies(edges, []string{"_index.ts", "fileA.ts", "fileB.ts", "fileC.ts"})

	expectedCircularDeps := [][]string{
		{"_index.ts", "fileA.ts", "fileB.ts", "_index.ts"},
		{"_index.ts", "fileA.ts", "fileC.ts", "_index.ts"},
	}

	if !reflect.DeepEqual(circularDeps, expectedCircularDeps) {
		t.Errorf("\nCircular deps not equal\n %s\n----vs----\n\n%s", FormatCircularDependencies(circularDeps), FormatCircularDependencies(expectedCircularDeps))
	}
}

func TestFindCircularDepsSelfImport(t *testing.T) {
	circularDeps := FindCircularDependencies(map[string][]string{"a.ts": {"a.ts"}}, []string{"a.ts"})

	expectedCircularDeps := [][]string{{"a.ts", "a.ts"}}
	if !reflect.DeepEqual(circularDeps, expectedCircularDeps) {
		t.Errorf("expected %v, got %v", expectedCircularDeps, circularDeps)
	}
}

func TestFormatCircularDependencies(t *testing.T) {
	if output := FormatCircularDependencies(nil); output != "No circular dependencies found!\n" {
		t.Errorf("unexpected output for no cycles: %q", output)
	}

	output := FormatCircularDependencies([][]string{{"a.ts", "b.ts", "a.ts"}})
	expected := "Found 1 circular dependencies:\n\n" +
		"Circular Dependency 1:\n" +
		" ➞ a.ts (cycle start)\n" +
		"  ➞ b.ts\n" +
		"   ➞ a.ts\n" +
		"\n"
	if output != expected {
		t.Errorf("unexpected output:\n%s\n----vs----\n%s", output, expected)
	}
}

func TestCircularDependencyDiagnostics(t *testing.T) {
	diagnostics := circularDependencyDiagnostics([][]string{{"a.ts", "b.ts", "a.ts"}})

	if len(diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diagnostics))
	}
	d := diagnostics[0]
	if d.Code != CodeCircularDependency || d.Category != CategoryWarning || d.File != "a.ts" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Message() != "Circular dependency: a.ts -> b.ts -> a.ts." {
		t.Errorf("unexpected message %q", d.Message())
	}
}
