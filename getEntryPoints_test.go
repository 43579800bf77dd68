package main

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func entryPointsNotEqual(entryPoints []string, expectedEntryPoints []string) string {
	return fmt.Sprintf("\nEntry points not equal; Given:\n%s\n----vs----\nExpected:\n%s", strings.Join(entryPoints, ", "), strings.Join(expectedEntryPoints, ", "))
}

func entryPointsProjectTree(t *testing.T) *MinimalDependencyTree {
	t.Helper()
	fsys := fstest.MapFS{
		"index.ts":           source("import { a } from './src/fileA';\nimport { env } from 'virtual:env';\n"),
		"script.ts":          source("import { b } from './src/fileB';\n"),
		"src/fileA.ts":       source("import { b } from './fileB';\nexport const a = b;\n"),
		"src/fileB.ts":       source("export const b = 1;\n"),
		"src/importFileA.ts": source("import { a } from './fileA';\n"),
		"src/external.ts":    source("import { readFile } from 'fs';\n"),
		"types/globals.d.ts": source("declare module 'virtual:env' { export const env: string; }\n"),
	}
	program := newTestProgram(t, fsys, ProgramOptions{Declarations: []string{"types/globals.d.ts"}})
	files, err := ListSourceFiles(fsys, nil)
	if err != nil {
		t.Fatalf("ListSourceFiles failed: %v", err)
	}
	return CollectProjectTree(program, files)
}

func TestGetEntryPoints(t *testing.T) {
	minimalTree := entryPointsProjectTree(t)

	entryPoints, err := GetEntryPoints(minimalTree, []string{}, []string{})
	if err != nil {
		t.Fatal(err)
	}

	expectedEntryPoints := []string{"index.ts", "script.ts", "src/external.ts", "src/importFileA.ts"}

	if !reflect.DeepEqual(entryPoints, expectedEntryPoints) {
		t.Error(entryPointsNotEqual(entryPoints, expectedEntryPoints))
	}
}

func TestGetEntryWithExclude(t *testing.T) {
	minimalTree := entryPointsProjectTree(t)

	entryPoints, err := GetEntryPoints(minimalTree, []string{"script.ts"}, []string{})
	if err != nil {
		t.Fatal(err)
	}

	expectedEntryPoints := []string{"index.ts", "src/external.ts", "src/importFileA.ts"}

	if !reflect.DeepEqual(entryPoints, expectedEntryPoints) {
		t.Error(entryPointsNotEqual(entryPoints, expectedEntryPoints))
	}
}

func TestGetEntryWithInclude(t *testing.T) {
	minimalTree := entryPointsProjectTree(t)

	entryPoints, err := GetEntryPoints(minimalTree, []string{}, []string{"src/**"})
	if err != nil {
		t.Fatal(err)
	}

	expectedEntryPoints := []string{"src/external.ts", "src/importFileA.ts"}

	if !reflect.DeepEqual(entryPoints, expectedEntryPoints) {
		t.Error(entryPointsNotEqual(entryPoints, expectedEntryPoints))
	}
}

func TestGetEntryWithIncludeAndExclude(t *testing.T) {
	minimalTree := entryPointsProjectTree(t)

	entryPoints, err := GetEntryPoints(minimalTree, []string{"**/external.ts"}, []string{"src/**"})
	if err != nil {
		t.Fatal(err)
	}

	expectedEntryPoints := []string{"src/importFileA.ts"}

	if !reflect.DeepEqual(entryPoints, expectedEntryPoints) {
		t.Error(entryPointsNotEqual(entryPoints, expectedEntryPoints))
	}
}
