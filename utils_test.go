package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStandardiseDirPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "without separator", input: filepath.Join("a", "b"), expected: filepath.Join("a", "b") + osSeparator},
		{name: "with separator", input: "a" + osSeparator, expected: "a" + osSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := StandardiseDirPath(tt.input); result != tt.expected {
				t.Errorf("StandardiseDirPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolveAbsoluteCwd(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if result := ResolveAbsoluteCwd("testdata"); result != filepath.Join(wd, "testdata")+osSeparator {
		t.Errorf("unexpected relative resolution %q", result)
	}

	absolute := filepath.Join(wd, "testdata", "..", "testdata")
	if result := ResolveAbsoluteCwd(absolute); result != filepath.Join(wd, "testdata")+osSeparator {
		t.Errorf("unexpected absolute resolution %q", result)
	}
}

func TestWriteProjectFile(t *testing.T) {
	root := t.TempDir()

	target, err := writeProjectFile(root, "dist/nested/app.ts", "export {};\n")
	if err != nil {
		t.Fatalf("writeProjectFile failed: %v", err)
	}
	if target != filepath.Join(root, "dist", "nested", "app.ts") {
		t.Errorf("unexpected target %q", target)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "export {};\n" {
		t.Errorf("unexpected content %q", content)
	}
}
