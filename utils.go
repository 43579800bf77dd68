package main

import (
	"fmt"
	"os"
	"path/filepath"
)

var osSeparator = string(os.PathSeparator)

func StandardiseDirPath(cwd string) string {
	if cwd == "" || string(cwd[len(cwd)-1]) == osSeparator {
		return cwd
	}
	return cwd + osSeparator
}

func ResolveAbsoluteCwd(cwd string) string {
	if filepath.IsAbs(cwd) {
		return StandardiseDirPath(filepath.Clean(cwd))
	}
	binaryExecDir, _ := os.Getwd()
	return StandardiseDirPath(filepath.Join(binaryExecDir, cwd))
}

// writeProjectFile writes content to a canonical path below root, creating
// parent directories as needed.
func writeProjectFile(root string, canonicalPath string, content string) (string, error) {
	target := filepath.Join(root, DenormalizePathForOS(canonicalPath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory for %s: %w", canonicalPath, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", canonicalPath, err)
	}
	return target, nil
}
