package main

import (
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// CanonicalPath converts any OS path into the internal representation used as
// SourceUnit identity: forward slashes, cleaned, relative to the project root
// without a leading "./" or "/".
// Examples:
// - "./src/../lib/a.ts" -> "lib/a.ts"
// - "C:\\project\\src\\file.ts" -> "C:/project/src/file.ts" (on windows)
func CanonicalPath(p string) string {
	if p == "" {
		return "."
	}
	if runtime.GOOS == "windows" {
		p = filepath.ToSlash(p)
	}
	cleaned := path.Clean(p)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" {
		return "."
	}
	return cleaned
}

// DenormalizePathForOS converts an internal forward-slash path back to the
// OS-native representation for os.* calls.
func DenormalizePathForOS(internal string) string {
	if runtime.GOOS != "windows" {
		return internal
	}
	if internal == "" {
		return ""
	}
	return filepath.FromSlash(internal)
}

// NormalizeGlobPattern normalizes glob pattern separators to forward slashes.
func NormalizeGlobPattern(pattern string) string {
	if runtime.GOOS != "windows" {
		return pattern
	}
	return strings.ReplaceAll(pattern, "\\", "/")
}

func isRelativeSpecifier(specifier string) bool {
	return specifier == "." || specifier == ".." || strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../")
}
