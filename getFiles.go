package main

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

var allowedExts = map[string]struct{}{
	".ts":  {},
	".tsx": {},
	".mts": {},
	".cts": {},
}

func hasCorrectExtension(name string) bool {
	_, ok := allowedExts[path.Ext(name)]
	return ok
}

func parseGitIgnore(fileContent string, dirPath string) ([]GlobMatcher, error) {
	lines := strings.Split(fileContent, "\n")

	sanitizedLines := []string{}
	for _, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if len(trimmedLine) > 0 && !strings.HasPrefix(trimmedLine, "#") && !strings.HasPrefix(trimmedLine, "!") {
			sanitizedLines = append(sanitizedLines, trimmedLine)
		}
	}

	return CreateGlobMatchers(sanitizedLines, dirPath)
}

func readGitIgnore(fsys fs.FS, dirPath string) []GlobMatcher {
	content, err := fs.ReadFile(fsys, path.Join(dirPath, ".gitignore"))
	if err != nil {
		return nil
	}
	matchers, err := parseGitIgnore(string(content), dirPath)
	if err != nil {
		Warn("ignoring invalid .gitignore", "dir", dirPath, "err", err)
		return nil
	}
	return matchers
}

// ListSourceFiles returns every TypeScript file under the root of fsys in
// lexical order. Entries matched by a .gitignore on the way down or by
// exclude are skipped, as is node_modules.
func ListSourceFiles(fsys fs.FS, exclude []string) ([]string, error) {
	excludeMatchers, err := CreateGlobMatchers(exclude, ".")
	if err != nil {
		return nil, err
	}
	files := getFiles(fsys, ".", []string{}, append(excludeMatchers, readGitIgnore(fsys, ".")...))
	slices.Sort(files)
	return files, nil
}

func getFiles(fsys fs.FS, directory string, existingFiles []string, parentGlobMatchers []GlobMatcher) []string {
	entries, err := fs.ReadDir(fsys, directory)
	if err != nil {
		return existingFiles
	}

	for _, entry := range entries {
		entryName := entry.Name()
		entryFilePath := path.Join(directory, entryName)

		if entry.IsDir() {
			if entryName == "node_modules" || entryName == ".git" || MatchesAnyGlobMatcher(entryFilePath, parentGlobMatchers) {
				continue
			}
			ignoreGlobs := parentGlobMatchers
			if nested := readGitIgnore(fsys, entryFilePath); len(nested) > 0 {
				ignoreGlobs = append(slices.Clip(parentGlobMatchers), nested...)
			}
			existingFiles = getFiles(fsys, entryFilePath, existingFiles, ignoreGlobs)
			continue
		}

		if hasCorrectExtension(entryName) && !MatchesAnyGlobMatcher(entryFilePath, parentGlobMatchers) {
			existingFiles = append(existingFiles, CanonicalPath(entryFilePath))
		}
	}

	return existingFiles
}

// ExpandEntryPatterns turns configured entry patterns into unit paths. Glob
// patterns expand against files, skipping declaration files. A literal path
// is kept as written even when it does not exist so that the build reports it.
func ExpandEntryPatterns(files []string, patterns []string) ([]string, error) {
	return expandPatterns(files, patterns, func(file string) bool { return !isDeclarationFile(file) })
}

// ExpandDeclarationPatterns is ExpandEntryPatterns for ambient declaration
// files: globs only match `.d.ts` files.
func ExpandDeclarationPatterns(files []string, patterns []string) ([]string, error) {
	return expandPatterns(files, patterns, isDeclarationFile)
}

func expandPatterns(files []string, patterns []string, keep func(string) bool) ([]string, error) {
	result := []string{}
	added := map[string]bool{}

	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			p := CanonicalPath(pattern)
			if !added[p] {
				added[p] = true
				result = append(result, p)
			}
			continue
		}

		matchers, err := CreateGlobMatchers([]string{pattern}, ".")
		if err != nil {
			return nil, err
		}
		matched := []string{}
		for _, file := range files {
			if !added[file] && keep(file) && MatchesAnyGlobMatcher(file, matchers) {
				matched = append(matched, file)
			}
		}
		slices.Sort(matched)
		for _, file := range matched {
			added[file] = true
			result = append(result, file)
		}
	}
	return result, nil
}
