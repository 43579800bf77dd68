package main

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

type GlobMatcher struct {
	globPattern                        glob.Glob
	inputString                        string
	shouldMatchAnyFileOrDirWithPattern bool
	patternRoot                        string
}

// CreateGlobMatchers compiles gitignore-style patterns relative to
// patternsRoot (a canonical directory, "." for the project root).
func CreateGlobMatchers(patterns []string, patternsRoot string) ([]GlobMatcher, error) {
	globMatchers := []GlobMatcher{}
	patternRoot := ""
	if root := CanonicalPath(patternsRoot); root != "." {
		patternRoot = root + "/"
	}

	for _, pattern := range patterns {
		// .gitignore entries without `/` or `*` match files or directories with that exact name
		shouldMatchAnyFileOrDirWithPattern := !strings.Contains(pattern, "/") && !strings.Contains(pattern, "*")

		if strings.HasSuffix(pattern, "/") && !strings.Contains(pattern, "*") {
			// in gitignore entry with `/` suffix matches whole directory recursively
			pattern = "**" + pattern + "**"
		}
		pattern = strings.TrimPrefix(NormalizeGlobPattern(pattern), "/")

		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		globMatchers = append(globMatchers, GlobMatcher{
			globPattern:                        compiled,
			inputString:                        pattern,
			patternRoot:                        patternRoot,
			shouldMatchAnyFileOrDirWithPattern: shouldMatchAnyFileOrDirWithPattern,
		})

		// `**/` requires at least one directory with this glob library, so `**/*.ts`
		// would miss `a.ts` at the root. Add the root-level variant.
		if strings.HasPrefix(pattern, "**/") {
			additionalPattern := strings.Replace(pattern, "**/", "", 1)
			additional, err := glob.Compile(additionalPattern, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern '%s': %w", additionalPattern, err)
			}
			globMatchers = append(globMatchers, GlobMatcher{
				globPattern: additional,
				inputString: additionalPattern,
				patternRoot: patternRoot,
			})
		}
	}
	return globMatchers, nil
}

func MatchesAnyGlobMatcher(filePath string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		fileWithoutPrefix := strings.TrimPrefix(CanonicalPath(filePath), matcher.patternRoot)
		if matcher.globPattern.Match(fileWithoutPrefix) {
			return true
		}
		if !matcher.shouldMatchAnyFileOrDirWithPattern {
			continue
		}
		if fileWithoutPrefix == matcher.inputString || strings.HasSuffix(fileWithoutPrefix, "/"+matcher.inputString) {
			// matches file with name exactly as the pattern
			return true
		}
		if strings.Contains(fileWithoutPrefix, "/"+matcher.inputString+"/") || strings.HasPrefix(fileWithoutPrefix, matcher.inputString+"/") {
			// matches directory with name exactly as the pattern
			return true
		}
	}
	return false
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
