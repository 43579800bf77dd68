package main

import (
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strings"
	"sync"
)

type SymbolKind uint8

const (
	SymbolNotFound SymbolKind = iota
	SymbolSourceFile
	SymbolAmbientModule
)

// Symbol is what a module specifier resolves to. Path is the resolved file for
// SymbolSourceFile and the declaring file for SymbolAmbientModule.
type Symbol struct {
	Kind SymbolKind
	Path string
}

type aliasPattern struct {
	aliasKey string
	regExp   *regexp.Regexp
	targets  []string
}

type ModuleResolver struct {
	fsys           fs.FS
	aliases        []aliasPattern
	baseUrl        string
	ambientModules map[string]string
	cache          map[string]Symbol
	mu             sync.RWMutex
}

// Probing order for extensionless specifiers; `.d.ts` loses to real sources.
var resolveExtensions = []string{".ts", ".tsx", ".d.ts"}

var scriptExtensionRegExp = regexp.MustCompile(`\.(?:js|jsx|mjs|cjs|ts|tsx|mts|cts)$`)

func NewModuleResolver(fsys fs.FS, tsconfig *TsConfig) *ModuleResolver {
	r := &ModuleResolver{
		fsys:           fsys,
		ambientModules: map[string]string{},
		cache:          map[string]Symbol{},
	}
	if tsconfig == nil {
		return r
	}
	r.baseUrl = tsconfig.BaseUrl

	for aliasKey, targets := range tsconfig.Paths {
		if len(targets) == 0 {
			continue
		}
		pattern := "^" + regexp.QuoteMeta(aliasKey) + "$"
		if prefix, suffix, found := strings.Cut(aliasKey, "*"); found {
			pattern = "^" + regexp.QuoteMeta(prefix) + "(.*)" + regexp.QuoteMeta(suffix) + "$"
		}
		r.aliases = append(r.aliases, aliasPattern{
			aliasKey: aliasKey,
			regExp:   regexp.MustCompile(pattern),
			targets:  targets,
		})
	}

	// Sort regexps as they are matched starting from longest matching prefix
	slices.SortFunc(r.aliases, func(itemA aliasPattern, itemB aliasPattern) int {
		keyAMatchingPrefix := strings.Replace(itemA.aliasKey, "*", "", 1)
		keyBMatchingPrefix := strings.Replace(itemB.aliasKey, "*", "", 1)
		if d := len(keyBMatchingPrefix) - len(keyAMatchingPrefix); d != 0 {
			return d
		}
		return strings.Compare(itemA.aliasKey, itemB.aliasKey)
	})

	return r
}

// AddAmbientModule registers a `declare module "name"` found in declaringPath.
// The first declaration of a name wins.
func (r *ModuleResolver) AddAmbientModule(name string, declaringPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ambientModules[name]; !exists {
		r.ambientModules[name] = declaringPath
	}
}

// Resolve maps specifier, as written in the unit at fromPath, to a Symbol.
func (r *ModuleResolver) Resolve(fromPath string, specifier string) Symbol {
	if specifier == "" {
		return Symbol{Kind: SymbolNotFound}
	}
	fromDir := path.Dir(fromPath)
	cacheKey := specifier
	if isRelativeSpecifier(specifier) {
		cacheKey = fromDir + "\x00" + specifier
	}

	r.mu.RLock()
	cached, ok := r.cache[cacheKey]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	symbol := r.resolveUncached(fromDir, specifier)

	r.mu.Lock()
	r.cache[cacheKey] = symbol
	r.mu.Unlock()
	return symbol
}

func (r *ModuleResolver) resolveUncached(fromDir string, specifier string) Symbol {
	if isRelativeSpecifier(specifier) {
		if resolved, ok := r.probe(path.Join(fromDir, specifier)); ok {
			return Symbol{Kind: SymbolSourceFile, Path: resolved}
		}
		return Symbol{Kind: SymbolNotFound}
	}

	for _, alias := range r.aliases {
		match := alias.regExp.FindStringSubmatch(specifier)
		if match == nil {
			continue
		}
		wildcard := ""
		if len(match) > 1 {
			wildcard = match[1]
		}
		for _, target := range alias.targets {
			if resolved, ok := r.probe(strings.Replace(target, "*", wildcard, 1)); ok {
				return Symbol{Kind: SymbolSourceFile, Path: resolved}
			}
		}
	}

	if r.baseUrl != "" {
		if resolved, ok := r.probe(path.Join(r.baseUrl, specifier)); ok {
			return Symbol{Kind: SymbolSourceFile, Path: resolved}
		}
	}

	r.mu.RLock()
	declaringPath, ambient := r.ambientModules[specifier]
	r.mu.RUnlock()
	if ambient {
		return Symbol{Kind: SymbolAmbientModule, Path: declaringPath}
	}

	return Symbol{Kind: SymbolNotFound}
}

// probe finds the file behind modulePath. TS lets `./a.js` name `./a.ts`, so a
// script extension is dropped before probing.
func (r *ModuleResolver) probe(modulePath string) (string, bool) {
	modulePath = CanonicalPath(modulePath)
	if isDeclarationFile(modulePath) || strings.HasSuffix(modulePath, ".ts") || strings.HasSuffix(modulePath, ".tsx") {
		if r.isFile(modulePath) {
			return modulePath, true
		}
	}

	stem := scriptExtensionRegExp.ReplaceAllString(modulePath, "")
	for _, ext := range resolveExtensions {
		if r.isFile(stem + ext) {
			return stem + ext, true
		}
	}
	for _, ext := range resolveExtensions {
		candidate := CanonicalPath(path.Join(modulePath, "index"+ext))
		if r.isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *ModuleResolver) isFile(name string) bool {
	info, err := fs.Stat(r.fsys, name)
	return err == nil && !info.IsDir()
}
