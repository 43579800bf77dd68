package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/tidwall/jsonc"
)

// TsConfig holds the compiler options the module resolver needs.
// BaseUrl and Paths entries are relative to the project root.
type TsConfig struct {
	BaseUrl string
	Paths   map[string][]string
}

// LoadTsConfig reads tsconfig (JSON or JSONC) from fsys and resolves any
// extended configs via the "extends" field. Merging rules:
// - child overrides base for baseUrl
// - paths are merged with child keys overriding base keys
// - relative baseUrl and paths are rebased onto the project root
func LoadTsConfig(fsys fs.FS, tsconfigPath string) (*TsConfig, error) {
	tsconfigPath = CanonicalPath(tsconfigPath)
	raw, err := readJsoncObject(fsys, tsconfigPath)
	if err != nil {
		return nil, err
	}

	merged, err := resolveExtends(fsys, raw, path.Dir(tsconfigPath), map[string]bool{tsconfigPath: true})
	if err != nil {
		return nil, err
	}

	return tsConfigFromMap(merged, path.Dir(tsconfigPath)), nil
}

func readJsoncObject(fsys fs.FS, name string) (map[string]interface{}, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(jsonc.ToJSON(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tsconfig %s: %w", name, err)
	}
	return raw, nil
}

func resolveExtends(fsys fs.FS, cfg map[string]interface{}, baseDir string, seen map[string]bool) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	for k, v := range cfg {
		result[k] = v
	}
	ensureCompilerOptions(result)

	extStr, ok := result["extends"].(string)
	delete(result, "extends")
	if !ok || strings.TrimSpace(extStr) == "" {
		return result, nil
	}

	var candidates []string
	if strings.HasPrefix(extStr, ".") || strings.Contains(extStr, "/") && !strings.HasPrefix(extStr, "@") {
		p := CanonicalPath(path.Join(baseDir, extStr))
		candidates = append(candidates, p, p+".json")
	} else {
		// tsconfigs published as packages
		p := path.Join(baseDir, "node_modules", extStr)
		candidates = append(candidates, p, path.Join(p, "tsconfig.json"), p+".json")
	}

	var baseCfg map[string]interface{}
	foundPath := ""
	for _, cand := range candidates {
		cand = CanonicalPath(cand)
		info, err := fs.Stat(fsys, cand)
		if err != nil || info.IsDir() {
			continue
		}
		parsed, err := readJsoncObject(fsys, cand)
		if err != nil {
			continue
		}
		baseCfg = parsed
		foundPath = cand
		break
	}

	if baseCfg == nil || seen[foundPath] {
		return result, nil
	}
	seen[foundPath] = true

	baseDirNext := path.Dir(foundPath)
	resolvedBase, err := resolveExtends(fsys, baseCfg, baseDirNext, seen)
	if err != nil {
		return nil, err
	}
	rebaseCompilerPaths(resolvedBase, baseDirNext, baseDir)

	merged := map[string]interface{}{}
	for k, v := range resolvedBase {
		merged[k] = v
	}
	for k, v := range result {
		if k == "compilerOptions" {
			baseCO, _ := merged["compilerOptions"].(map[string]interface{})
			childCO, _ := v.(map[string]interface{})
			merged["compilerOptions"] = mergeCompilerOptions(baseCO, childCO)
			continue
		}
		merged[k] = v
	}
	return merged, nil
}

func ensureCompilerOptions(cfg map[string]interface{}) {
	if _, ok := cfg["compilerOptions"].(map[string]interface{}); !ok {
		cfg["compilerOptions"] = map[string]interface{}{}
	}
}

func mergeCompilerOptions(base, child map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range child {
		if k != "paths" {
			out[k] = v
			continue
		}
		childPaths, ok := v.(map[string]interface{})
		if !ok {
			out["paths"] = v
			continue
		}
		paths := map[string]interface{}{}
		if basePaths, ok := base["paths"].(map[string]interface{}); ok {
			for kk, vv := range basePaths {
				paths[kk] = vv
			}
		}
		for kk, vv := range childPaths {
			paths[kk] = vv
		}
		out["paths"] = paths
	}
	return out
}

// rebaseCompilerPaths rewrites baseUrl and relative entries in
// compilerOptions.paths so that they point correctly from toDir instead of
// fromDir. Paths without baseUrl are resolved relative to the config that
// declares them.
func rebaseCompilerPaths(cfg map[string]interface{}, fromDir, toDir string) {
	co, ok := cfg["compilerOptions"].(map[string]interface{})
	if !ok || fromDir == toDir {
		return
	}
	if baseUrl, ok := co["baseUrl"].(string); ok {
		co["baseUrl"] = relativeTo(path.Join(fromDir, baseUrl), toDir)
	}
	if _, hasBaseUrl := co["baseUrl"]; hasBaseUrl {
		return
	}
	paths, ok := co["paths"].(map[string]interface{})
	if !ok {
		return
	}
	rebased := map[string]interface{}{}
	for key, val := range paths {
		arr, ok := val.([]interface{})
		if !ok {
			rebased[key] = val
			continue
		}
		newArr := make([]interface{}, 0, len(arr))
		for _, e := range arr {
			if str, ok := e.(string); ok {
				newArr = append(newArr, relativeTo(path.Join(fromDir, str), toDir))
			} else {
				newArr = append(newArr, e)
			}
		}
		rebased[key] = newArr
	}
	co["paths"] = rebased
}

// relativeTo expresses the root-relative path p relative to dir.
func relativeTo(p string, dir string) string {
	p = CanonicalPath(p)
	dir = CanonicalPath(dir)
	if dir == "." {
		return p
	}
	if p == dir {
		return "."
	}
	if strings.HasPrefix(p, dir+"/") {
		return strings.TrimPrefix(p, dir+"/")
	}
	ups := strings.Count(dir, "/") + 1
	return strings.Repeat("../", ups) + p
}

func tsConfigFromMap(cfg map[string]interface{}, configDir string) *TsConfig {
	out := &TsConfig{Paths: map[string][]string{}}
	co, _ := cfg["compilerOptions"].(map[string]interface{})

	pathsRoot := configDir
	if baseUrl, ok := co["baseUrl"].(string); ok && baseUrl != "" {
		out.BaseUrl = CanonicalPath(path.Join(configDir, baseUrl))
		pathsRoot = out.BaseUrl
	}

	paths, _ := co["paths"].(map[string]interface{})
	for key, val := range paths {
		arr, ok := val.([]interface{})
		if !ok {
			continue
		}
		for _, e := range arr {
			if str, ok := e.(string); ok {
				out.Paths[key] = append(out.Paths[key], CanonicalPath(path.Join(pathsRoot, str)))
			}
		}
	}
	return out
}
