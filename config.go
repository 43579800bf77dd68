package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type BundleConfig struct {
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
	Entries        []string `json:"entries" yaml:"entries"`
	OutputBaseName string   `json:"outputBaseName,omitempty" yaml:"outputBaseName,omitempty"`
	OutDir         string   `json:"outDir,omitempty" yaml:"outDir,omitempty"`
	PackageType    string   `json:"packageType,omitempty" yaml:"packageType,omitempty"`
	Namespace      string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Transpile      bool     `json:"transpile,omitempty" yaml:"transpile,omitempty"`
}

type Config struct {
	ConfigVersion string         `json:"configVersion" yaml:"configVersion"`
	TsConfig      string         `json:"tsconfig,omitempty" yaml:"tsconfig,omitempty"`
	Declarations  []string       `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	Exclude       []string       `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Bundles       []BundleConfig `json:"bundles" yaml:"bundles"`
}

type ConfigFormat uint8

const (
	ConfigJSON ConfigFormat = iota
	ConfigYAML
)

const supportedConfigVersions = "^1.0"

var configFileNames = []string{
	"tsbundle.config.json",
	"tsbundle.config.jsonc",
	"tsbundle.config.yaml",
	"tsbundle.config.yml",
}

func configFormatFor(path string) ConfigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigYAML
	}
	return ConfigJSON
}

// findConfigFile returns the first known config file name present in dir.
func findConfigFile(dir string) (string, error) {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no config file found in %s (looked for %s)", dir, strings.Join(configFileNames, ", "))
}

// LoadConfig loads the bundler configuration. configPath can be a config file
// or a directory containing one.
func LoadConfig(configPath string) (*Config, error) {
	fileInfo, err := os.Stat(configPath)
	if err != nil {
		return nil, err
	}

	actualPath := configPath
	if fileInfo.IsDir() {
		actualPath, err = findConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	content, err := os.ReadFile(actualPath)
	if err != nil {
		return nil, err
	}

	config, err := ParseConfig(content, configFormatFor(actualPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", actualPath, err)
	}
	Debug("config loaded", "path", actualPath, "bundles", len(config.Bundles))
	return config, nil
}

func ParseConfig(content []byte, format ConfigFormat) (*Config, error) {
	var config Config
	switch format {
	case ConfigYAML:
		if err := yaml.Unmarshal(content, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(content), &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := checkConfigVersion(config.ConfigVersion); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func checkConfigVersion(version string) error {
	if version == "" {
		return fmt.Errorf("configVersion is required")
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid configVersion '%s': %w", version, err)
	}
	constraint, err := semver.NewConstraint(supportedConfigVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("unsupported configVersion '%s', supported: %s", version, supportedConfigVersions)
	}
	return nil
}

func (c *Config) Validate() error {
	if len(c.Bundles) == 0 {
		return fmt.Errorf("bundles: at least one bundle is required")
	}
	for i, p := range c.Declarations {
		if err := validatePattern(p); err != nil {
			return fmt.Errorf("declarations[%d]: %w", i, err)
		}
	}
	for i, p := range c.Exclude {
		if err := validatePattern(p); err != nil {
			return fmt.Errorf("exclude[%d]: %w", i, err)
		}
	}

	names := map[string]int{}
	for i, bundle := range c.Bundles {
		if len(bundle.Entries) == 0 {
			return fmt.Errorf("bundles[%d].entries: at least one entry is required", i)
		}
		for j, p := range bundle.Entries {
			if err := validatePattern(p); err != nil {
				return fmt.Errorf("bundles[%d].entries[%d]: %w", i, j, err)
			}
		}
		packageType, err := ParsePackageType(bundle.PackageType)
		if err != nil {
			return fmt.Errorf("bundles[%d].packageType: %w", i, err)
		}
		if packageType == PackageLibrary && bundle.Namespace == "" {
			return fmt.Errorf("bundles[%d].namespace: required for library packaging", i)
		}
		if name := bundle.displayName(); name != "" {
			if previous, exists := names[name]; exists {
				return fmt.Errorf("bundles[%d]: name '%s' already used by bundles[%d]", i, name, previous)
			}
			names[name] = i
		}
	}
	return nil
}

func (b BundleConfig) displayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.OutputBaseName
}

// ToBundle expands the entry patterns against files and returns the Bundle
// the assembler consumes.
func (b BundleConfig) ToBundle(files []string) (Bundle, error) {
	packageType, err := ParsePackageType(b.PackageType)
	if err != nil {
		return Bundle{}, err
	}
	entries, err := ExpandEntryPatterns(files, b.Entries)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{
		Name:           b.Name,
		EntryFiles:     entries,
		OutputBaseName: b.OutputBaseName,
		OutDir:         CanonicalPath(b.OutDir),
		PackageType:    packageType,
		Namespace:      b.Namespace,
		Transpile:      b.Transpile,
	}, nil
}

func validatePattern(pattern string) error {
	if len(pattern) >= 2 && pattern[0] == '.' && (pattern[1] == '/' || pattern[1] == '\\') {
		return fmt.Errorf("pattern '%s' starts with './' or '.\\', which is not allowed. Use paths that starts with file or directory name", pattern)
	}
	if len(pattern) >= 3 && pattern[0] == '.' && pattern[1] == '.' && (pattern[2] == '/' || pattern[2] == '\\') {
		return fmt.Errorf("pattern '%s' starts with '../' or '..\\', which is not allowed. Use paths that starts with file or directory name", pattern)
	}
	return nil
}
