package main

import (
	"context"
	"fmt"
	"path"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

type PackageType uint8

const (
	PackageLibrary PackageType = iota
	PackageComponent
)

func (p PackageType) String() string {
	switch p {
	case PackageLibrary:
		return "library"
	case PackageComponent:
		return "component"
	}
	return "unknown"
}

func ParsePackageType(s string) (PackageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "library":
		return PackageLibrary, nil
	case "component":
		return PackageComponent, nil
	}
	return PackageLibrary, fmt.Errorf("unknown package type '%s', expected 'library' or 'component'", s)
}

const (
	defaultExtension = ".ts"
	markupExtension  = ".tsx"
	defaultBaseName  = "bundle"
)

// Bundle describes one output unit: which entry files go in and how the
// merged text is packaged.
type Bundle struct {
	Name           string
	EntryFiles     []string
	OutputBaseName string
	OutDir         string
	PackageType    PackageType
	Namespace      string
	Transpile      bool
}

func (b Bundle) displayName() string {
	if b.Name != "" {
		return b.Name
	}
	if b.OutputBaseName != "" {
		return b.OutputBaseName
	}
	return defaultBaseName
}

type BundleOutput struct {
	Path      string
	Extension string
	Text      string
	// Units lists the merged unit paths in emission order.
	Units []string
}

// BundleResult is either a success, with Output set, or a failure, with
// Output nil and at least one error diagnostic. Successful builds may still
// carry advisory warnings.
type BundleResult struct {
	Bundle      Bundle
	Output      *BundleOutput
	Diagnostics []Diagnostic
}

func (r BundleResult) Succeeded() bool {
	return r.Output != nil
}

func failedBuild(bundle Bundle, diagnostic Diagnostic, more ...Diagnostic) BundleResult {
	return BundleResult{Bundle: bundle, Diagnostics: append([]Diagnostic{diagnostic}, more...)}
}

// Build merges the bundle's entry units and their internal dependencies into a
// single text. It never panics on bad input; problems come back as
// diagnostics on the result.
func Build(fe FrontEnd, bundle Bundle) BundleResult {
	if bundle.PackageType == PackageLibrary && bundle.Namespace == "" {
		return failedBuild(bundle, newDiagnostic(CodeNamespaceRequired, CategoryError, bundle.displayName()))
	}

	entries := make([]*SourceUnit, 0, len(bundle.EntryFiles))
	for _, entryFile := range bundle.EntryFiles {
		unit, err := fe.Parse(entryFile)
		if err != nil {
			Debug("entry not found", "bundle", bundle.displayName(), "path", entryFile, "err", err)
			return failedBuild(bundle, newDiagnostic(CodeSourceFileNotFound, CategoryError, entryFile))
		}
		entries = append(entries, unit)
	}

	registry := NewImportRegistry()
	walker := newDepsWalker(fe, registry, bundle.PackageType, bundle.Namespace)
	for _, entry := range entries {
		walker.walkEntry(entry, CollectDependencies(fe, entry))
	}

	diagnostics := walker.diagnostics
	cycles := FindCircularDependencies(walker.tree.InternalEdges(), walker.tree.Keys())
	diagnostics = append(diagnostics, circularDependencyDiagnostics(cycles)...)

	extension := defaultExtension
	units := make([]string, 0, len(walker.emitted))
	bodies := make([]string, 0, len(walker.emitted))
	for _, emitted := range walker.emitted {
		if emitted.IsMarkup {
			extension = markupExtension
		}
		units = append(units, emitted.Path)
		bodies = append(bodies, emitted.Text)
	}

	baseName := bundle.OutputBaseName
	if baseName == "" {
		baseName = defaultBaseName
	}

	output := &BundleOutput{
		Path:      path.Join(bundle.OutDir, baseName+extension),
		Extension: extension,
		Text:      assembleBundleText(registry.Preamble(), bodies, bundle),
		Units:     units,
	}
	Debug("bundle built", "bundle", bundle.displayName(), "units", len(units), "preamble", len(registry.Entries()), "diagnostics", len(diagnostics))
	return BundleResult{Bundle: bundle, Output: output, Diagnostics: diagnostics}
}

func assembleBundleText(preamble string, bodies []string, bundle Bundle) string {
	body := strings.Join(bodies, "\n")

	var b strings.Builder
	b.Grow(len(preamble) + len(body) + len(bundle.Namespace) + 24)
	b.WriteString(preamble)
	if bundle.PackageType == PackageLibrary {
		b.WriteString("export namespace ")
		b.WriteString(bundle.Namespace)
		b.WriteString(" {\n")
		b.WriteString(body)
		b.WriteString("\n}")
	} else {
		b.WriteString(body)
	}
	return b.String()
}

// BuildAll builds independent bundles concurrently against a shared FrontEnd.
// Results are in the order of bundles. Bundles not started before ctx is
// cancelled are skipped and ctx's error is returned.
func BuildAll(ctx context.Context, fe FrontEnd, bundles []Bundle) ([]BundleResult, error) {
	results := make([]BundleResult, len(bundles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, bundle := range bundles {
		i, bundle := i, bundle
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Build(fe, bundle)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
