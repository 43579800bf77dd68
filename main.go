package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var Version = "0.1.0"

var (
	currentDir, _ = os.Getwd()
	verbose       bool
	rootCmd       = &cobra.Command{
		Use:   "tsbundle",
		Short: "Merge TypeScript sources into single-file bundles",
		Long: `Concatenates the internal modules reachable from a set of entry files into one
TypeScript file, dependencies first, with external imports deduplicated into a
single preamble.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SetupLogging(os.Stderr, verbose)
		},
	}
)

var docsDir string

var docsCmd = &cobra.Command{
	Use:   "doc-gen",
	Short: "Generate CLI documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := doc.GenMarkdownTree(rootCmd, docsDir); err != nil {
			return fmt.Errorf("generating docs in %s: %w", docsDir, err)
		}
		Info("docs generated", "dir", docsDir)
		return nil
	},
}

// ---------------- shared flags ----------------

var (
	projectCwd          string
	projectTsconfig     string
	projectDeclarations []string
	projectExclude      []string
)

func addProjectFlags(command *cobra.Command) {
	command.Flags().StringVarP(&projectCwd, "cwd", "c", currentDir,
		"Project root")
	command.Flags().StringVar(&projectTsconfig, "tsconfig", "",
		"Path to tsconfig.json relative to the project root (default: tsconfig.json if present)")
	command.Flags().StringSliceVarP(&projectDeclarations, "declarations", "d", []string{},
		"Ambient declaration files or globs")
	command.Flags().StringSliceVarP(&projectExclude, "exclude", "e", []string{},
		"Globs of files to leave out of the project")
}

// ---------------- build ----------------

var (
	buildConfigPath string
	buildBundles    []string
	buildDryRun     bool
	buildTranspile  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build every configured bundle",
	Long: `Reads tsbundle.config.json (or .yaml), builds all bundles concurrently and
writes each to <outDir>/<outputBaseName>.ts, or .tsx when any merged unit is markup.`,
	Example: "tsbundle build --bundle app --dry-run",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(projectCwd)
		configPath := buildConfigPath
		if configPath == "" {
			configPath = cwd
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			return err
		}

		tsconfig := projectTsconfig
		if tsconfig == "" {
			tsconfig = config.TsConfig
		}
		program, files, err := OpenProject(os.DirFS(cwd), tsconfig,
			append(slices.Clone(config.Declarations), projectDeclarations...),
			append(slices.Clone(config.Exclude), projectExclude...))
		if err != nil {
			return err
		}

		bundles, err := selectBundles(config.Bundles, buildBundles, files)
		if err != nil {
			return err
		}
		if buildTranspile {
			for i := range bundles {
				bundles[i].Transpile = true
			}
		}

		results, err := BuildAll(cmd.Context(), program, bundles)
		if err != nil {
			return err
		}

		failed := 0
		for _, result := range results {
			if !writeBundleResult(cwd, result, buildDryRun) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d bundles failed", failed, len(results))
		}
		return nil
	},
}

func selectBundles(configs []BundleConfig, names []string, files []string) ([]Bundle, error) {
	bundles := make([]Bundle, 0, len(configs))
	matched := map[string]bool{}
	for _, bundleConfig := range configs {
		name := bundleConfig.displayName()
		if len(names) > 0 && !slices.Contains(names, name) {
			continue
		}
		matched[name] = true
		bundle, err := bundleConfig.ToBundle(files)
		if err != nil {
			return nil, fmt.Errorf("bundle '%s': %w", name, err)
		}
		bundles = append(bundles, bundle)
	}
	for _, name := range names {
		if !matched[name] {
			return nil, fmt.Errorf("no bundle named '%s' in config", name)
		}
	}
	return bundles, nil
}

// writeBundleResult prints the result's diagnostics and writes its outputs.
// It reports whether the bundle counts as built.
func writeBundleResult(cwd string, result BundleResult, dryRun bool) bool {
	FormatDiagnostics(os.Stderr, result.Diagnostics)
	FormatBundleSummary(os.Stdout, result)
	if !result.Succeeded() {
		return false
	}

	output := result.Output
	if !dryRun {
		target, err := writeProjectFile(cwd, output.Path, output.Text)
		if err != nil {
			Error("write failed", "bundle", result.Bundle.displayName(), "err", err)
			return false
		}
		Info("bundle written", "path", target)
	}

	if !result.Bundle.Transpile {
		return true
	}
	js, diagnostics := TranspileBundle(output)
	FormatDiagnostics(os.Stderr, diagnostics)
	if hasErrors(diagnostics) {
		return false
	}
	if !dryRun {
		target, err := writeProjectFile(cwd, transpiledPath(output), js)
		if err != nil {
			Error("write failed", "bundle", result.Bundle.displayName(), "err", err)
			return false
		}
		Info("transpiled bundle written", "path", target)
	}
	return true
}

// ---------------- order ----------------

var (
	orderEntryPoints []string
	orderPrintTree   bool
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the order in which units would be merged",
	Long: `Resolves the given entry points (or every file nothing imports) and prints the
internal units in the order their bodies would appear in a bundle.`,
	Example: "tsbundle order -p src/index.ts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(projectCwd)
		program, files, err := OpenProject(os.DirFS(cwd), projectTsconfig, projectDeclarations, projectExclude)
		if err != nil {
			return err
		}

		entries, err := ExpandEntryPatterns(files, orderEntryPoints)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			entries, err = GetEntryPoints(CollectProjectTree(program, files), nil, nil)
			if err != nil {
				return err
			}
		}

		if orderPrintTree {
			tree := NewMinimalDependencyTree()
			for _, entry := range entries {
				if unit, err := program.Parse(entry); err == nil {
					tree.Merge(CollectDependencies(program, unit))
				}
			}
			fmt.Print(StringifyMinimalDependencyTree(tree))
			return nil
		}

		result := Build(program, Bundle{Name: "order", EntryFiles: entries, PackageType: PackageComponent})
		FormatDiagnostics(os.Stderr, result.Diagnostics)
		if !result.Succeeded() {
			return errors.New("could not resolve entry points")
		}
		FormatEmissionOrder(os.Stdout, "Emission order", result.Output.Units)
		return nil
	},
}

// ---------------- circular ----------------

var circularEntryPoints []string

var circularCmd = &cobra.Command{
	Use:   "circular",
	Short: "Detect circular dependencies between internal units",
	Long: `Finds import cycles among internal units. Cycles do not stop a build, but the
order inside a cycle is only as good as the entry that first reaches it.`,
	Example: "tsbundle circular -p src/index.ts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(projectCwd)
		program, files, err := OpenProject(os.DirFS(cwd), projectTsconfig, projectDeclarations, projectExclude)
		if err != nil {
			return err
		}

		entries, err := ExpandEntryPatterns(files, circularEntryPoints)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			entries = files
		}
		tree := CollectProjectTree(program, entries)
		cycles := FindCircularDependencies(tree.InternalEdges(), tree.Keys())

		fmt.Fprint(os.Stderr, FormatCircularDependencies(cycles))

		if len(cycles) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")

	addProjectFlags(buildCmd)
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "",
		"Config file or directory containing one (default: project root)")
	buildCmd.Flags().StringSliceVarP(&buildBundles, "bundle", "b", []string{},
		"Only build the bundles with these names")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false,
		"Build and report without writing files")
	buildCmd.Flags().BoolVar(&buildTranspile, "transpile", false,
		"Also emit JavaScript for every bundle, regardless of its config")

	addProjectFlags(orderCmd)
	orderCmd.Flags().StringSliceVarP(&orderEntryPoints, "entry-points", "p", []string{},
		"Entry point files or globs (default: files no other file imports)")
	orderCmd.Flags().BoolVar(&orderPrintTree, "tree", false,
		"Print the classified import tree instead of the order")

	addProjectFlags(circularCmd)
	circularCmd.Flags().StringSliceVarP(&circularEntryPoints, "entry-points", "p", []string{},
		"Entry point files or globs (default: every project file)")

	docsCmd.Flags().StringVar(&docsDir, "dir", "./docs",
		"Directory the markdown files are written to")

	rootCmd.AddCommand(buildCmd, orderCmd, circularCmd, docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		Error(err.Error())
		os.Exit(1)
	}
}

// OpenProject lists the project files of fsys and creates the Program that
// parses and resolves them. An empty tsconfigPath falls back to tsconfig.json
// when the project has one.
func OpenProject(fsys fs.FS, tsconfigPath string, declarations []string, exclude []string) (*Program, []string, error) {
	files, err := ListSourceFiles(fsys, exclude)
	if err != nil {
		return nil, nil, err
	}

	var tsconfig *TsConfig
	if tsconfigPath == "" {
		if _, statErr := fs.Stat(fsys, "tsconfig.json"); statErr == nil {
			tsconfigPath = "tsconfig.json"
		}
	}
	if tsconfigPath != "" {
		tsconfig, err = LoadTsConfig(fsys, tsconfigPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load tsconfig: %w", err)
		}
	}

	declarationFiles, err := ExpandDeclarationPatterns(files, declarations)
	if err != nil {
		return nil, nil, err
	}

	program, err := NewProgram(fsys, ProgramOptions{TsConfig: tsconfig, Declarations: declarationFiles})
	if err != nil {
		return nil, nil, err
	}
	Debug("project opened", "files", len(files), "declarations", len(declarationFiles))
	return program, files, nil
}
