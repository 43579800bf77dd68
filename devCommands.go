//go:build dev
// +build dev

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type importNodeWithLabels struct {
	Kind           string    `json:"kind"`
	Specifier      string    `json:"specifier"`
	Span           [2]int    `json:"span"`
	TypeOnly       bool      `json:"typeOnly"`
	Bindings       []Binding `json:"bindings,omitempty"`
	Reference      string    `json:"reference"`
	ReferencedPath string    `json:"referencedPath,omitempty"`
}

type declarationWithLabels struct {
	Name           string `json:"name"`
	Namespace      bool   `json:"namespace"`
	ExportModifier [2]int `json:"exportModifier"`
}

type parsedUnitWithLabels struct {
	Path              string                  `json:"path"`
	IsMarkup          bool                    `json:"isMarkup"`
	IsDeclarationOnly bool                    `json:"isDeclarationOnly"`
	Nodes             []importNodeWithLabels  `json:"nodes"`
	Declarations      []declarationWithLabels `json:"declarations"`
	AmbientModules    []string                `json:"ambientModules,omitempty"`
}

// ---------------- debug-parse-file ----------------
var debugFile string

var debugParseFileCmd = &cobra.Command{
	Use:   "debug-parse-file",
	Short: "Debug: Show import nodes and exported declarations of a single file",
	Long:  `Development tool to inspect how the scanner and classifier see a specific file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := ResolveAbsoluteCwd(projectCwd)
		program, _, err := OpenProject(os.DirFS(cwd), projectTsconfig, projectDeclarations, projectExclude)
		if err != nil {
			return err
		}
		unit, err := program.Parse(debugFile)
		if err != nil {
			return err
		}

		out := parsedUnitWithLabels{
			Path:              unit.Path,
			IsMarkup:          unit.IsMarkup,
			IsDeclarationOnly: unit.IsDeclarationOnly,
			AmbientModules:    unit.AmbientModules,
		}
		for _, dep := range classifyUnit(program, unit) {
			out.Nodes = append(out.Nodes, importNodeWithLabels{
				Kind:           ImportNodeKindToString(dep.Node.Kind),
				Specifier:      dep.Node.Specifier,
				Span:           [2]int{dep.Node.Span.Start, dep.Node.Span.End},
				TypeOnly:       dep.Node.TypeOnly,
				Bindings:       dep.Node.Bindings,
				Reference:      ReferenceKindToString(dep.Reference.Kind),
				ReferencedPath: dep.targetPath(),
			})
		}
		for _, decl := range unit.Declarations {
			out.Declarations = append(out.Declarations, declarationWithLabels{
				Name:           decl.Name,
				Namespace:      decl.Kind == DeclNamespace,
				ExportModifier: [2]int{decl.ExportModifier.Start, decl.ExportModifier.End},
			})
		}

		jsonUnit, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(jsonUnit))
		return nil
	},
}

func init() {
	addProjectFlags(debugParseFileCmd)
	debugParseFileCmd.Flags().StringVar(&debugFile, "file", "", "file to parse, relative to the project root")
	debugParseFileCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(debugParseFileCmd)
}
