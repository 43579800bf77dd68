package main

import (
	"fmt"
	"strings"
)

type cycleFrame struct {
	node string
	next int
}

// FindCircularDependencies detects cycles among internal units, starting a
// depth-first search from every not yet visited unit in roots order. Each
// cycle is returned closed, e.g. [a, b, a].
func FindCircularDependencies(edges map[string][]string, roots []string) [][]string {
	var cycles [][]string
	visited := make(map[string]bool)
	// stack position of every unit on the current path
	onPath := make(map[string]int)

	for _, root := range roots {
		if visited[root] {
			continue
		}
		visited[root] = true
		onPath[root] = 0
		stack := []cycleFrame{{node: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := edges[top.node]
			if top.next >= len(deps) {
				delete(onPath, top.node)
				stack = stack[:len(stack)-1]
				continue
			}
			dep := deps[top.next]
			top.next++

			if start, ok := onPath[dep]; ok {
				cycle := make([]string, 0, len(stack)-start+1)
				for _, frame := range stack[start:] {
					cycle = append(cycle, frame.node)
				}
				cycles = append(cycles, append(cycle, dep))
				continue
			}
			if !visited[dep] {
				visited[dep] = true
				onPath[dep] = len(stack)
				stack = append(stack, cycleFrame{node: dep})
			}
		}
	}

	return deduplicateStringArrays(cycles)
}

// FormatCircularDependencies formats circular dependencies for display
func FormatCircularDependencies(cycles [][]string) string {
	if len(cycles) == 0 {
		return fmt.Sprintln("No circular dependencies found!")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d circular dependencies:\n\n", len(cycles))
	for i, cycle := range cycles {
		fmt.Fprintf(&b, "Circular Dependency %d:\n", i+1)
		for j, file := range cycle {
			indent := strings.Repeat(" ", j)
			if j == 0 {
				fmt.Fprintf(&b, "%s ➞ %s (cycle start)\n", indent, file)
			} else {
				fmt.Fprintf(&b, "%s ➞ %s\n", indent, file)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func circularDependencyDiagnostics(cycles [][]string) []Diagnostic {
	diagnostics := make([]Diagnostic, 0, len(cycles))
	for _, cycle := range cycles {
		d := newDiagnostic(CodeCircularDependency, CategoryWarning, strings.Join(cycle, " -> "))
		d.File = cycle[0]
		diagnostics = append(diagnostics, d)
	}
	return diagnostics
}

// deduplicateStringArrays deduplicates cycles
func deduplicateStringArrays(arr [][]string) [][]string {
	entries := make(map[string]struct{}, len(arr))
	result := make([][]string, 0, len(arr))

	for _, arrNested := range arr {
		key := strings.Join(arrNested, ",")
		if _, exists := entries[key]; !exists {
			result = append(result, arrNested)
			entries[key] = struct{}{}
		}
	}
	return result
}
