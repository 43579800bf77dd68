package main

import (
	"fmt"
	"io/fs"
	"sync"
)

// FrontEnd parses files into SourceUnits and resolves module specifiers.
// Implementations must be safe for concurrent use by independent builds.
type FrontEnd interface {
	Parse(path string) (*SourceUnit, error)
	ResolveSymbol(from *SourceUnit, specifier string) Symbol
	GetText(unit *SourceUnit) string
}

type ProgramOptions struct {
	TsConfig *TsConfig
	// Declarations are `.d.ts` files loaded up front so their
	// `declare module "name"` blocks are known to the resolver.
	Declarations []string
}

// Program is the FrontEnd over a project directory. Units are parsed once and
// cached by canonical path.
type Program struct {
	fsys     fs.FS
	resolver *ModuleResolver
	units    map[string]*SourceUnit
	mu       sync.RWMutex
}

func NewProgram(fsys fs.FS, opts ProgramOptions) (*Program, error) {
	p := &Program{
		fsys:     fsys,
		resolver: NewModuleResolver(fsys, opts.TsConfig),
		units:    map[string]*SourceUnit{},
	}
	for _, declaration := range opts.Declarations {
		unit, err := p.Parse(declaration)
		if err != nil {
			return nil, fmt.Errorf("failed to load declarations %s: %w", declaration, err)
		}
		for _, name := range unit.AmbientModules {
			p.resolver.AddAmbientModule(name, unit.Path)
		}
	}
	return p, nil
}

func (p *Program) Parse(path string) (*SourceUnit, error) {
	path = CanonicalPath(path)

	p.mu.RLock()
	unit, ok := p.units[path]
	p.mu.RUnlock()
	if ok {
		return unit, nil
	}

	content, err := fs.ReadFile(p.fsys, path)
	if err != nil {
		return nil, err
	}
	parsed := ParseUnit(path, content)

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.units[path]; ok {
		return existing, nil
	}
	p.units[path] = parsed
	Debug("parsed unit", "path", path, "nodes", len(parsed.Nodes), "declarations", len(parsed.Declarations))
	return parsed, nil
}

func (p *Program) ResolveSymbol(from *SourceUnit, specifier string) Symbol {
	return p.resolver.Resolve(from.Path, specifier)
}

func (p *Program) GetText(unit *SourceUnit) string {
	return unit.Text
}
