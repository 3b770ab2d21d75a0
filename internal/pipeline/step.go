// Package pipeline implements the module step & pipeline component (C6):
// walking the module tree, building each module's import context, feeding
// its declarations through the synthesizer, aggregating emitted imports,
// and handing finished modules to an exporter in post-order.
package pipeline

import (
	"sort"
	"strings"

	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/importctx"
	"github.com/sunholo/typebind/internal/pathmap"
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/synth"
	"github.com/sunholo/typebind/internal/tidlast"
)

// Spawner is the step-spawner contract (spec.md §6): given a module path,
// produce the next Step to recurse into. A nil Step with a nil error means
// "no step here" (legitimately absent, or intentionally skipped) — not a
// failure.
type Spawner interface {
	CreateStep(path []string) (*Step, error)
}

// Step is one module: its path, its items in source order, and its
// per-module import context. Built by the spawner, consumed exactly once by
// Launch.
type Step struct {
	Path          []string
	Items         []source.Item
	ImportContext *importctx.Context
	CrateName     string
}

// NewStep builds a Step's import context from its items' use-trees and
// locally-declared containers/aliases, per spec.md §4.2.
func NewStep(path []string, items []source.Item, crateName string, onGlobSkipped func([]string)) *Step {
	ctx := importctx.New(crateName)
	for _, it := range items {
		switch it.Kind {
		case source.ItemContainer:
			if it.Container != nil {
				ctx.Declare(it.Container.Ident)
			}
		case source.ItemTypeAlias:
			if it.Alias != nil {
				ctx.Declare(it.Alias.Ident)
			}
		}
		if it.UseTree != nil {
			ctx.AddUseTree(translateUseTree(it.UseTree), onGlobSkipped)
		}
	}
	return &Step{Path: path, Items: items, ImportContext: ctx, CrateName: crateName}
}

func translateUseTree(t *source.UseTreeItem) *importctx.UseTree {
	if t == nil {
		return nil
	}
	out := &importctx.UseTree{
		PathSegment: t.PathSegment,
		Name:        t.Name,
		RenameOrig:  t.RenameOrig,
		RenameAs:    t.RenameAs,
		Glob:        t.Glob,
	}
	if t.Next != nil {
		out.Next = translateUseTree(t.Next)
	}
	for _, g := range t.Group {
		out.Group = append(out.Group, translateUseTree(g))
	}
	return out
}

// reexportLeaf is one imported name reached by walking a public use-tree,
// paired with the module path it came from.
type reexportLeaf struct {
	path  []string
	ident string
}

// collectReexportLeaves walks t the same way importctx.addUseTree does,
// collecting every leaf name instead of inserting it into a scope map. Glob
// leaves are unsupported and silently skipped, matching ordinary imports.
func collectReexportLeaves(t *source.UseTreeItem, prefix []string, crate string) []reexportLeaf {
	if t == nil {
		return nil
	}
	switch {
	case t.PathSegment != "":
		seg := t.PathSegment
		if seg == "crate" {
			seg = crate
		}
		return collectReexportLeaves(t.Next, append(append([]string{}, prefix...), seg), crate)
	case t.Name != "":
		return []reexportLeaf{{path: prefix, ident: t.Name}}
	case t.RenameOrig != "" || t.RenameAs != "":
		return []reexportLeaf{{path: prefix, ident: t.RenameAs}}
	case len(t.Group) > 0:
		var out []reexportLeaf
		for _, item := range t.Group {
			out = append(out, collectReexportLeaves(item, prefix, crate)...)
		}
		return out
	default:
		return nil
	}
}

// reexportDeclarations synthesizes one tidlast.ReexportDeclaration per
// distinct source module a public use-tree draws from, path-mapped the
// same way ordinary imports are (spec.md §4.2/§11).
func reexportDeclarations(t *source.UseTreeItem, crate string, mapper *pathmap.Mapper) []tidlast.Declaration {
	leaves := collectReexportLeaves(t, nil, crate)
	if len(leaves) == 0 {
		return nil
	}

	groups := make(map[string]map[string]struct{})
	var order []string
	for _, l := range leaves {
		src := strings.Join(l.path, "::")
		if src == "" {
			continue // re-exporting a name already scoped in this module: nothing to point "from"
		}
		if _, ok := groups[src]; !ok {
			groups[src] = make(map[string]struct{})
			order = append(order, src)
		}
		groups[src][l.ident] = struct{}{}
	}
	sort.Strings(order)

	decls := make([]tidlast.Declaration, 0, len(order))
	for _, src := range order {
		idents := make([]string, 0, len(groups[src]))
		for id := range groups[src] {
			idents = append(idents, id)
		}
		sort.Strings(idents)

		mapped := src
		if mapper != nil {
			if m, ok := mapper.Get(src); ok {
				mapped = m
			}
		}
		decls = append(decls, tidlast.ReexportDeclaration{Items: toIdents(idents), Path: mapped})
	}
	return decls
}

// ModuleStepResultData is the emission-ready payload for one module.
type ModuleStepResultData struct {
	Path    []string
	Imports []tidlast.ImportStatement
	Exports []tidlast.ExportStatement
}

// HasContent reports whether this module produced anything worth handing to
// an exporter.
func (d ModuleStepResultData) HasContent() bool {
	return len(d.Imports) > 0 || len(d.Exports) > 0
}

// ModuleStepResult is a launched step: its own data plus its children's,
// in the order they were declared.
type ModuleStepResult struct {
	Data     ModuleStepResultData
	Children []ModuleStepResult
}

// indexedDecl pairs a synthesized declaration with the source index of the
// item that produced it, so final emission can be resorted into source
// order even though containers/aliases/macros are solved independently.
type indexedDecl struct {
	index int
	decl  tidlast.Declaration
}

// Launch runs one step: builds a synthesizer bound to this module's own
// import context, classifies its items, recurses into child modules via
// spawner, invokes the synthesizer for every container/alias/macro, and
// aggregates imports through mapper.
func (s *Step) Launch(spawner Spawner, mapper *pathmap.Mapper, macros MacroChain) (ModuleStepResult, error) {
	synthesizer := synth.New(solve.NewContext(s.ImportContext))

	var decls []indexedDecl
	var imports []solve.ImportEntry
	var children []ModuleStepResult

	for idx, it := range s.Items {
		switch it.Kind {
		case source.ItemContainer:
			if it.Container == nil {
				continue
			}
			ds, is, err := synthesizer.ExportContainer(it.Container)
			if err != nil {
				return ModuleStepResult{}, err
			}
			for _, d := range ds {
				decls = append(decls, indexedDecl{idx, d})
			}
			imports = append(imports, is...)

		case source.ItemTypeAlias:
			if it.Alias == nil {
				continue
			}
			d, is, err := synth.ExportTypeAlias(synthesizer, it.Alias)
			if err != nil {
				return ModuleStepResult{}, err
			}
			decls = append(decls, indexedDecl{idx, d})
			imports = append(imports, is...)

		case source.ItemMacro:
			if it.Macro == nil || macros == nil {
				continue
			}
			ds, is, ok, err := macros.SolveMacro(it.Macro)
			if err != nil {
				return ModuleStepResult{}, err
			}
			if !ok {
				continue // unregistered macro: silently ignored
			}
			for _, d := range ds {
				decls = append(decls, indexedDecl{idx, d})
			}
			imports = append(imports, is...)

		case source.ItemChildModule:
			if it.Child == nil {
				continue
			}
			child, err := s.launchChild(it.Child, spawner, mapper, macros)
			if err != nil {
				return ModuleStepResult{}, err
			}
			if child != nil {
				children = append(children, *child)
			}

		case source.ItemUnknown:
			// dropped
		}

		if it.UseTree != nil && it.UseTree.Public {
			for _, d := range reexportDeclarations(it.UseTree, s.CrateName, mapper) {
				decls = append(decls, indexedDecl{idx, d})
			}
		}
	}

	sort.SliceStable(decls, func(i, j int) bool { return decls[i].index < decls[j].index })
	exports := make([]tidlast.ExportStatement, 0, len(decls))
	for _, d := range decls {
		exports = append(exports, tidlast.ExportStatement{Decl: d.decl})
	}

	data := ModuleStepResultData{
		Path:    s.Path,
		Imports: aggregateImports(imports, mapper),
		Exports: exports,
	}
	return ModuleStepResult{Data: data, Children: children}, nil
}

func (s *Step) launchChild(child *source.ChildModule, spawner Spawner, mapper *pathmap.Mapper, macros MacroChain) (*ModuleStepResult, error) {
	childPath := append(append([]string{}, s.Path...), child.Name)
	var childStep *Step
	if child.Inline {
		childStep = NewStep(childPath, child.Items, s.CrateName, nil)
	} else {
		if spawner == nil {
			return nil, nil
		}
		step, err := spawner.CreateStep(childPath)
		if err != nil {
			return nil, err
		}
		if step == nil {
			return nil, nil // discarded: #[cfg]-gated or otherwise absent
		}
		childStep = step
	}
	result, err := childStep.Launch(spawner, mapper, macros)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// aggregateImports groups ImportEntry records by sourcePath, dedupes idents,
// drops empty-sourcePath entries (names resolved within the current
// module), runs the remaining sourcePaths through mapper, and emits one
// ImportStatement per group with sorted idents.
func aggregateImports(entries []solve.ImportEntry, mapper *pathmap.Mapper) []tidlast.ImportStatement {
	groups := make(map[string]map[string]struct{})
	var order []string
	for _, e := range entries {
		if e.SourcePath == "" {
			continue
		}
		if _, ok := groups[e.SourcePath]; !ok {
			groups[e.SourcePath] = make(map[string]struct{})
			order = append(order, e.SourcePath)
		}
		groups[e.SourcePath][e.Ident] = struct{}{}
	}
	sort.Strings(order)

	out := make([]tidlast.ImportStatement, 0, len(order))
	for _, src := range order {
		idents := make([]string, 0, len(groups[src]))
		for id := range groups[src] {
			idents = append(idents, id)
		}
		sort.Strings(idents)

		mapped := src
		if mapper != nil {
			if m, ok := mapper.Get(src); ok {
				mapped = m
			}
		}
		out = append(out, tidlast.ImportStatement{
			Kind: tidlast.ImportList{Items: toIdents(idents)},
			Path: mapped,
		})
	}
	return out
}

func toIdents(names []string) []ident.Ident {
	out := make([]ident.Ident, len(names))
	for i, n := range names {
		out[i] = ident.Ident(n)
	}
	return out
}

// MacroChain is the macro solving context (empty by default): registered
// solvers may produce declarations + imports for a macro invocation.
// Unregistered macros are silently ignored (ok == false, no error).
type MacroChain interface {
	SolveMacro(m *source.MacroInvocation) (decls []tidlast.Declaration, imports []solve.ImportEntry, ok bool, err error)
}
