// Package importctx tracks, per module, the mapping from a bare identifier
// in scope to its canonical path: explicit imports, locally declared items,
// and a synthesized prelude.
package importctx

import "strings"

// Prelude is the fixed, shared set of implicitly-available names and the
// module path they resolve to.
var Prelude = map[string][]string{
	"Option": {"std", "option"},
	"Result": {"std", "result"},
	"Box":    {"std", "boxed"},
	"String": {"std", "string"},
	"Vec":    {"std", "vec"},
}

// Context is the per-module {imported, scoped, prelude} lookup table.
type Context struct {
	imported map[string][]string
	scoped   map[string][]string
	prelude  map[string][]string
	crate    string
}

// New builds a Context for a module belonging to crate crateName.
func New(crateName string) *Context {
	return &Context{
		imported: make(map[string][]string),
		scoped:   make(map[string][]string),
		prelude:  Prelude,
		crate:    crateName,
	}
}

// Declare registers a top-level struct/enum/type-alias identifier as
// resolving within the current module (empty prefix, no import needed).
func (c *Context) Declare(name string) {
	c.scoped[name] = []string{}
}

// UseTree is the shape the front-end parser exposes for a `use` item.
// Exactly one of Name/Rename/Group/Glob is set, matching Rust's UseTree sum.
type UseTree struct {
	// Path descends one segment and recurses into Next.
	PathSegment string
	Next        *UseTree

	// Name is a leaf: bring `Name` into scope under its own name.
	Name string

	// Rename is a leaf: bring `Orig` into scope under `As`.
	RenameOrig string
	RenameAs   string

	// Group recurses into each item with the same accumulated prefix.
	Group []*UseTree

	// Glob marks a `use path::*;` — unsupported, logged and skipped.
	Glob bool
}

// AddUseTree walks a single top-level use-tree and inserts every leaf it
// finds into c.imported.
func (c *Context) AddUseTree(t *UseTree, onGlobSkipped func(prefix []string)) {
	c.addUseTree(t, nil, onGlobSkipped)
}

func (c *Context) addUseTree(t *UseTree, prefix []string, onGlobSkipped func([]string)) {
	if t == nil {
		return
	}
	switch {
	case t.PathSegment != "":
		seg := t.PathSegment
		if seg == "crate" {
			seg = c.crate
		}
		c.addUseTree(t.Next, append(append([]string{}, prefix...), seg), onGlobSkipped)
	case t.Name != "":
		c.imported[t.Name] = append([]string{}, prefix...)
	case t.RenameOrig != "" || t.RenameAs != "":
		// Per SPEC_FULL.md §9 open-questions: append the original name as the
		// final segment rather than dropping it.
		full := append(append([]string{}, prefix...), t.RenameOrig)
		c.imported[t.RenameAs] = full
	case len(t.Group) > 0:
		for _, item := range t.Group {
			c.addUseTree(item, prefix, onGlobSkipped)
		}
	case t.Glob:
		if onGlobSkipped != nil {
			onGlobSkipped(prefix)
		}
	}
}

// Resolve looks up the first segment of a path against imported, then
// scoped, then prelude. On a hit it returns the canonical path (stored
// prefix + original segments); on a miss it returns (nil, false) — a miss is
// not an error, the solver chain handles it.
func (c *Context) Resolve(segments []string) ([]string, bool) {
	if len(segments) == 0 {
		return nil, false
	}
	head := segments[0]
	if prefix, ok := c.imported[head]; ok {
		return joinPrefix(prefix, segments), true
	}
	if prefix, ok := c.scoped[head]; ok {
		return joinPrefix(prefix, segments), true
	}
	if prefix, ok := c.prelude[head]; ok {
		return joinPrefix(prefix, segments), true
	}
	return nil, false
}

// joinPrefix prepends the stored import prefix to the original path
// segments (head included), producing the canonical fully-qualified path.
func joinPrefix(prefix, segments []string) []string {
	out := make([]string, 0, len(prefix)+len(segments))
	out = append(out, prefix...)
	out = append(out, segments...)
	return out
}

// JoinModulePath renders a path's non-final segments as a "::"-joined
// sourcePath, empty if there are none (a bare, unqualified identifier).
func JoinModulePath(segments []string) string {
	if len(segments) <= 1 {
		return ""
	}
	return strings.Join(segments[:len(segments)-1], "::")
}
