package source

// ItemKind discriminates Item — the front-end AST's module-level items.
type ItemKind int

const (
	ItemContainer ItemKind = iota
	ItemTypeAlias
	ItemChildModule
	ItemMacro
	ItemUnknown
)

// ChildModule is a `mod name { ... }` (inline) or `mod name;` (external
// reference) declaration.
type ChildModule struct {
	Name   string
	Inline bool
	Items  []Item // populated only when Inline
}

// MacroInvocation is an opaque macro call at module scope; the macro
// solving context (registered externally, empty by default) is the only
// consumer of Raw.
type MacroInvocation struct {
	Name string
	Raw  string
}

// Item is one member of a module's item list, tagged with which shape it
// carries. ItemUnknown items are dropped during step classification.
type Item struct {
	Kind ItemKind

	Container *Container
	Alias     *TypeAlias
	Child     *ChildModule
	Macro     *MacroInvocation

	// UseTree is non-nil for `use` items, which contribute to the module's
	// import context rather than being classified with the other kinds.
	UseTree *UseTreeItem
}

// UseTreeItem is a top-level `use` statement's tree, kept separate from the
// importctx package's UseTree shape to avoid a source->importctx import
// cycle; the step builder translates between them.
type UseTreeItem struct {
	PathSegment string
	Next        *UseTreeItem
	Name        string
	RenameOrig  string
	RenameAs    string
	Group       []*UseTreeItem
	Glob        bool

	// Public marks a top-level `pub use ...;` rather than a private `use
	// ...;`. Only the top-level node of a use-tree carries this; it is
	// meaningless on an inner PathSegment/Group node. A public use-tree both
	// imports its leaves into the module's scope and synthesizes a
	// ReexportDeclaration for them.
	Public bool
}
