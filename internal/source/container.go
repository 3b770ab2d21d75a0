package source

// StructStyle distinguishes the four shapes a Rust struct can take.
type StructStyle int

const (
	StyleUnit StructStyle = iota
	StyleNewtype
	StyleTuple
	StyleStruct
)

// Field is one field of a struct or a struct-style enum variant.
type Field struct {
	Name  string // empty for tuple/newtype fields
	Ty    *Type
	Attrs FieldAttrs
}

// TagKind is serde's four enum tagging disciplines.
type TagKind int

const (
	TagExternal TagKind = iota
	TagInternal
	TagAdjacent
	TagUntagged
)

// EnumTag carries the tag/content identifiers for Internal/Adjacent tagging.
type EnumTag struct {
	Kind    TagKind
	Tag     string // meaningful for Internal, Adjacent
	Content string // meaningful for Adjacent only
}

// Variant is one arm of an enum.
type Variant struct {
	Name       string
	Style      StructStyle // Unit/Newtype/Tuple/Struct — which shape this variant carries
	Fields     []Field
	RenameAll  string // container-level rename_all inherited, or variant-level override
	RenameThis string // per-variant #[serde(rename = "...")], empty if unset
}

// Container is a struct or enum, after the external serde-AST collaborator
// (spec.md §1) has reduced syn::DeriveInput into this shape.
type Container struct {
	Ident     string
	Generics  Generics
	RenameAll string // empty means no renaming

	// Struct-only.
	IsStruct bool
	Style    StructStyle
	Fields   []Field

	// Enum-only.
	IsEnum   bool
	Tag      EnumTag
	Variants []Variant
}

// TypeAlias is `type Ident<params> = Ty;` in the source language.
type TypeAlias struct {
	Ident    string
	Generics Generics
	Ty       *Type
}
