// Package source models the front-end AST shapes this pipeline consumes:
// Rust-like types, generics, and field attributes. Parsing real Rust source
// into these shapes is an external collaborator (spec.md §1); this package
// only defines the data the solver chain and synthesizer operate on.
package source

// PathArg is one generic argument of a path segment: either a nested Type or
// a lifetime/const-generic marker. Solvers read generic arguments through
// typeArgs, which skips these markers; no error is raised for them.
type PathArg struct {
	Type        *Type
	IsLifetime  bool
	IsConstGen  bool
	Raw         string // textual form, for lifetime/const-generic diagnostics
}

// PathSegment is one `::`-separated component of a Path type, e.g. `Vec` in
// `std::vec::Vec<T>`.
type PathSegment struct {
	Ident string
	Args  []PathArg // generic arguments attached to this segment, if any
}

// Type is the tagged sum of source-language types this pipeline solves.
type Type struct {
	Kind TypeKind

	// Kind == TypePath
	Path []PathSegment

	// Kind == TypeReference
	Inner *Type

	// Kind == TypeArray
	Elem *Type
	Len  int // length, only meaningful for Array (Slice carries no length)

	// Kind == TypeTuple
	Elems []*Type
}

// TypeKind discriminates Type.
type TypeKind int

const (
	TypePath TypeKind = iota
	TypeReference
	TypeArray
	TypeSlice
	TypeTuple
)

// GenericParam is one type parameter of an enclosing container (lifetimes
// and const generics are filtered out before reaching the solver chain, but
// are represented here so extraction logic can reject them explicitly).
type GenericParam struct {
	Name       string
	IsType     bool
	IsLifetime bool
	IsConst    bool
}

// Generics is the generic-parameter list of the container surrounding a
// type being solved.
type Generics struct {
	Params []GenericParam
}

// TypeParamNames returns the subset of Params that are type parameters, in
// source order.
func (g Generics) TypeParamNames() []string {
	var out []string
	for _, p := range g.Params {
		if p.IsType {
			out = append(out, p.Name)
		}
	}
	return out
}

// TypeInfo is the type to solve together with its enclosing generics.
type TypeInfo struct {
	Generics Generics
	Ty       *Type
}

// FieldAttrs carries the serde metadata attached to one struct field.
type FieldAttrs struct {
	Rename            string // empty means no rename
	SkipSerializing   bool
	SkipSerializingIf string // the predicate path, e.g. "Option::is_none"; empty means unset
	Flatten           bool
}

// MemberInfo is one field of a container being solved.
type MemberInfo struct {
	Generics   Generics
	Ty         *Type
	FieldName  string
	FieldAttrs FieldAttrs
}

// AsTypeInfo drops the field-specific metadata, producing the TypeInfo for
// this member's bare type.
func (m MemberInfo) AsTypeInfo() TypeInfo {
	return TypeInfo{Generics: m.Generics, Ty: m.Ty}
}
