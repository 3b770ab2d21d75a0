package tidlast

import (
	"strings"

	"github.com/sunholo/typebind/internal/ident"
)

// TypeParameter is one entry of a declaration's `<A, B extends C>` list.
type TypeParameter struct {
	Name       ident.Ident
	Constraint TSType // nil if unconstrained
}

func (p TypeParameter) String() string {
	if p.Constraint == nil {
		return string(p.Name)
	}
	return string(p.Name) + " extends " + p.Constraint.String()
}

// TypeParameters is the full `<...>` list, or nil for a non-generic
// declaration (the angle brackets are entirely omitted, not printed empty).
type TypeParameters struct{ Params []TypeParameter }

func (t *TypeParameters) String() string {
	if t == nil || len(t.Params) == 0 {
		return ""
	}
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// Declaration is any top-level TIDL declaration.
type Declaration interface {
	declaration()
	String() string
}

// InterfaceDeclaration is `interface Name<params> extends E { body }`.
type InterfaceDeclaration struct {
	Ident      ident.Ident
	TypeParams *TypeParameters
	Extends    []TSType // empty means no extends clause
	Body       TypeBody
}

func (InterfaceDeclaration) declaration() {}
func (d InterfaceDeclaration) String() string {
	extends := ""
	if len(d.Extends) > 0 {
		parts := make([]string, len(d.Extends))
		for i, e := range d.Extends {
			parts[i] = e.String()
		}
		extends = "extends " + strings.Join(parts, ", ") + " "
	}
	return "interface " + string(d.Ident) + d.TypeParams.String() + " " + extends + "{\n\t" + d.Body.String() + "\n}"
}

// TypeAliasDeclaration is `type Name<params> = inner;`.
type TypeAliasDeclaration struct {
	Ident      ident.Ident
	TypeParams *TypeParameters
	Inner      TSType
}

func (TypeAliasDeclaration) declaration() {}
func (d TypeAliasDeclaration) String() string {
	return "type " + string(d.Ident) + d.TypeParams.String() + " = " + d.Inner.String() + ";"
}

// ConstEnumVariant is `Ident = value`.
type ConstEnumVariant struct {
	Ident ident.Ident
	Value LiteralType
}

func (v ConstEnumVariant) String() string {
	return string(v.Ident) + " = " + v.Value.String()
}

// ConstEnumDeclaration is `const enum Name { variants }`.
type ConstEnumDeclaration struct {
	Ident    ident.Ident
	Variants []ConstEnumVariant
}

func (ConstEnumDeclaration) declaration() {}
func (d ConstEnumDeclaration) String() string {
	parts := make([]string, len(d.Variants))
	for i, v := range d.Variants {
		parts[i] = v.String()
	}
	return "const enum " + string(d.Ident) + " { " + strings.Join(parts, ", ") + " }"
}

// ReexportDeclaration is `export { A, B } from "path";` or, when Items is
// empty, `export * from "path";`. Supplemental feature (see SPEC_FULL.md
// §11), grounded on declarations/reexport.rs.
type ReexportDeclaration struct {
	Items []ident.Ident
	Path  string
}

func (ReexportDeclaration) declaration() {}
func (d ReexportDeclaration) String() string {
	if len(d.Items) == 0 {
		return `export * from "` + d.Path + `";`
	}
	parts := make([]string, len(d.Items))
	for i, it := range d.Items {
		parts[i] = string(it)
	}
	return "export { " + strings.Join(parts, ", ") + ` } from "` + d.Path + `";`
}

// ExportStatement wraps a Declaration with a leading "export ".
// ReexportDeclaration already renders its own "export" keyword, so it is
// never wrapped.
type ExportStatement struct{ Decl Declaration }

func (e ExportStatement) String() string {
	if _, ok := e.Decl.(ReexportDeclaration); ok {
		return e.Decl.String()
	}
	return "export " + e.Decl.String()
}
