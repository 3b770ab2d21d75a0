// Package tidlast is the in-memory model of TIDL (the TypeScript Interface
// Description Language subset this pipeline emits: interfaces, type aliases,
// const enums, imports, exports) plus its deterministic printer.
package tidlast

import (
	"strings"

	"github.com/sunholo/typebind/internal/ident"
)

// TSType is any TIDL type expression.
type TSType interface {
	tsType()
	String() string
}

// PredefinedKind enumerates the built-in TIDL type keywords.
type PredefinedKind int

const (
	Any PredefinedKind = iota
	Number
	Boolean
	String
	Unknown
	Null
	Never
)

func (k PredefinedKind) String() string {
	switch k {
	case Any:
		return "any"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Unknown:
		return "unknown"
	case Null:
		return "null"
	case Never:
		return "never"
	default:
		return "any"
	}
}

// Predefined is one of TIDL's built-in type keywords.
type Predefined struct{ Kind PredefinedKind }

func (Predefined) tsType()           {}
func (p Predefined) String() string  { return p.Kind.String() }

// TypeArguments is the `<T1, T2, ...>` suffix of a TypeReference.
type TypeArguments struct{ Args []TSType }

func (a TypeArguments) String() string {
	if len(a.Args) == 0 {
		return ""
	}
	parts := make([]string, len(a.Args))
	for i, t := range a.Args {
		parts[i] = t.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// TypeReference is a named type, optionally applied to type arguments.
type TypeReference struct {
	Name ident.Ident
	Args *TypeArguments // nil means no angle-bracket suffix at all
}

func (TypeReference) tsType() {}
func (r TypeReference) String() string {
	if r.Args == nil {
		return string(r.Name)
	}
	return string(r.Name) + r.Args.String()
}

// ArrayType is `T[]`.
type ArrayType struct{ Elem TSType }

func (ArrayType) tsType()          {}
func (a ArrayType) String() string { return a.Elem.String() + "[]" }

// TupleType is `[ T0, T1, ... ]`.
type TupleType struct{ Elems []TSType }

func (TupleType) tsType() {}
func (t TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

// LiteralKind distinguishes the three literal-type flavors.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumeric
	LiteralBoolean
)

// LiteralType is a single-value literal type, e.g. `"Variant"` or `42`.
type LiteralType struct {
	Kind LiteralKind
	Str  string  // valid when Kind == LiteralString; the raw (unescaped) value
	Num  float64 // valid when Kind == LiteralNumeric
	Bool bool    // valid when Kind == LiteralBoolean
}

func (LiteralType) tsType() {}
func (l LiteralType) String() string {
	switch l.Kind {
	case LiteralString:
		return ident.EscapeString(l.Str)
	case LiteralNumeric:
		return formatNumeric(l.Num)
	case LiteralBoolean:
		if l.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// UnionType is `T0 | T1 | ...`.
type UnionType struct{ Types []TSType }

func (UnionType) tsType() {}
func (u UnionType) String() string {
	parts := make([]string, len(u.Types))
	for i, t := range u.Types {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// IntersectionType is `T0 & T1 & ...`.
type IntersectionType struct{ Types []TSType }

func (IntersectionType) tsType() {}
func (i IntersectionType) String() string {
	parts := make([]string, len(i.Types))
	for j, t := range i.Types {
		parts[j] = t.String()
	}
	return strings.Join(parts, " & ")
}

// ParenthesizedType is `( T )`.
type ParenthesizedType struct{ Inner TSType }

func (ParenthesizedType) tsType()          {}
func (p ParenthesizedType) String() string { return "( " + p.Inner.String() + " )" }

// PropertyName is either a bare identifier or an escaped string literal,
// chosen by PropertyNameOf at construction time.
type PropertyName struct {
	IsString bool
	Ident    ident.Ident
	Raw      string // valid when IsString; the unescaped source string
}

func (p PropertyName) String() string {
	if p.IsString {
		return ident.EscapeString(p.Raw)
	}
	return string(p.Ident)
}

// PropertyNameOf builds the property-name form of s: an identifier if s
// passes lax validation, otherwise an escaped string literal.
func PropertyNameOf(s string) PropertyName {
	if id, err := ident.Validate(s, ident.Lax); err == nil {
		return PropertyName{Ident: id}
	}
	return PropertyName{IsString: true, Raw: s}
}

// PropertySignature is one member of an ObjectType: `name?: type`.
type PropertySignature struct {
	Name     PropertyName
	Optional bool
	Inner    TSType
}

func (m PropertySignature) String() string {
	opt := ""
	if m.Optional {
		opt = "?"
	}
	return m.Name.String() + opt + ": " + m.Inner.String()
}

// TypeBody is the member list of an ObjectType, rendered one per line.
type TypeBody struct{ Members []PropertySignature }

func (b TypeBody) String() string {
	parts := make([]string, len(b.Members))
	for i, m := range b.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",\n\t")
}

// ObjectType is `{ members }`, rendered across lines matching the reference
// printer's indentation exactly.
type ObjectType struct{ Body TypeBody }

func (ObjectType) tsType() {}
func (o ObjectType) String() string {
	return "{\n\t" + o.Body.String() + "\n}"
}

func formatNumeric(f float64) string {
	s := trimFloat(f)
	return s
}
