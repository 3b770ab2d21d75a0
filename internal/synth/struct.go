package synth

import (
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// synthesizer owns a solve.Context and turns containers/type-aliases into
// declarations.
type Synthesizer struct {
	Ctx *solve.Context
}

// New builds a Synthesizer around an already-constructed solver context.
func New(ctx *solve.Context) *Synthesizer { return &Synthesizer{Ctx: ctx} }

// result bundles a synthesizer's output the way every export_* function in
// the reference implementation returns: declarations, plus any imports
// collected while producing them (constraints are consumed internally, not
// exposed past the container boundary).
type result struct {
	Decls   []tidlast.Declaration
	Imports []solve.ImportEntry
}

// ExportContainer dispatches a struct or enum container to its synthesis
// logic. Unit structs legitimately produce zero declarations.
func (s *Synthesizer) ExportContainer(c *source.Container) ([]tidlast.Declaration, []solve.ImportEntry, error) {
	if c.IsStruct {
		r, err := s.exportStruct(c)
		if err != nil {
			return nil, nil, err
		}
		return r.Decls, r.Imports, nil
	}
	r, err := s.exportEnum(c)
	if err != nil {
		return nil, nil, err
	}
	return r.Decls, r.Imports, nil
}

func (s *Synthesizer) exportStruct(c *source.Container) (result, error) {
	switch c.Style {
	case source.StyleUnit:
		return result{}, nil
	case source.StyleNewtype:
		return s.exportNewtypeStruct(c)
	case source.StyleTuple:
		return s.exportTupleStruct(c)
	default:
		return s.exportNamedStruct(c)
	}
}

func (s *Synthesizer) exportNewtypeStruct(c *source.Container) (result, error) {
	field := c.Fields[0]
	r := s.Ctx.SolveType(source.TypeInfo{Generics: c.Generics, Ty: field.Ty})
	if r.Kind == solve.ErrorKind {
		return result{}, r.Err
	}
	tp := extractTypeParameters(c.Generics)
	applyGenericConstraints(tp, r.Value.Constraints)
	decl := tidlast.TypeAliasDeclaration{Ident: mustIdent(c.Ident), TypeParams: tp, Inner: r.Value.Inner}
	return result{Decls: []tidlast.Declaration{decl}, Imports: importEntries(r.Value.Imports)}, nil
}

func (s *Synthesizer) exportTupleStruct(c *source.Container) (result, error) {
	elems := make([]tidlast.TSType, len(c.Fields))
	var imports []solve.ImportEntry
	constraints := solve.GenericConstraints{}
	for i, f := range c.Fields {
		r := s.Ctx.SolveType(source.TypeInfo{Generics: c.Generics, Ty: f.Ty})
		if r.Kind == solve.ErrorKind {
			return result{}, r.Err
		}
		elems[i] = r.Value.Inner
		imports = append(imports, r.Value.Imports...)
		constraints = constraints.Merge(r.Value.Constraints)
	}
	tp := extractTypeParameters(c.Generics)
	applyGenericConstraints(tp, constraints)
	decl := tidlast.TypeAliasDeclaration{Ident: mustIdent(c.Ident), TypeParams: tp, Inner: tidlast.TupleType{Elems: elems}}
	return result{Decls: []tidlast.Declaration{decl}, Imports: importEntries(imports)}, nil
}

func (s *Synthesizer) exportNamedStruct(c *source.Container) (result, error) {
	members, imports, constraints, err := s.solveFields(c.Generics, c.Fields, c.RenameAll)
	if err != nil {
		return result{}, err
	}
	tp := extractTypeParameters(c.Generics)
	applyGenericConstraints(tp, constraints)
	decl := tidlast.InterfaceDeclaration{Ident: mustIdent(c.Ident), TypeParams: tp, Body: tidlast.TypeBody{Members: members}}
	return result{Decls: []tidlast.Declaration{decl}, Imports: importEntries(imports)}, nil
}

// solveFields solves every non-skipped field of a struct/struct-variant,
// returning its PropertySignatures in source order plus aggregated
// side-effects.
func (s *Synthesizer) solveFields(g source.Generics, fields []source.Field, renameAll string) ([]tidlast.PropertySignature, []solve.ImportEntry, solve.GenericConstraints, error) {
	var members []tidlast.PropertySignature
	var imports []solve.ImportEntry
	constraints := solve.GenericConstraints{}
	for _, f := range fields {
		if f.Attrs.SkipSerializing {
			continue
		}
		effectiveName := renameField(f.Name, f.Attrs.Rename, renameAll)
		attrs := f.Attrs
		attrs.Rename = effectiveName
		if attrs.Flatten {
			return nil, nil, nil, unsolvedFlattenedField(f.Name)
		}
		info := source.MemberInfo{Generics: g, Ty: f.Ty, FieldName: f.Name, FieldAttrs: attrs}
		r := s.Ctx.SolveMember(info)
		if r.Kind == solve.ErrorKind {
			return nil, nil, nil, r.Err
		}
		members = append(members, r.Value.Inner)
		imports = append(imports, r.Value.Imports...)
		constraints = constraints.Merge(r.Value.Constraints)
	}
	return members, imports, constraints, nil
}
