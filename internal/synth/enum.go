package synth

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

func (s *Synthesizer) exportEnum(c *source.Container) (result, error) {
	var union []tidlast.TSType
	var imports []solve.ImportEntry
	constraints := solve.GenericConstraints{}

	for _, v := range c.Variants {
		name := variantName(v, c.RenameAll)
		var t tidlast.TSType
		var err error
		switch c.Tag.Kind {
		case source.TagExternal:
			t, err = s.externalVariant(c.Generics, v, name, &imports, &constraints)
		case source.TagInternal:
			t, err = s.internalVariant(c.Generics, v, name, c.Tag.Tag, &imports, &constraints)
		case source.TagAdjacent:
			t, err = s.adjacentVariant(c.Generics, v, name, c.Tag.Tag, c.Tag.Content, &imports, &constraints)
		default:
			t, err = s.untaggedVariant(c.Generics, v, &imports, &constraints)
		}
		if err != nil {
			return result{}, err
		}
		union = append(union, t)
	}

	tp := extractTypeParameters(c.Generics)
	applyGenericConstraints(tp, constraints)
	decl := tidlast.TypeAliasDeclaration{
		Ident:      mustIdent(c.Ident),
		TypeParams: tp,
		Inner:      tidlast.UnionType{Types: union},
	}
	return result{Decls: []tidlast.Declaration{decl}, Imports: importEntries(imports)}, nil
}

func variantName(v source.Variant, containerRenameAll string) string {
	if v.RenameThis != "" {
		return v.RenameThis
	}
	return applyRenameAll(v.Name, containerRenameAll)
}

// --- External tagging ---

func (s *Synthesizer) externalVariant(g source.Generics, v source.Variant, name string, imports *[]solve.ImportEntry, constraints *solve.GenericConstraints) (tidlast.TSType, error) {
	switch v.Style {
	case source.StyleUnit:
		return tidlast.LiteralType{Kind: tidlast.LiteralString, Str: name}, nil
	case source.StyleNewtype:
		r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: v.Fields[0].Ty})
		if r.Kind == solve.ErrorKind {
			return nil, r.Err
		}
		*imports = append(*imports, r.Value.Imports...)
		*constraints = constraints.Merge(r.Value.Constraints)
		return singleKeyObject(name, r.Value.Inner), nil
	case source.StyleTuple:
		elems := make([]tidlast.TSType, len(v.Fields))
		for i, f := range v.Fields {
			r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: f.Ty})
			if r.Kind == solve.ErrorKind {
				return nil, r.Err
			}
			elems[i] = r.Value.Inner
			*imports = append(*imports, r.Value.Imports...)
			*constraints = constraints.Merge(r.Value.Constraints)
		}
		return singleKeyObject(name, tidlast.TupleType{Elems: elems}), nil
	default: // StyleStruct
		members, memberImports, memberConstraints, err := s.solveFields(g, v.Fields, v.RenameAll)
		if err != nil {
			return nil, err
		}
		*imports = append(*imports, memberImports...)
		*constraints = constraints.Merge(memberConstraints)
		inner := tidlast.ObjectType{Body: tidlast.TypeBody{Members: members}}
		return singleKeyObject(name, inner), nil
	}
}

// singleKeyObject wraps inner as the sole (always string-literal-keyed)
// member of an object, matching externally-tagged serde's JSON shape.
func singleKeyObject(key string, inner tidlast.TSType) tidlast.TSType {
	return tidlast.ObjectType{Body: tidlast.TypeBody{Members: []tidlast.PropertySignature{
		{Name: tidlast.PropertyName{IsString: true, Raw: key}, Inner: inner},
	}}}
}

// --- Internal tagging ---

func (s *Synthesizer) internalVariant(g source.Generics, v source.Variant, name, tag string, imports *[]solve.ImportEntry, constraints *solve.GenericConstraints) (tidlast.TSType, error) {
	tagObj := tagOnlyObject(tag, name)

	switch v.Style {
	case source.StyleTuple:
		return nil, errkind.InvalidSerdeRepresentation{Path: v.Name + " (tuple variant under internal tagging)"}
	case source.StyleUnit:
		return tidlast.ParenthesizedType{Inner: tidlast.IntersectionType{Types: []tidlast.TSType{tagObj}}}, nil
	case source.StyleNewtype:
		info := source.MemberInfo{Generics: g, Ty: v.Fields[0].Ty, FieldName: v.Fields[0].Name}
		r := s.Ctx.SolveMember(info)
		if r.Kind == solve.ErrorKind {
			return nil, r.Err
		}
		if !acceptsInternalPayload(r.Value.Inner.Inner) {
			return nil, errkind.InvalidSerdeRepresentation{Path: v.Name + " (internally tagged newtype must solve to an object or reference)"}
		}
		*imports = append(*imports, r.Value.Imports...)
		*constraints = constraints.Merge(r.Value.Constraints)
		return tidlast.ParenthesizedType{Inner: tidlast.IntersectionType{Types: []tidlast.TSType{tagObj, r.Value.Inner.Inner}}}, nil
	default: // StyleStruct
		members, memberImports, memberConstraints, err := s.solveFields(g, v.Fields, v.RenameAll)
		if err != nil {
			return nil, err
		}
		*imports = append(*imports, memberImports...)
		*constraints = constraints.Merge(memberConstraints)
		body := tidlast.ObjectType{Body: tidlast.TypeBody{Members: members}}
		return tidlast.ParenthesizedType{Inner: tidlast.IntersectionType{Types: []tidlast.TSType{tagObj, body}}}, nil
	}
}

func tagOnlyObject(tagKey, variantName string) tidlast.ObjectType {
	return tidlast.ObjectType{Body: tidlast.TypeBody{Members: []tidlast.PropertySignature{
		{Name: tidlast.PropertyNameOf(tagKey), Inner: tidlast.LiteralType{Kind: tidlast.LiteralString, Str: variantName}},
	}}}
}

// acceptsInternalPayload is the authoritative "object- and reference-typed
// payloads only" rule from SPEC_FULL.md §9.
func acceptsInternalPayload(t tidlast.TSType) bool {
	switch t.(type) {
	case tidlast.ObjectType, tidlast.TypeReference:
		return true
	default:
		return false
	}
}

// --- Adjacent tagging ---

func (s *Synthesizer) adjacentVariant(g source.Generics, v source.Variant, name, tag, content string, imports *[]solve.ImportEntry, constraints *solve.GenericConstraints) (tidlast.TSType, error) {
	tagMember := tidlast.PropertySignature{
		Name:  tidlast.PropertyNameOf(tag),
		Inner: tidlast.LiteralType{Kind: tidlast.LiteralString, Str: name},
	}
	members := []tidlast.PropertySignature{tagMember}

	switch v.Style {
	case source.StyleUnit:
		// no content member
	case source.StyleNewtype:
		r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: v.Fields[0].Ty})
		if r.Kind == solve.ErrorKind {
			return nil, r.Err
		}
		*imports = append(*imports, r.Value.Imports...)
		*constraints = constraints.Merge(r.Value.Constraints)
		members = append(members, tidlast.PropertySignature{Name: tidlast.PropertyNameOf(content), Inner: r.Value.Inner})
	case source.StyleTuple:
		elems := make([]tidlast.TSType, len(v.Fields))
		for i, f := range v.Fields {
			r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: f.Ty})
			if r.Kind == solve.ErrorKind {
				return nil, r.Err
			}
			elems[i] = r.Value.Inner
			*imports = append(*imports, r.Value.Imports...)
			*constraints = constraints.Merge(r.Value.Constraints)
		}
		members = append(members, tidlast.PropertySignature{Name: tidlast.PropertyNameOf(content), Inner: tidlast.TupleType{Elems: elems}})
	default: // StyleStruct
		fieldMembers, memberImports, memberConstraints, err := s.solveFields(g, v.Fields, v.RenameAll)
		if err != nil {
			return nil, err
		}
		*imports = append(*imports, memberImports...)
		*constraints = constraints.Merge(memberConstraints)
		inner := tidlast.ObjectType{Body: tidlast.TypeBody{Members: fieldMembers}}
		members = append(members, tidlast.PropertySignature{Name: tidlast.PropertyNameOf(content), Inner: inner})
	}

	return tidlast.ObjectType{Body: tidlast.TypeBody{Members: members}}, nil
}

// --- Untagged ---

func (s *Synthesizer) untaggedVariant(g source.Generics, v source.Variant, imports *[]solve.ImportEntry, constraints *solve.GenericConstraints) (tidlast.TSType, error) {
	switch v.Style {
	case source.StyleUnit:
		return tidlast.Predefined{Kind: tidlast.Null}, nil
	case source.StyleNewtype:
		r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: v.Fields[0].Ty})
		if r.Kind == solve.ErrorKind {
			return nil, r.Err
		}
		*imports = append(*imports, r.Value.Imports...)
		*constraints = constraints.Merge(r.Value.Constraints)
		return r.Value.Inner, nil
	case source.StyleTuple:
		elems := make([]tidlast.TSType, len(v.Fields))
		for i, f := range v.Fields {
			r := s.Ctx.SolveType(source.TypeInfo{Generics: g, Ty: f.Ty})
			if r.Kind == solve.ErrorKind {
				return nil, r.Err
			}
			elems[i] = r.Value.Inner
			*imports = append(*imports, r.Value.Imports...)
			*constraints = constraints.Merge(r.Value.Constraints)
		}
		return tidlast.TupleType{Elems: elems}, nil
	default: // StyleStruct
		members, memberImports, memberConstraints, err := s.solveFields(g, v.Fields, v.RenameAll)
		if err != nil {
			return nil, err
		}
		*imports = append(*imports, memberImports...)
		*constraints = constraints.Merge(memberConstraints)
		return tidlast.ObjectType{Body: tidlast.TypeBody{Members: members}}, nil
	}
}
