package synth

import (
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// ExportTypeAlias turns a `type Ident<params> = Ty;` source declaration into
// a TypeAliasDeclaration, attaching any generic constraints discovered
// while solving its right-hand side.
func ExportTypeAlias(s *Synthesizer, a *source.TypeAlias) (tidlast.Declaration, []solve.ImportEntry, error) {
	r := s.Ctx.SolveType(source.TypeInfo{Generics: a.Generics, Ty: a.Ty})
	if r.Kind == solve.ErrorKind {
		return nil, nil, r.Err
	}
	tp := extractTypeParameters(a.Generics)
	applyGenericConstraints(tp, r.Value.Constraints)
	decl := tidlast.TypeAliasDeclaration{Ident: mustIdent(a.Ident), TypeParams: tp, Inner: r.Value.Inner}
	return decl, importEntries(r.Value.Imports), nil
}
