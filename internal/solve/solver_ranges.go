package solve

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// rangesSolver is solver #8: `std::ops::{Range, RangeInclusive}` map to
// `{ start: T, end: T }`, reusing the single solved generic for both bounds.
type rangesSolver struct{}

var rangePaths = map[string]bool{
	"std::ops::Range":          true,
	"std::ops::RangeInclusive": true,
}

func (rangesSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok || !rangePaths[p] {
		return ContinueResult[tidlast.TSType]()
	}
	args := typeArgs(lastSegment(info.Ty))
	if len(args) == 0 {
		return ErrorResult[tidlast.TSType](errkind.EmptyGenerics{Type: p})
	}
	r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: args[0]})
	if r.Kind != SolvedKind {
		return r
	}
	body := tidlast.TypeBody{Members: []tidlast.PropertySignature{
		{Name: tidlast.PropertyNameOf("start"), Inner: r.Value.Inner},
		{Name: tidlast.PropertyNameOf("end"), Inner: r.Value.Inner},
	}}
	return SolvedResult(Solved[tidlast.TSType]{
		Inner:       tidlast.ObjectType{Body: body},
		Imports:     r.Value.Imports,
		Constraints: r.Value.Constraints,
	})
}
