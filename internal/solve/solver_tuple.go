package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// tupleSolver is solver #1: empty tuple (Rust's unit `()`) maps to `null`;
// a non-empty tuple maps to a TupleType of its solved elements.
type tupleSolver struct{}

func (tupleSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	if info.Ty.Kind != source.TypeTuple {
		return ContinueResult[tidlast.TSType]()
	}
	if len(info.Ty.Elems) == 0 {
		return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.Null})
	}
	var imports []ImportEntry
	var constraints GenericConstraints
	elems := make([]tidlast.TSType, len(info.Ty.Elems))
	for i, e := range info.Ty.Elems {
		r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: e})
		if r.Kind != SolvedKind {
			return r
		}
		elems[i] = r.Value.Inner
		imports = append(imports, r.Value.Imports...)
		constraints = constraints.Merge(r.Value.Constraints)
	}
	return SolvedResult(Solved[tidlast.TSType]{
		Inner:       tidlast.TupleType{Elems: elems},
		Imports:     imports,
		Constraints: constraints,
	})
}
