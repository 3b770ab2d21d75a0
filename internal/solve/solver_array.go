package solve

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// arraySolver is solver #3: matches Array/Slice only; recurses on the
// element, requires the result be a primary (non-union/intersection) type.
type arraySolver struct{}

func (arraySolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	if info.Ty.Kind != source.TypeArray && info.Ty.Kind != source.TypeSlice {
		return ContinueResult[tidlast.TSType]()
	}
	r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: info.Ty.Elem})
	if r.Kind != SolvedKind {
		return r
	}
	if !isPrimaryType(r.Value.Inner) {
		return ErrorResult[tidlast.TSType](errkind.UnexpectedType{Shape: r.Value.Inner.String()})
	}
	return SolvedResult(Solved[tidlast.TSType]{
		Inner:       tidlast.ArrayType{Elem: r.Value.Inner},
		Imports:     r.Value.Imports,
		Constraints: r.Value.Constraints,
	})
}

// isPrimaryType reports whether t is a "primary type" in the reference
// grammar's sense: anything except Union/Intersection/Parenthesized.
func isPrimaryType(t tidlast.TSType) bool {
	switch t.(type) {
	case tidlast.UnionType, tidlast.IntersectionType, tidlast.ParenthesizedType:
		return false
	default:
		return true
	}
}
