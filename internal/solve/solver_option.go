package solve

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// optionSolver is solver #6: `std::option::Option<T>` maps to `T | null`.
type optionSolver struct{}

func (optionSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok || p != "std::option::Option" {
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
	return SolvedResult(Solved[tidlast.TSType]{
		Inner:       tidlast.UnionType{Types: []tidlast.TSType{r.Value.Inner, tidlast.Predefined{Kind: tidlast.Null}}},
		Imports:     r.Value.Imports,
		Constraints: r.Value.Constraints,
	})
}

// isOptionType reports whether t is the Option path, used by the
// skip_serializing_if solver.
func isOptionType(t *source.Type) bool {
	p, ok := fullPath(t)
	return ok && p == "std::option::Option"
}

// optionInner returns Option<T>'s T, or nil if not applicable.
func optionInner(t *source.Type) *source.Type {
	if !isOptionType(t) {
		return nil
	}
	args := typeArgs(lastSegment(t))
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
