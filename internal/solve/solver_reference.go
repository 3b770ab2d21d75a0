package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// referenceSolver is solver #2: a Rust `&T` is a no-op at the JSON level, so
// it passes the inner type through unchanged.
type referenceSolver struct{}

func (referenceSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	if info.Ty.Kind != source.TypeReference {
		return ContinueResult[tidlast.TSType]()
	}
	return ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: info.Ty.Inner})
}
