package solve

import (
	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// genericsSolver is solver #7: a bare Path whose last segment matches one of
// the enclosing container's type parameters resolves to a bare
// TypeReference with no import entry.
type genericsSolver struct{}

func (genericsSolver) SolveAsType(_ *Context, info source.TypeInfo) Result[tidlast.TSType] {
	seg := lastSegment(info.Ty)
	if seg == nil {
		return ContinueResult[tidlast.TSType]()
	}
	for _, name := range info.Generics.TypeParamNames() {
		if name == seg.Ident {
			id, err := ident.Validate(seg.Ident, ident.Lax)
			if err != nil {
				return ErrorResult[tidlast.TSType](err)
			}
			return Ok[tidlast.TSType](tidlast.TypeReference{Name: id})
		}
	}
	return ContinueResult[tidlast.TSType]()
}
