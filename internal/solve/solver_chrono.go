package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// chronoSolver is solver #9: every chrono date/time type maps unconditionally
// to `string`, ignoring any generic arguments.
type chronoSolver struct{}

var chronoPaths = map[string]bool{
	"chrono::Date":          true,
	"chrono::DateTime":      true,
	"chrono::NaiveDate":     true,
	"chrono::NaiveDateTime": true,
	"chrono::NaiveTime":     true,
}

func (chronoSolver) SolveAsType(_ *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok || !chronoPaths[p] {
		return ContinueResult[tidlast.TSType]()
	}
	return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.String})
}
