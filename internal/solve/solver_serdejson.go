package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// serdeJSONValueSolver is solver #10: `serde_json::Value` maps to `any`.
type serdeJSONValueSolver struct{}

func (serdeJSONValueSolver) SolveAsType(_ *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok || p != "serde_json::Value" {
		return ContinueResult[tidlast.TSType]()
	}
	return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.Any})
}
