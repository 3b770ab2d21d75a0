package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// primitivesSolver is solver #5: fully-qualified primitive paths map
// directly to the three TIDL scalar keywords.
type primitivesSolver struct{}

var numberPaths = map[string]bool{
	"u8": true, "u16": true, "u32": true, "u64": true, "usize": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "isize": true,
	"f32": true, "f64": true,
	"serde_json::Number": true,
}

var stringPaths = map[string]bool{
	"char":               true,
	"str":                true,
	"std::string::String": true,
	"std::borrow::Cow":   true,
}

var boolPaths = map[string]bool{
	"bool": true,
}

func (primitivesSolver) SolveAsType(_ *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok {
		return ContinueResult[tidlast.TSType]()
	}
	switch {
	case numberPaths[p]:
		return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.Number})
	case stringPaths[p]:
		return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.String})
	case boolPaths[p]:
		return Ok[tidlast.TSType](tidlast.Predefined{Kind: tidlast.Boolean})
	default:
		return ContinueResult[tidlast.TSType]()
	}
}
