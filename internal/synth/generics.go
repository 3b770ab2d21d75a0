package synth

import (
	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// extractTypeParameters filters a container's Generics down to type
// parameters only (lifetimes and const generics are excluded), returning nil
// if there are none so the declaration renders with no angle brackets.
func extractTypeParameters(g source.Generics) *tidlast.TypeParameters {
	names := g.TypeParamNames()
	if len(names) == 0 {
		return nil
	}
	params := make([]tidlast.TypeParameter, len(names))
	for i, n := range names {
		id, err := ident.Validate(n, ident.Lax)
		if err != nil {
			id = ident.Ident(n)
		}
		params[i] = tidlast.TypeParameter{Name: id}
	}
	return &tidlast.TypeParameters{Params: params}
}

// applyGenericConstraints mutates tp in place, attaching any accumulated
// `extends` constraints discovered during solving to the matching type
// parameter (matched by rendered name, since the collections solver records
// constraints keyed by the solved key type's string form).
func applyGenericConstraints(tp *tidlast.TypeParameters, constraints solve.GenericConstraints) {
	if tp == nil || len(constraints) == 0 {
		return
	}
	for i := range tp.Params {
		types, ok := constraints[string(tp.Params[i].Name)]
		if !ok || len(types) == 0 {
			continue
		}
		if len(types) == 1 {
			tp.Params[i].Constraint = types[0]
			continue
		}
		tp.Params[i].Constraint = tidlast.IntersectionType{Types: types}
	}
}
