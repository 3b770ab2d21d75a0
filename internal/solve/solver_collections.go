package solve

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// collectionsSolver is solver #4: sequence-like collections map to
// `Array(T)`; map-like collections map to `Record<K,V>` (or
// `Partial<Record<K,V>>` if the key doesn't solve to a predefined
// string/number), always adding a `K extends string` constraint.
type collectionsSolver struct{}

var seqPaths = map[string]bool{
	"std::vec::Vec":                 true,
	"std::collections::VecDeque":    true,
	"std::collections::LinkedList":  true,
	"std::collections::HashSet":     true,
	"std::collections::BTreeSet":    true,
	"std::collections::BinaryHeap":  true,
}

var mapPaths = map[string]bool{
	"std::collections::HashMap": true,
	"std::collections::BTreeMap": true,
}

func (collectionsSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	p, ok := fullPath(info.Ty)
	if !ok {
		return ContinueResult[tidlast.TSType]()
	}
	seg := lastSegment(info.Ty)
	args := typeArgs(seg)

	if seqPaths[p] {
		if len(args) == 0 {
			return ErrorResult[tidlast.TSType](errkind.EmptyGenerics{Type: p})
		}
		r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: args[0]})
		if r.Kind != SolvedKind {
			return r
		}
		return SolvedResult(Solved[tidlast.TSType]{
			Inner:       tidlast.ArrayType{Elem: r.Value.Inner},
			Imports:     r.Value.Imports,
			Constraints: r.Value.Constraints,
		})
	}

	if mapPaths[p] {
		if len(args) < 2 {
			return ErrorResult[tidlast.TSType](errkind.EmptyGenerics{Type: p})
		}
		keyR := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: args[0]})
		if keyR.Kind != SolvedKind {
			return keyR
		}
		valR := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: args[1]})
		if valR.Kind != SolvedKind {
			return valR
		}
		imports, constraints := mergeSideEffects(keyR.Value, valR.Value)

		recordArgs := tidlast.TypeArguments{Args: []tidlast.TSType{keyR.Value.Inner, valR.Value.Inner}}
		var inner tidlast.TSType
		recordIdent, _ := ident.Validate("Record", ident.Lax)
		record := tidlast.TypeReference{Name: recordIdent, Args: &recordArgs}
		if isStringOrNumber(keyR.Value.Inner) {
			inner = record
		} else {
			partialArgs := tidlast.TypeArguments{Args: []tidlast.TSType{record}}
			partialIdent, _ := ident.Validate("Partial", ident.Lax)
			inner = tidlast.TypeReference{Name: partialIdent, Args: &partialArgs}
		}

		// The constraint key is the *stringified solved key type*, matching the
		// reference implementation (it only makes sense when the solved key
		// renders as a bare generic-parameter name, e.g. "K").
		constraints = constraints.Add(keyR.Value.Inner.String(), tidlast.Predefined{Kind: tidlast.String})

		return SolvedResult(Solved[tidlast.TSType]{
			Inner:       inner,
			Imports:     imports,
			Constraints: constraints,
		})
	}

	return ContinueResult[tidlast.TSType]()
}

func isStringOrNumber(t tidlast.TSType) bool {
	p, ok := t.(tidlast.Predefined)
	return ok && (p.Kind == tidlast.String || p.Kind == tidlast.Number)
}
