package solve

import (
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// skipSerializingIfSolver is solver #11: member-level only. solveAsType
// always continues. When fieldAttrs.SkipSerializingIf is set: if the field
// is Option and the predicate is exactly "Option::is_none", unwrap to the
// inner T and mark optional; otherwise solve the type normally (not as a
// member, to avoid double property-wrapping) and mark optional regardless.
type skipSerializingIfSolver struct{}

func (skipSerializingIfSolver) SolveAsType(_ *Context, _ source.TypeInfo) Result[tidlast.TSType] {
	return ContinueResult[tidlast.TSType]()
}

func (s skipSerializingIfSolver) SolveAsMember(ctx *Context, info source.MemberInfo) Result[tidlast.PropertySignature] {
	if info.FieldAttrs.SkipSerializingIf == "" {
		return ContinueResult[tidlast.PropertySignature]()
	}
	if info.FieldAttrs.Flatten {
		return ContinueResult[tidlast.PropertySignature]()
	}

	name := tidlast.PropertyNameOf(memberDisplayName(info))

	if isOptionType(info.Ty) && info.FieldAttrs.SkipSerializingIf == "Option::is_none" {
		inner := optionInner(info.Ty)
		if inner == nil {
			return ContinueResult[tidlast.PropertySignature]()
		}
		r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: inner})
		if r.Kind != SolvedKind {
			return Result[tidlast.PropertySignature]{Kind: r.Kind, Err: r.Err}
		}
		return SolvedResult(Solved[tidlast.PropertySignature]{
			Inner:       tidlast.PropertySignature{Name: name, Optional: true, Inner: r.Value.Inner},
			Imports:     r.Value.Imports,
			Constraints: r.Value.Constraints,
		})
	}

	r := ctx.SolveType(info.AsTypeInfo())
	if r.Kind != SolvedKind {
		return Result[tidlast.PropertySignature]{Kind: r.Kind, Err: r.Err}
	}
	return SolvedResult(Solved[tidlast.PropertySignature]{
		Inner:       tidlast.PropertySignature{Name: name, Optional: true, Inner: r.Value.Inner},
		Imports:     r.Value.Imports,
		Constraints: r.Value.Constraints,
	})
}
