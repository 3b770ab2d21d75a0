package solve

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/importctx"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// TypeSolver attempts to translate one source.TypeInfo into a TIDL type.
type TypeSolver interface {
	SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType]
}

// MemberSolver is implemented by solvers that need member-specific handling
// (skip_serializing_if, and the import solver's property-wrapping). Solvers
// that don't implement it get the spec's default member behavior: solve as
// a bare type, then wrap as a non-optional PropertySignature.
type MemberSolver interface {
	TypeSolver
	SolveAsMember(ctx *Context, info source.MemberInfo) Result[tidlast.PropertySignature]
}

// Context runs the fixed solver chain and owns the current module's import
// context. Solvers are stateless and shared read-only; Context itself is
// cheap to construct per module step.
type Context struct {
	solvers   []TypeSolver
	importCtx *importctx.Context
}

// NewContext builds a Context with the chain in its fixed contractual order.
// The import solver is always last.
func NewContext(importCtx *importctx.Context) *Context {
	return &Context{
		importCtx: importCtx,
		solvers: []TypeSolver{
			tupleSolver{},
			referenceSolver{},
			arraySolver{},
			collectionsSolver{},
			primitivesSolver{},
			optionSolver{},
			genericsSolver{},
			rangesSolver{},
			chronoSolver{},
			serdeJSONValueSolver{},
			skipSerializingIfSolver{},
			importSolver{},
		},
	}
}

// ImportCtx exposes the module's import context to solvers that need it
// (collections' path dispatch, the import solver's resolution).
func (c *Context) ImportCtx() *importctx.Context { return c.importCtx }

// SolveType runs the chain against info, stopping at the first Solved or
// Error, returning UnsolvedType if every solver continues.
func (c *Context) SolveType(info source.TypeInfo) Result[tidlast.TSType] {
	for _, s := range c.solvers {
		r := s.SolveAsType(c, info)
		switch r.Kind {
		case Continue:
			continue
		case SolvedKind, ErrorKind:
			return r
		}
	}
	return ErrorResult[tidlast.TSType](errkind.UnsolvedType{Type: typeDescription(info.Ty)})
}

// SolveMember runs the chain in member mode: each solver gets a chance via
// SolveAsMember if it implements MemberSolver, else falls back to SolveType
// plus default property-signature wrapping. A field carrying
// skip_serializing_if is offered to the skip_serializing_if solver first,
// since the earlier option/primitive/collection solvers would otherwise
// claim it and wrap it as a non-optional member.
func (c *Context) SolveMember(info source.MemberInfo) Result[tidlast.PropertySignature] {
	if info.FieldAttrs.SkipSerializingIf != "" {
		if r := (skipSerializingIfSolver{}).SolveAsMember(c, info); r.Kind != Continue {
			return r
		}
	}
	for _, s := range c.solvers {
		var r Result[tidlast.PropertySignature]
		if ms, ok := s.(MemberSolver); ok {
			r = ms.SolveAsMember(c, info)
		} else {
			r = defaultSolveAsMember(c, s, info)
		}
		switch r.Kind {
		case Continue:
			continue
		case SolvedKind, ErrorKind:
			return r
		}
	}
	return ErrorResult[tidlast.PropertySignature](errkind.UnsolvedField{Field: info.FieldName})
}

// defaultSolveAsMember implements the spec's default member handling:
// delegate to SolveAsType, then wrap as a non-optional PropertySignature.
func defaultSolveAsMember(ctx *Context, s TypeSolver, info source.MemberInfo) Result[tidlast.PropertySignature] {
	r := s.SolveAsType(ctx, info.AsTypeInfo())
	switch r.Kind {
	case Continue:
		return ContinueResult[tidlast.PropertySignature]()
	case ErrorKind:
		return ErrorResult[tidlast.PropertySignature](r.Err)
	default:
		prop := tidlast.PropertySignature{
			Name:     tidlast.PropertyNameOf(memberDisplayName(info)),
			Optional: false,
			Inner:    r.Value.Inner,
		}
		return SolvedResult(Solved[tidlast.PropertySignature]{
			Inner:       prop,
			Imports:     r.Value.Imports,
			Constraints: r.Value.Constraints,
		})
	}
}

func memberDisplayName(info source.MemberInfo) string {
	if info.FieldAttrs.Rename != "" {
		return info.FieldAttrs.Rename
	}
	return info.FieldName
}

func typeDescription(t *source.Type) string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case source.TypePath:
		if len(t.Path) == 0 {
			return "<empty path>"
		}
		return t.Path[len(t.Path)-1].Ident
	case source.TypeReference:
		return "&" + typeDescription(t.Inner)
	case source.TypeArray:
		return "[" + typeDescription(t.Elem) + "]"
	case source.TypeSlice:
		return "[" + typeDescription(t.Elem) + "]"
	case source.TypeTuple:
		return "(tuple)"
	default:
		return "<type>"
	}
}
