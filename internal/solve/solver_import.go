package solve

import (
	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/importctx"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

// importSolver is solver #12, the terminal solver. It must run last: it
// consults the import context and, if resolution yields a more-qualified
// canonical path, re-enters the whole chain so the primitive/collection/
// chrono solvers get a second chance at the qualified path. Otherwise it
// constructs a bare TypeReference and emits exactly one ImportEntry (with an
// empty sourcePath for a same-module reference, which the module step later
// drops).
type importSolver struct{}

func (importSolver) SolveAsType(ctx *Context, info source.TypeInfo) Result[tidlast.TSType] {
	if info.Ty.Kind != source.TypePath || len(info.Ty.Path) == 0 {
		return ContinueResult[tidlast.TSType]()
	}
	segIdents := pathIdents(info.Ty)
	canonical, hit := ctx.ImportCtx().Resolve(segIdents)
	if hit && !sameSegments(canonical, segIdents) {
		rewritten := rewritePath(info.Ty, canonical)
		return ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: rewritten})
	}

	seg := lastSegment(info.Ty)
	name, err := ident.Validate(seg.Ident, ident.Lax)
	if err != nil {
		return ErrorResult[tidlast.TSType](err)
	}

	var args *tidlast.TypeArguments
	var imports []ImportEntry
	var constraints GenericConstraints
	rawArgs := typeArgs(seg)
	if len(rawArgs) > 0 {
		solved := make([]tidlast.TSType, len(rawArgs))
		for i, a := range rawArgs {
			r := ctx.SolveType(source.TypeInfo{Generics: info.Generics, Ty: a})
			if r.Kind != SolvedKind {
				return r
			}
			solved[i] = r.Value.Inner
			imports = append(imports, r.Value.Imports...)
			constraints = constraints.Merge(r.Value.Constraints)
		}
		args = &tidlast.TypeArguments{Args: solved}
	}

	sourcePath := importctx.JoinModulePath(segIdents)
	imports = append(imports, ImportEntry{SourcePath: sourcePath, Ident: seg.Ident})

	return SolvedResult(Solved[tidlast.TSType]{
		Inner:       tidlast.TypeReference{Name: name, Args: args},
		Imports:     imports,
		Constraints: constraints,
	})
}

// SolveAsMember overrides the default so imports emitted through a field
// keep the property-signature wrapping attached directly (no semantic
// difference from the default, but kept explicit per spec.md §4.3's note
// that only skip_serializing_if and the import solver override member
// handling).
func (s importSolver) SolveAsMember(ctx *Context, info source.MemberInfo) Result[tidlast.PropertySignature] {
	return defaultSolveAsMember(ctx, s, info)
}

func pathIdents(t *source.Type) []string {
	out := make([]string, len(t.Path))
	for i, seg := range t.Path {
		out[i] = seg.Ident
	}
	return out
}

func sameSegments(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// rewritePath builds a new *source.Type with Path replaced by canonical
// segments, carrying the original last segment's generic args forward.
func rewritePath(t *source.Type, canonical []string) *source.Type {
	orig := lastSegment(t)
	newPath := make([]source.PathSegment, len(canonical))
	for i, id := range canonical {
		newPath[i] = source.PathSegment{Ident: id}
	}
	if orig != nil {
		newPath[len(newPath)-1].Args = orig.Args
	}
	return &source.Type{Kind: source.TypePath, Path: newPath}
}
