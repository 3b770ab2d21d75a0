package solve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typebind/internal/importctx"
	"github.com/sunholo/typebind/internal/source"
	"github.com/sunholo/typebind/internal/tidlast"
)

func pathType(segments ...string) *source.Type {
	path := make([]source.PathSegment, len(segments))
	for i, s := range segments {
		path[i] = source.PathSegment{Ident: s}
	}
	return &source.Type{Kind: source.TypePath, Path: path}
}

func pathTypeWithArgs(name string, args ...*source.Type) *source.Type {
	pathArgs := make([]source.PathArg, len(args))
	for i, a := range args {
		pathArgs[i] = source.PathArg{Type: a}
	}
	return &source.Type{Kind: source.TypePath, Path: []source.PathSegment{{Ident: name, Args: pathArgs}}}
}

func newTestContext() *Context {
	return NewContext(importctx.New("crate"))
}

func TestSolveTypePrimitives(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"unsigned int", "u32", "number"},
		{"float", "f64", "number"},
		{"string", "str", "string"},
		{"string type", "std::string::String", "string"},
		{"bool", "bool", "boolean"},
		{"char", "char", "string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			r := ctx.SolveType(source.TypeInfo{Ty: pathType(tt.path)})
			require.Equal(t, SolvedKind, r.Kind)
			assert.Equal(t, tt.want, r.Value.Inner.String())
		})
	}
}

func TestSolveTypeUnitTuple(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: &source.Type{Kind: source.TypeTuple}})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "null", r.Value.Inner.String())
}

func TestSolveTypeNonEmptyTuple(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: &source.Type{
		Kind:  source.TypeTuple,
		Elems: []*source.Type{pathType("u32"), pathType("bool")},
	}})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "[ number, boolean ]", r.Value.Inner.String())
}

func TestSolveTypeOption(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathTypeWithArgs("std::option::Option", pathType("u32"))})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "number | null", r.Value.Inner.String())
}

func TestSolveTypeOptionEmptyGenericsErrors(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathType("std::option::Option")})
	assert.Equal(t, ErrorKind, r.Kind)
}

func TestSolveTypeVec(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathTypeWithArgs("std::vec::Vec", pathType("str"))})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "string[]", r.Value.Inner.String())
}

func TestSolveTypeHashMapStringKeyed(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{
		Ty: pathTypeWithArgs("std::collections::HashMap", pathType("str"), pathType("u32")),
	})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "Record<string, number>", r.Value.Inner.String())
}

func TestSolveTypeHashMapGenericKeyGetsPartialAndConstraint(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{
		Generics: source.Generics{Params: []source.GenericParam{{Name: "K", IsType: true}}},
		Ty:       pathTypeWithArgs("std::collections::HashMap", pathType("K"), pathType("u32")),
	})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "Partial<Record<K, number>>", r.Value.Inner.String())
	assert.Contains(t, r.Value.Constraints, "K")
}

func TestSolveTypeHashMapGenericKeyConstraintShape(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{
		Generics: source.Generics{Params: []source.GenericParam{{Name: "K", IsType: true}}},
		Ty:       pathTypeWithArgs("std::collections::HashMap", pathType("K"), pathType("u32")),
	})
	require.Equal(t, SolvedKind, r.Kind)

	want := GenericConstraints{"K": []tidlast.TSType{tidlast.Predefined{Kind: tidlast.String}}}
	if diff := cmp.Diff(want, r.Value.Constraints); diff != "" {
		t.Errorf("constraints mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveTypeUnknownPathImportEntryShape(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathType("some_module", "Weird")})
	require.Equal(t, SolvedKind, r.Kind)

	want := []ImportEntry{{SourcePath: "some_module", Ident: "Weird"}}
	if diff := cmp.Diff(want, r.Value.Imports); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveTypeArray(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: &source.Type{Kind: source.TypeSlice, Elem: pathType("u32")}})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "number[]", r.Value.Inner.String())
}

func TestSolveTypeUnknownPathFallsThroughToImportSolver(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathType("some_module", "Weird")})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "Weird", r.Value.Inner.String())
	require.Len(t, r.Value.Imports, 1)
	assert.Equal(t, "Weird", r.Value.Imports[0].Ident)
}

func TestSolveMemberDefaultWrapping(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveMember(source.MemberInfo{FieldName: "count", Ty: pathType("u32")})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "count: number", r.Value.Inner.String())
}

func TestSolveMemberSkipSerializingIfOptionIsNoneUnwraps(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveMember(source.MemberInfo{
		FieldName: "nickname",
		Ty:        pathTypeWithArgs("std::option::Option", pathType("str")),
		FieldAttrs: source.FieldAttrs{
			SkipSerializingIf: "Option::is_none",
		},
	})
	require.Equal(t, SolvedKind, r.Kind)
	assert.True(t, r.Value.Inner.Optional)
	assert.Equal(t, "nickname?: string", r.Value.Inner.String())
}

func TestSolveMemberRenameAffectsPropertyName(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveMember(source.MemberInfo{
		FieldName:  "count",
		Ty:         pathType("u32"),
		FieldAttrs: source.FieldAttrs{Rename: "total-count"},
	})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, `"total-count": number`, r.Value.Inner.String())
}

func TestSolveTypeRangeOps(t *testing.T) {
	for _, path := range []string{"std::ops::Range", "std::ops::RangeInclusive"} {
		t.Run(path, func(t *testing.T) {
			ctx := newTestContext()
			r := ctx.SolveType(source.TypeInfo{Ty: pathTypeWithArgs(path, pathType("u32"))})
			require.Equal(t, SolvedKind, r.Kind)
			assert.Equal(t, "{\n\tstart: number,\n\tend: number\n}", r.Value.Inner.String())
		})
	}
}

func TestSolveTypeRangeEmptyGenericsErrors(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathType("std::ops::Range")})
	assert.Equal(t, ErrorKind, r.Kind)
}

func TestSolveTypeChronoMapsToString(t *testing.T) {
	for _, path := range []string{"chrono::Date", "chrono::DateTime", "chrono::NaiveDate", "chrono::NaiveDateTime", "chrono::NaiveTime"} {
		t.Run(path, func(t *testing.T) {
			ctx := newTestContext()
			r := ctx.SolveType(source.TypeInfo{Ty: pathType(path)})
			require.Equal(t, SolvedKind, r.Kind)
			assert.Equal(t, "string", r.Value.Inner.String())
		})
	}
}

func TestSolveTypeSerdeJSONValueMapsToAny(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: pathType("serde_json::Value")})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "any", r.Value.Inner.String())
}

func TestSolveTypeReferencePassesThroughToInner(t *testing.T) {
	ctx := newTestContext()
	r := ctx.SolveType(source.TypeInfo{Ty: &source.Type{Kind: source.TypeReference, Inner: pathType("u32")}})
	require.Equal(t, SolvedKind, r.Kind)
	assert.Equal(t, "number", r.Value.Inner.String())
}
