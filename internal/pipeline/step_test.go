package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typebind/internal/pathmap"
	"github.com/sunholo/typebind/internal/solve"
	"github.com/sunholo/typebind/internal/source"
)

func pathType(segments ...string) *source.Type {
	path := make([]source.PathSegment, len(segments))
	for i, s := range segments {
		path[i] = source.PathSegment{Ident: s}
	}
	return &source.Type{Kind: source.TypePath, Path: path}
}

func containerItem(c *source.Container) source.Item {
	return source.Item{Kind: source.ItemContainer, Container: c}
}

// fixedSpawner serves a canned lookup table of module paths to items,
// modeling a directory-backed spawner without touching a filesystem.
type fixedSpawner struct {
	byPath map[string][]source.Item
}

func (f fixedSpawner) CreateStep(path []string) (*Step, error) {
	items, ok := f.byPath[joinPath(path)]
	if !ok {
		return nil, nil
	}
	return NewStep(path, items, "crate", nil), nil
}

func joinPath(p []string) string {
	out := ""
	for i, s := range p {
		if i > 0 {
			out += "/"
		}
		out += s
	}
	return out
}

func TestStepLaunchSingleContainer(t *testing.T) {
	items := []source.Item{
		containerItem(&source.Container{
			Ident: "User", IsStruct: true, Style: source.StyleStruct,
			Fields: []source.Field{{Name: "id", Ty: pathType("u32")}},
		}),
	}
	step := NewStep([]string{"lib"}, items, "crate", nil)
	result, err := step.Launch(nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Data.Exports, 1)
	assert.Equal(t, "export interface User {\n\tid: number\n}", result.Data.Exports[0].String())
	assert.Empty(t, result.Children)
}

func TestStepLaunchPreservesSourceOrder(t *testing.T) {
	items := []source.Item{
		containerItem(&source.Container{Ident: "Second", IsStruct: true, Style: source.StyleNewtype,
			Fields: []source.Field{{Ty: pathType("u32")}}}),
		containerItem(&source.Container{Ident: "First", IsStruct: true, Style: source.StyleNewtype,
			Fields: []source.Field{{Ty: pathType("str")}}}),
	}
	step := NewStep([]string{"lib"}, items, "crate", nil)
	result, err := step.Launch(nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Data.Exports, 2)
	assert.Equal(t, "export type Second = number;", result.Data.Exports[0].String())
	assert.Equal(t, "export type First = string;", result.Data.Exports[1].String())
}

func TestStepLaunchInlineChildModule(t *testing.T) {
	child := &source.ChildModule{
		Name:   "models",
		Inline: true,
		Items: []source.Item{
			containerItem(&source.Container{Ident: "Post", IsStruct: true, Style: source.StyleNewtype,
				Fields: []source.Field{{Ty: pathType("u32")}}}),
		},
	}
	items := []source.Item{{Kind: source.ItemChildModule, Child: child}}
	step := NewStep([]string{"lib"}, items, "crate", nil)
	result, err := step.Launch(nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Children, 1)
	assert.Equal(t, []string{"lib", "models"}, result.Children[0].Data.Path)
	require.Len(t, result.Children[0].Data.Exports, 1)
	assert.Equal(t, "export type Post = number;", result.Children[0].Data.Exports[0].String())
}

func TestStepLaunchExternalChildViaSpawner(t *testing.T) {
	spawner := fixedSpawner{byPath: map[string][]source.Item{
		"lib/models": {
			containerItem(&source.Container{Ident: "Post", IsStruct: true, Style: source.StyleNewtype,
				Fields: []source.Field{{Ty: pathType("u32")}}}),
		},
	}}
	child := &source.ChildModule{Name: "models", Inline: false}
	items := []source.Item{{Kind: source.ItemChildModule, Child: child}}
	step := NewStep([]string{"lib"}, items, "crate", nil)
	result, err := step.Launch(spawner, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.Children, 1)
	assert.Equal(t, []string{"lib", "models"}, result.Children[0].Data.Path)
}

func TestStepLaunchMissingExternalChildIsDiscarded(t *testing.T) {
	spawner := fixedSpawner{byPath: map[string][]source.Item{}}
	child := &source.ChildModule{Name: "absent", Inline: false}
	items := []source.Item{{Kind: source.ItemChildModule, Child: child}}
	step := NewStep([]string{"lib"}, items, "crate", nil)
	result, err := step.Launch(spawner, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Children)
}

func TestAggregateImportsGroupsDedupesAndSortsWithMapping(t *testing.T) {
	entries := []solve.ImportEntry{
		{SourcePath: "models::user", Ident: "User"},
		{SourcePath: "models::user", Ident: "User"},
		{SourcePath: "models::user", Ident: "Account"},
		{SourcePath: "", Ident: "LocalOnly"},
		{SourcePath: "models::post", Ident: "Post"},
	}
	mapper := pathmap.New()
	mapper.Add("models::user", "./types/user")

	out := aggregateImports(entries, mapper)
	require.Len(t, out, 2)
	assert.Equal(t, "./types/user", out[0].Path)
	assert.Equal(t, `import { Account, User } from "./types/user";`, out[0].String())
	assert.Equal(t, "models::post", out[1].Path, "unmapped source paths pass through unchanged")
}

func TestAggregateImportsNilMapper(t *testing.T) {
	entries := []solve.ImportEntry{{SourcePath: "models::user", Ident: "User"}}
	out := aggregateImports(entries, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "models::user", out[0].Path)
}
