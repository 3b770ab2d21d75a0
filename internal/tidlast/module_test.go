package tidlast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/typebind/internal/ident"
)

func TestImportStatementString(t *testing.T) {
	s := ImportStatement{Kind: ImportList{Items: []ident.Ident{"A", "B"}}, Path: "./types"}
	assert.Equal(t, `import { A, B } from "./types";`, s.String())

	s = ImportStatement{Kind: ImportIdentifier{Name: "Default"}, Path: "./types"}
	assert.Equal(t, `import Default from "./types";`, s.String())

	s = ImportStatement{Kind: ImportGlobAsIdentifier{Name: "NS"}, Path: "./types"}
	assert.Equal(t, `import * as NS from "./types";`, s.String())
}

func TestRenderFileNoHeaderNoContent(t *testing.T) {
	assert.Equal(t, "", RenderFile(HeaderStyle{}, nil, nil))
}

func TestRenderFileStandardHeader(t *testing.T) {
	out := RenderFile(HeaderStyle{Standard: true}, nil, []ExportStatement{
		{Decl: TypeAliasDeclaration{Ident: "Foo", Inner: Predefined{Kind: String}}},
	})
	assert.Equal(t, "// Code generated, DO NOT EDIT.\n\nexport type Foo = string;\n", out)
}

func TestRenderFileImportsAndMultipleExports(t *testing.T) {
	imports := []ImportStatement{
		{Kind: ImportList{Items: []ident.Ident{"A"}}, Path: "./a"},
	}
	exports := []ExportStatement{
		{Decl: TypeAliasDeclaration{Ident: "Foo", Inner: Predefined{Kind: String}}},
		{Decl: TypeAliasDeclaration{Ident: "Bar", Inner: Predefined{Kind: Number}}},
	}
	out := RenderFile(HeaderStyle{}, imports, exports)
	assert.Equal(t, "import { A } from \"./a\";\n\nexport type Foo = string;\n\nexport type Bar = number;\n", out)
}

func TestRenderFileCustomHeader(t *testing.T) {
	out := RenderFile(HeaderStyle{Custom: "// custom banner"}, nil, nil)
	assert.Equal(t, "// custom banner\n\n", out)
}
