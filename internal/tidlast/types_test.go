package tidlast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunholo/typebind/internal/ident"
)

func TestPropertyNameOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"valid identifier", "foo", "foo"},
		{"leading digit falls back to string", "1foo", `"1foo"`},
		{"hyphen falls back to string", "foo-bar", `"foo-bar"`},
		{"reserved word is still a valid identifier in property position", "class", "class"},
		{"empty string falls back to string", "", `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyNameOf(tt.in).String())
		})
	}
}

func TestPropertySignatureString(t *testing.T) {
	m := PropertySignature{
		Name:  PropertyNameOf("foo"),
		Inner: Predefined{Kind: String},
	}
	assert.Equal(t, "foo: string", m.String())

	m.Optional = true
	assert.Equal(t, "foo?: string", m.String())
}

func TestObjectTypeString(t *testing.T) {
	o := ObjectType{Body: TypeBody{Members: []PropertySignature{
		{Name: PropertyNameOf("a"), Inner: Predefined{Kind: Number}},
		{Name: PropertyNameOf("b"), Inner: Predefined{Kind: Boolean}, Optional: true},
	}}}
	assert.Equal(t, "{\n\ta: number,\n\tb?: boolean\n}", o.String())
}

func TestUnionAndIntersectionTypeString(t *testing.T) {
	u := UnionType{Types: []TSType{
		LiteralType{Kind: LiteralString, Str: "a"},
		LiteralType{Kind: LiteralString, Str: "b"},
	}}
	assert.Equal(t, `"a" | "b"`, u.String())

	i := IntersectionType{Types: []TSType{
		TypeReference{Name: ident.Ident("A")},
		TypeReference{Name: ident.Ident("B")},
	}}
	assert.Equal(t, "A & B", i.String())
}

func TestTupleTypeString(t *testing.T) {
	tup := TupleType{Elems: []TSType{Predefined{Kind: String}, Predefined{Kind: Number}}}
	assert.Equal(t, "[ string, number ]", tup.String())
}

func TestArrayTypeString(t *testing.T) {
	a := ArrayType{Elem: Predefined{Kind: String}}
	assert.Equal(t, "string[]", a.String())
}

func TestTypeReferenceWithArgs(t *testing.T) {
	r := TypeReference{
		Name: ident.Ident("Map"),
		Args: &TypeArguments{Args: []TSType{Predefined{Kind: String}, Predefined{Kind: Any}}},
	}
	assert.Equal(t, "Map<string, any>", r.String())
}

func TestLiteralTypeString(t *testing.T) {
	tests := []struct {
		name string
		lit  LiteralType
		want string
	}{
		{"string", LiteralType{Kind: LiteralString, Str: `has "quotes"`}, `"has \"quotes\""`},
		{"numeric", LiteralType{Kind: LiteralNumeric, Num: 42}, "42"},
		{"boolean true", LiteralType{Kind: LiteralBoolean, Bool: true}, "true"},
		{"boolean false", LiteralType{Kind: LiteralBoolean, Bool: false}, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lit.String())
		})
	}
}

func TestParenthesizedTypeString(t *testing.T) {
	p := ParenthesizedType{Inner: IntersectionType{Types: []TSType{
		TypeReference{Name: ident.Ident("A")},
		TypeReference{Name: ident.Ident("B")},
	}}}
	assert.Equal(t, "( A & B )", p.String())
}
