package tidlast

import (
	"strings"

	"github.com/sunholo/typebind/internal/ident"
)

// ImportKind is the `{kind}` clause of an import statement.
type ImportKind interface {
	importKind()
	String() string
}

// ImportIdentifier is a single default-style import: `import Name from "p"`.
type ImportIdentifier struct{ Name ident.Ident }

func (ImportIdentifier) importKind()     {}
func (i ImportIdentifier) String() string { return string(i.Name) }

// ImportGlobAsIdentifier is `import * as Name from "p"`.
type ImportGlobAsIdentifier struct{ Name ident.Ident }

func (ImportGlobAsIdentifier) importKind()     {}
func (i ImportGlobAsIdentifier) String() string { return "* as " + string(i.Name) }

// ImportList is `import { A, B, ... } from "p"`.
type ImportList struct{ Items []ident.Ident }

func (ImportList) importKind() {}
func (l ImportList) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = string(it)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// ImportStatement is `import {kind} from "path";`.
type ImportStatement struct {
	Kind ImportKind
	Path string
}

func (s ImportStatement) String() string {
	return "import " + s.Kind.String() + ` from "` + s.Path + `";`
}
