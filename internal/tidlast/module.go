package tidlast

import "strings"

// HeaderStyle selects the optional comment banner prepended to an emitted
// file. Supplemental feature per SPEC_FULL.md §11.
type HeaderStyle struct {
	None     bool
	Standard bool
	Custom   string
}

const standardHeader = "// Code generated, DO NOT EDIT."

// RenderFile joins imports and exports into the final file text: imports
// first, then a blank line, then declarations in source order, with an
// optional header banner first.
func RenderFile(header HeaderStyle, imports []ImportStatement, exports []ExportStatement) string {
	var b strings.Builder
	switch {
	case header.Custom != "":
		b.WriteString(header.Custom)
		b.WriteString("\n\n")
	case header.Standard:
		b.WriteString(standardHeader)
		b.WriteString("\n\n")
	}
	for _, imp := range imports {
		b.WriteString(imp.String())
		b.WriteString("\n")
	}
	if len(imports) > 0 {
		b.WriteString("\n")
	}
	for i, exp := range exports {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(exp.String())
	}
	if len(exports) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}
