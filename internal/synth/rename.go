// Package synth is the declaration synthesizer (C5): per-container logic for
// structs (unit/newtype/tuple/named) and enums under each serde tag
// discipline, generic-parameter extraction and constraint attachment, and
// type-alias/macro handling.
package synth

import "strings"

// renameField applies a rename_all casing convention, unless fieldRename
// (an explicit per-field #[serde(rename = "...")]) overrides it.
func renameField(fieldName, fieldRename, renameAll string) string {
	if fieldRename != "" {
		return fieldRename
	}
	return applyRenameAll(fieldName, renameAll)
}

// applyRenameAll converts a snake_case source identifier per one of serde's
// rename_all conventions. Unknown/empty conventions are a no-op.
func applyRenameAll(s, convention string) string {
	switch convention {
	case "camelCase":
		return toCamelCase(s)
	case "PascalCase":
		return toPascalCase(s)
	case "SCREAMING_SNAKE_CASE":
		return strings.ToUpper(s)
	case "kebab-case":
		return strings.ReplaceAll(s, "_", "-")
	case "lowercase":
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	case "UPPERCASE":
		return strings.ToUpper(strings.ReplaceAll(s, "_", ""))
	default:
		return s
	}
}

func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
