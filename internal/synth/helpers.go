package synth

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/ident"
	"github.com/sunholo/typebind/internal/solve"
)

// mustIdent validates a declaration-level identifier (container/variant
// name). Source identifiers are assumed already well-formed Rust idents;
// this only guards against the rare case a rename produces something
// invalid, falling back to the raw string so callers still get a usable
// (if technically unvalidated) name rather than a panic.
func mustIdent(s string) ident.Ident {
	if id, err := ident.Validate(s, ident.Lax); err == nil {
		return id
	}
	return ident.Ident(s)
}

func importEntries(in []solve.ImportEntry) []solve.ImportEntry {
	if len(in) == 0 {
		return nil
	}
	return in
}

func unsolvedFlattenedField(name string) error {
	return errkind.UnsolvedField{Field: name + " (flatten is not modeled)"}
}
