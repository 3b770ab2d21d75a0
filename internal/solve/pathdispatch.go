package solve

import (
	"strings"

	"github.com/sunholo/typebind/internal/source"
)

// fullPath renders a type's Path segments (idents only, no generic args) as
// a "::"-joined fully-qualified string for dispatch-table lookups.
func fullPath(t *source.Type) (string, bool) {
	if t == nil || t.Kind != source.TypePath || len(t.Path) == 0 {
		return "", false
	}
	parts := make([]string, len(t.Path))
	for i, seg := range t.Path {
		parts[i] = seg.Ident
	}
	return strings.Join(parts, "::"), true
}

// lastSegment returns the final path segment, or nil.
func lastSegment(t *source.Type) *source.PathSegment {
	if t == nil || t.Kind != source.TypePath || len(t.Path) == 0 {
		return nil
	}
	return &t.Path[len(t.Path)-1]
}

// typeArgs returns the Type children of the last segment's generic
// arguments, skipping lifetimes/const generics (callers that require a type
// argument should check length and error with EmptyGenerics if it's zero).
func typeArgs(seg *source.PathSegment) []*source.Type {
	var out []*source.Type
	for _, a := range seg.Args {
		if a.Type != nil {
			out = append(out, a.Type)
		}
	}
	return out
}
