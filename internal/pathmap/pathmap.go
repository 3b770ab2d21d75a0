// Package pathmap rewrites source-language module paths (`::`-joined) to
// target-language import path prefixes using a longest-prefix trie.
package pathmap

import (
	"encoding/json"
	"strings"
)

// node is one trie node: an optional mapped prefix plus child segments.
type node struct {
	mapped   string
	hasMapped bool
	children map[string]*node
}

func newNode() *node { return &node{children: make(map[string]*node)} }

// Mapper is a `::`-segmented trie of source path -> target import prefix.
type Mapper struct{ root *node }

// New returns an empty Mapper.
func New() *Mapper { return &Mapper{root: newNode()} }

// Add registers sourcePath (e.g. "a::b::c") -> mappedPrefix, splitting on
// "::" and creating intermediate nodes as needed.
func (m *Mapper) Add(sourcePath, mappedPrefix string) {
	segs := splitPath(sourcePath)
	cur := m.root
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = newNode()
			cur.children[s] = next
		}
		cur = next
	}
	cur.mapped = mappedPrefix
	cur.hasMapped = true
}

// Get resolves sourcePath to a target path, or ("", false) on a total miss.
// Descends the trie as far as segments match; if the deepest match fully
// consumes the path and carries a mapped prefix, that prefix is returned
// directly; if segments remain past the deepest mapped ancestor, they are
// appended to that ancestor's prefix, "/"-joined.
func (m *Mapper) Get(sourcePath string) (string, bool) {
	segs := splitPath(sourcePath)
	cur := m.root
	lastMapped := ""
	lastMappedOK := false
	lastMappedDepth := 0
	i := 0
	for i < len(segs) {
		next, ok := cur.children[segs[i]]
		if !ok {
			break
		}
		cur = next
		i++
		if cur.hasMapped {
			lastMapped = cur.mapped
			lastMappedOK = true
			lastMappedDepth = i
		}
	}
	if !lastMappedOK {
		return "", false
	}
	if lastMappedDepth == len(segs) {
		return lastMapped, true
	}
	remaining := segs[lastMappedDepth:]
	return lastMapped + "/" + strings.Join(remaining, "/"), true
}

// LoadFromJSON parses a flat JSON object {"a::b": "types/a/b", ...} and adds
// every entry.
func (m *Mapper) LoadFromJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	for k, v := range flat {
		m.Add(k, v)
	}
	return nil
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "::")
}
