package main

import (
	"path/filepath"
	"strings"
)

// rootDirOf returns the crate-root directory the filesystem spawner should
// search relative to: the input file's parent directory.
func rootDirOf(input string) string {
	return filepath.Dir(input)
}

// rootModuleNameOf derives the crate root's on-disk file stem from the
// input file name, e.g. "src/lib.rs" -> "lib". The spawner substitutes this
// name when resolving the empty root path; the root module's path in the
// generated output stays empty regardless of which file backed it, which is
// what makes the root module land in index.ts.
func rootModuleNameOf(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
