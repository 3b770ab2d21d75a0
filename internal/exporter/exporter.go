// Package exporter implements the exporter external collaborator (spec.md
// §6): consuming one ModuleStepResultData per module and rendering it to
// stdout, a file tree, or a check-mode diff report.
package exporter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/sunholo/typebind/internal/pipeline"
	"github.com/sunholo/typebind/internal/tidlast"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// Stdout writes every module's rendered TIDL to a single writer, preceded
// by a banner naming its module path.
type Stdout struct {
	Out    io.Writer
	Header tidlast.HeaderStyle
}

func (e *Stdout) ExportModule(data pipeline.ModuleStepResultData) error {
	fmt.Fprintf(e.Out, "%s %s\n", cyan("//"), strings.Join(data.Path, "::"))
	fmt.Fprint(e.Out, tidlast.RenderFile(e.Header, data.Imports, data.Exports))
	fmt.Fprintln(e.Out)
	return nil
}

func (e *Stdout) Finish() error { return nil }

// File writes each module to `<root>/<segments>.ts`, creating parent
// directories as needed.
type File struct {
	Root   string
	Header tidlast.HeaderStyle
}

func (e *File) ExportModule(data pipeline.ModuleStepResultData) error {
	path := e.targetPath(data.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	content := tidlast.RenderFile(e.Header, data.Imports, data.Exports)
	return os.WriteFile(path, []byte(content), 0o644)
}

func (e *File) Finish() error { return nil }

// targetPath maps a module's path to its output file. The crate root always
// carries an empty path (spec.md §6), which lands in index.ts regardless of
// which on-disk file produced it.
func (e *File) targetPath(modulePath []string) string {
	if len(modulePath) == 0 {
		return filepath.Join(e.Root, "index.ts")
	}
	return filepath.Join(e.Root, filepath.Join(modulePath...)+".ts")
}

// Check compares generated output against what's already on disk, without
// writing anything. It accumulates a diff map across every exported module
// and reports a colorized summary when Finish is called; Finish returns a
// non-nil error if any file differed or was missing.
type Check struct {
	Root   string
	Header tidlast.HeaderStyle

	diffs   map[string]string // path -> human-readable reason
	checked int
}

func (e *Check) ExportModule(data pipeline.ModuleStepResultData) error {
	if e.diffs == nil {
		e.diffs = make(map[string]string)
	}
	e.checked++

	path := (&File{Root: e.Root}).targetPath(data.Path)
	want := tidlast.RenderFile(e.Header, data.Imports, data.Exports)

	got, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		e.diffs[path] = "missing"
		return nil
	}
	if err != nil {
		return err
	}
	if !bytes.Equal(got, []byte(want)) {
		e.diffs[path] = "content differs"
	}
	return nil
}

func (e *Check) Finish() error {
	if len(e.diffs) == 0 {
		fmt.Printf("%s %d module(s) up to date\n", green("check:"), e.checked)
		return nil
	}
	fmt.Printf("%s %d of %d module(s) out of date:\n", red("check:"), len(e.diffs), e.checked)
	for path, reason := range e.diffs {
		fmt.Printf("  %s %s (%s)\n", yellow("-"), path, reason)
	}
	return fmt.Errorf("check: %d module(s) out of date", len(e.diffs))
}
