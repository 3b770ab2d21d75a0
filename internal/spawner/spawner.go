// Package spawner implements the step-spawner external collaborator: given
// a module path, produce the next pipeline.Step to recurse into, or nil to
// discard that branch without error.
package spawner

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/pipeline"
	"github.com/sunholo/typebind/internal/source"
)

// ParseModule turns raw file content into a module's item list; supplied by
// the caller, since parsing real source is an external collaborator
// (spec.md §1), not this pipeline's concern.
type ParseModule func(path []string, content []byte) ([]source.Item, error)

// Discard always returns (nil, nil): every referenced external module is
// silently skipped. Useful for single-file input.
type Discard struct{}

func (Discard) CreateStep(path []string) (*pipeline.Step, error) { return nil, nil }

// Filesystem locates `<root>/<segments>.rs` or `<root>/<segments>/mod.rs`
// relative to a crate root, reads it, and parses it with Parse.
//
// Prefetch may be called once, before the (single-threaded) pipeline walk
// begins, to read a known set of candidate module files concurrently into
// fileCache; CreateStep then serves cache hits instead of touching disk
// again. This is the only place concurrency is allowed to touch this
// system: the core solver/synthesizer/pipeline walk itself stays
// synchronous, only the I/O-bound read side is parallelized.
type Filesystem struct {
	Root      string
	CrateName string
	// RootName is the on-disk file stem of the crate root (e.g. "lib" for
	// "src/lib.rs"), substituted for lookup whenever CreateStep is asked to
	// resolve the empty root path. The crate root's module path is always
	// empty regardless of which file backs it, so this name cannot come
	// from the path argument itself.
	RootName string
	Parse    ParseModule

	mu        sync.RWMutex
	fileCache map[string][]byte
}

// NewFilesystem builds a Filesystem spawner rooted at root. rootName is the
// on-disk file stem used to locate the crate root when CreateStep is called
// with an empty path.
func NewFilesystem(root, crateName, rootName string, parse ParseModule) *Filesystem {
	return &Filesystem{Root: root, CrateName: crateName, RootName: rootName, Parse: parse, fileCache: make(map[string][]byte)}
}

// Prefetch reads every candidate file for paths concurrently (bounded by
// workers) and populates fileCache, so the subsequent synchronous pipeline
// walk's CreateStep calls are cache hits. Read errors other than "not
// found" are collected and the first one is returned; a missing file is simply absent from
// the cache, which CreateStep treats the same as any other miss.
func (f *Filesystem) Prefetch(paths [][]string, workers int) error {
	if workers <= 0 {
		workers = 4
	}
	jobs := make(chan []string)
	var wg sync.WaitGroup
	errs := make(chan error, len(paths))

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				for _, candidate := range f.candidates(path) {
					content, err := os.ReadFile(candidate)
					if err != nil {
						if !os.IsNotExist(err) {
							errs <- errkind.IoError{Err: err}
						}
						continue
					}
					f.mu.Lock()
					f.fileCache[candidate] = content
					f.mu.Unlock()
				}
			}
		}()
	}
	for _, p := range paths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for err := range errs {
		return err
	}
	return nil
}

func (f *Filesystem) candidates(path []string) []string {
	rel := filepath.Join(path...)
	if len(path) == 0 {
		rel = f.RootName
	}
	return []string{
		filepath.Join(f.Root, rel+".rs"),
		filepath.Join(f.Root, rel, "mod.rs"),
	}
}

func (f *Filesystem) cached(path string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	content, ok := f.fileCache[path]
	return content, ok
}

func (f *Filesystem) CreateStep(path []string) (*pipeline.Step, error) {
	for _, candidate := range f.candidates(path) {
		if content, ok := f.cached(candidate); ok {
			items, perr := f.Parse(path, content)
			if perr != nil {
				return nil, perr
			}
			return pipeline.NewStep(path, items, f.CrateName, nil), nil
		}

		content, err := os.ReadFile(candidate)
		if err == nil {
			items, perr := f.Parse(path, content)
			if perr != nil {
				return nil, perr
			}
			return pipeline.NewStep(path, items, f.CrateName, nil), nil
		}
		if !os.IsNotExist(err) {
			return nil, errkind.IoError{Err: err}
		}
	}
	return nil, nil
}
