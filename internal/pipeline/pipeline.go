package pipeline

import (
	"github.com/sunholo/typebind/internal/errkind"
	"github.com/sunholo/typebind/internal/pathmap"
)

// Exporter is the exporter contract (spec.md §6): exportModule is called
// once per module in post-order (children before parents, root last);
// Finish runs once after every module has been exported.
type Exporter interface {
	ExportModule(data ModuleStepResultData) error
	Finish() error
}

// Pipeline ties a spawner, path mapper, and macro chain together and
// drives one end-to-end run. Each module step builds its own synthesizer
// bound to its own import context (spec.md §5: an ImportContext is owned
// by exactly one module step).
type Pipeline struct {
	Spawner Spawner
	Mapper  *pathmap.Mapper
	Macros  MacroChain
}

// New builds a Pipeline. mapper and macros may be nil (no mapping, no
// macro support, matching the spec's "empty by default" macro chain).
func New(spawner Spawner, mapper *pathmap.Mapper, macros MacroChain) *Pipeline {
	return &Pipeline{Spawner: spawner, Mapper: mapper, Macros: macros}
}

// Run asks the spawner for the root module, launches it, flattens the
// resulting tree post-order (children before parents), and hands every
// module with content to the exporter, finishing with exp.Finish.
func (p *Pipeline) Run(rootPath []string, exp Exporter) error {
	root, err := p.Spawner.CreateStep(rootPath)
	if err != nil {
		return err
	}
	if root == nil {
		return errkind.FailedToLaunch{}
	}

	result, err := root.Launch(p.Spawner, p.Mapper, p.Macros)
	if err != nil {
		return err
	}

	flat := flatten(result)
	for _, data := range flat {
		if !data.HasContent() {
			continue
		}
		if err := exp.ExportModule(data); err != nil {
			return err
		}
	}
	return exp.Finish()
}

// flatten walks the module tree post-order: every child's data appears
// before its parent's, matching the exporter's ordering guarantee.
func flatten(r ModuleStepResult) []ModuleStepResultData {
	var out []ModuleStepResultData
	for _, child := range r.Children {
		out = append(out, flatten(child)...)
	}
	out = append(out, r.Data)
	return out
}
