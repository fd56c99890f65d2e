// Package analysis orchestrates the pipeline from a parsed source file to
// a classified report: collect functions, find decisions within each,
// classify every decision, and aggregate into the stable outbound schema.
package analysis

import (
	"github.com/psychoticbeef/mcdctree/decision"
	"github.com/psychoticbeef/mcdctree/treecheck"
)

// FunctionAnalysis reports every decision found in one function or
// initializer, in source order.
type FunctionAnalysis struct {
	Name      string                        `json:"name"`
	Line      int                           `json:"line"`
	Decisions []treecheck.DecisionAnalysis `json:"decisions"`
}

// OverallClassification is the worst classification among the function's
// decisions, or Tree if it has none.
func (f FunctionAnalysis) OverallClassification() treecheck.Classification {
	worst := treecheck.Tree
	for _, d := range f.Decisions {
		if d.Classification > worst {
			worst = d.Classification
		}
	}
	return worst
}

// FileAnalysis reports every function analyzed in one source file.
type FileAnalysis struct {
	Path      string              `json:"path"`
	Functions []FunctionAnalysis `json:"functions"`
}

// Parser parses a single source file into the function declarations it
// contains, in source order. It is the concrete binding for the host
// parser collaborator described by the decision package's HostNode/
// HostFunc interfaces.
type Parser interface {
	ParseFile(path string) ([]decision.HostFunc, error)
}

// DirLoader discovers and parses every source file under a directory,
// keyed by path. Directory enumeration and any language-specific file
// filtering (build tags, extensions) belong to the implementation.
type DirLoader interface {
	LoadDir(dir string) (map[string][]decision.HostFunc, error)
}
