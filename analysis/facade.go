package analysis

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"github.com/psychoticbeef/mcdctree/decision"
	"github.com/psychoticbeef/mcdctree/treecheck"
)

// Facade is the analysis entry point: parse (or load a directory of)
// source files, find decisions, classify each, and aggregate the results.
type Facade struct {
	parser Parser
	loader DirLoader
	opts   []treecheck.Option
}

// NewFacade builds a Facade. loader may be nil if AnalyzeDir is never
// called.
func NewFacade(parser Parser, loader DirLoader, opts ...treecheck.Option) *Facade {
	return &Facade{parser: parser, loader: loader, opts: opts}
}

// AnalyzeFile parses and classifies a single file.
func (f *Facade) AnalyzeFile(path string) (FileAnalysis, error) {
	funcs, err := f.parser.ParseFile(path)
	if err != nil {
		return FileAnalysis{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.analyze(path, funcs), nil
}

// AnalyzeDir loads every file under dir and classifies them, aggregating
// into a deterministically ordered MultiFileAnalysis. If the loader fails,
// the result is empty and the loader's error is the only element of the
// returned slice. Per-file load or parse errors are not reported: a file
// the loader drops is simply absent from the result.
func (f *Facade) AnalyzeDir(dir string) (MultiFileAnalysis, []error) {
	filesByPath, err := f.loader.LoadDir(dir)
	if err != nil {
		return MultiFileAnalysis{}, []error{fmt.Errorf("load %s: %w", dir, err)}
	}

	// Results are folded into a sorted map keyed by path so that
	// multi-file output is reproducible regardless of the loader's
	// (possibly unordered, e.g. map-driven) directory walk.
	results := immutable.NewSortedMap[string, FileAnalysis](nil)
	for path, funcs := range filesByPath {
		results = results.Set(path, f.analyze(path, funcs))
	}

	files := make([]FileAnalysis, 0, results.Len())
	itr := results.Iterator()
	for {
		_, fa, ok := itr.Next()
		if !ok {
			break
		}
		files = append(files, fa)
	}

	return MultiFileAnalysis{Files: files, Summary: Summarize(files)}, nil
}

func (f *Facade) analyze(path string, funcs []decision.HostFunc) FileAnalysis {
	fa := FileAnalysis{Path: path}
	for _, fn := range funcs {
		found := decision.FindFunctionDecisions(fn)
		decisions := make([]treecheck.DecisionAnalysis, 0, len(found))
		for _, fd := range found {
			decisions = append(decisions, treecheck.Check(fd.Expr, fd.VariableOrder, f.opts...))
		}
		fa.Functions = append(fa.Functions, FunctionAnalysis{Name: fn.Name, Line: fn.Line, Decisions: decisions})
	}
	return fa
}
