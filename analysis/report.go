package analysis

import (
	gojson "github.com/goccy/go-json"

	"github.com/psychoticbeef/mcdctree/treecheck"
)

// MultiFileAnalysis is the top-level outbound schema for a run over
// several files.
type MultiFileAnalysis struct {
	Files   []FileAnalysis `json:"files"`
	Summary Summary        `json:"summary"`
}

// NonTreeEntry points at one function with at least one non-tree decision.
type NonTreeEntry struct {
	File      string                       `json:"file"`
	Function  string                       `json:"function"`
	Line      int                          `json:"line"`
	Decisions []treecheck.DecisionAnalysis `json:"decisions"`
}

// Summary aggregates counts across every analyzed file.
type Summary struct {
	FilesAnalyzed           int            `json:"filesAnalyzed"`
	TotalFunctions          int            `json:"totalFunctions"`
	FunctionsWithDecisions  int            `json:"functionsWithDecisions"`
	TotalDecisions          int            `json:"totalDecisions"`
	TreeDecisions           int            `json:"treeDecisions"`
	CorrectableDecisions    int            `json:"correctableDecisions"`
	NonCorrectableDecisions int            `json:"nonCorrectableDecisions"`
	NonTreeEntries          []NonTreeEntry `json:"nonTreeEntries"`
}

// Summarize folds a list of FileAnalysis into the aggregate Summary.
func Summarize(files []FileAnalysis) Summary {
	s := Summary{FilesAnalyzed: len(files)}
	for _, file := range files {
		for _, fn := range file.Functions {
			s.TotalFunctions++
			if len(fn.Decisions) == 0 {
				continue
			}
			s.FunctionsWithDecisions++

			var nonTree []treecheck.DecisionAnalysis
			for _, d := range fn.Decisions {
				s.TotalDecisions++
				switch d.Classification {
				case treecheck.Tree:
					s.TreeDecisions++
				case treecheck.NonTreeCorrectable:
					s.CorrectableDecisions++
					nonTree = append(nonTree, d)
				case treecheck.NonTreeNonCorrectable:
					s.NonCorrectableDecisions++
					nonTree = append(nonTree, d)
				}
			}
			if len(nonTree) > 0 {
				s.NonTreeEntries = append(s.NonTreeEntries, NonTreeEntry{
					File:      file.Path,
					Function:  fn.Name,
					Line:      fn.Line,
					Decisions: nonTree,
				})
			}
		}
	}
	return s
}

// JSON renders m using the stable outbound schema, indented for
// readability.
func (m MultiFileAnalysis) JSON() ([]byte, error) {
	return gojson.MarshalIndent(m, "", "  ")
}

// JSON renders a single file's analysis using the stable outbound schema.
func (f FileAnalysis) JSON() ([]byte, error) {
	return gojson.MarshalIndent(f, "", "  ")
}
