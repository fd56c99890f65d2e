package treecheck

import (
	"github.com/psychoticbeef/mcdctree/bdd"
	"github.com/psychoticbeef/mcdctree/boolexpr"
)

// DefaultMaxReorderVariables bounds the arity eligible for the exhaustive
// permutation search: 5 variables, 120 permutations.
const DefaultMaxReorderVariables = 5

type config struct {
	maxReorderVariables int
}

// Option configures a call to Check.
type Option func(*config)

// WithMaxReorderVariables overrides DefaultMaxReorderVariables.
func WithMaxReorderVariables(n int) Option {
	return func(c *config) { c.maxReorderVariables = n }
}

// Check classifies the decision expr under originalOrder. If the decision
// is not already a tree and its arity is within the configured bound, it
// exhaustively searches permutations of originalOrder for one under which
// the decision's BDD is tree-shaped, returning the first such permutation
// found in Permutations' deterministic order.
//
// conditionCount and nodeCount are always reported from the decision's
// BDD under originalOrder, even when a reordering is later suggested.
func Check(expr boolexpr.Expr, originalOrder []string, opts ...Option) DecisionAnalysis {
	cfg := config{maxReorderVariables: DefaultMaxReorderVariables}
	for _, opt := range opts {
		opt(&cfg)
	}

	original := bdd.Build(expr, originalOrder)
	analysis := DecisionAnalysis{
		ConditionCount: len(original.Variables(original.Root())),
		NodeCount:      original.NodeCount(original.Root()),
		OriginalOrder:  originalOrder,
	}

	if original.IsTree(original.Root()) {
		analysis.Classification = Tree
		return analysis
	}

	if len(originalOrder) <= cfg.maxReorderVariables {
		for _, perm := range Permutations(originalOrder) {
			candidate := bdd.Build(expr, perm)
			if candidate.IsTree(candidate.Root()) {
				analysis.Classification = NonTreeCorrectable
				analysis.SuggestedOrder = perm
				return analysis
			}
		}
	}

	analysis.Classification = NonTreeNonCorrectable
	return analysis
}
