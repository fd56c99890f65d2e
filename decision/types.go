package decision

import "github.com/psychoticbeef/mcdctree/boolexpr"

// FoundDecision pairs an extracted boolean expression with its natural
// (left-to-right, first-occurrence) variable order.
type FoundDecision struct {
	Expr          boolexpr.Expr
	VariableOrder []string
}

// NewFoundDecision extracts the boolean expression rooted at n and derives
// its natural variable order.
func NewFoundDecision(n HostNode) FoundDecision {
	expr := Extract(n)
	return FoundDecision{
		Expr:          expr,
		VariableOrder: boolexpr.CollectVariableOrder(expr),
	}
}
