package bdd

import (
	"fmt"

	"github.com/psychoticbeef/mcdctree/boolexpr"
)

// Build constructs a fresh BDD for expr under order, an assignment of
// variable indices by position. The returned BDD has its root already set.
func Build(expr boolexpr.Expr, order []string) *BDD {
	b := New(order)
	b.root = b.build(expr)
	b.logStats("build")
	return b
}

func (b *BDD) build(expr boolexpr.Expr) ID {
	switch e := expr.(type) {
	case boolexpr.Var:
		// An unresolved variable (not part of this BDD's order) is
		// mapped to the true terminal. This is a defensive policy: it
		// never triggers when order was derived from the same
		// expression via boolexpr.CollectVariableOrder.
		idx, ok := b.nameIndex[e.Name]
		if !ok {
			return True
		}
		return b.Variable(idx)
	case boolexpr.And:
		return b.And(b.build(e.Left), b.build(e.Right))
	case boolexpr.Or:
		return b.Or(b.build(e.Left), b.build(e.Right))
	case boolexpr.Not:
		return b.Not(b.build(e.Operand))
	default:
		panic(fmt.Sprintf("bdd: unsupported BoolExpr variant %T", expr))
	}
}
