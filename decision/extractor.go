package decision

import (
	"strings"

	"github.com/psychoticbeef/mcdctree/boolexpr"
)

// Extract folds a host expression node into a boolexpr.Expr, following the
// rules in order: parenthesization unwraps, && and || become And/Or, !
// becomes Not, a ternary contributes only its condition, and anything else
// is an atomic Var named after its trimmed source text.
func Extract(n HostNode) boolexpr.Expr {
	switch n.Kind() {
	case KindParenthesized:
		return Extract(n.Children()[0])
	case KindInfixAnd:
		c := n.Children()
		return boolexpr.And{Left: Extract(c[0]), Right: Extract(c[1])}
	case KindInfixOr:
		c := n.Children()
		return boolexpr.Or{Left: Extract(c[0]), Right: Extract(c[1])}
	case KindPrefixNot:
		return boolexpr.Not{Operand: Extract(n.Children()[0])}
	case KindTernary:
		return Extract(n.Children()[0])
	default:
		return boolexpr.Var{Name: strings.TrimSpace(n.Text())}
	}
}
