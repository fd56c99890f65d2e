// Package hostgo is the concrete, Go-source binding for the decision
// package's host parser collaborator. It is intentionally thin: parsing
// and operator resolution are handled entirely by go/parser and go/ast: no
// boolean-specific logic lives here beyond mapping Go's && / || / ! onto
// decision.NodeKind.
//
// Go has no ternary operator, so this binding never produces a
// decision.KindTernary node; that extraction rule is only exercised
// directly against the decision package's interfaces, by design.
package hostgo

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/psychoticbeef/mcdctree/decision"
)

type node struct {
	kind     decision.NodeKind
	children []decision.HostNode
	text     string
}

func (n *node) Kind() decision.NodeKind       { return n.kind }
func (n *node) Children() []decision.HostNode { return n.children }
func (n *node) Text() string                  { return n.text }

// wrapExpr folds a go/ast expression into a decision.HostNode. Parens are
// stripped with astutil.Unparen before inspecting the expression shape, so
// this binding never emits decision.KindParenthesized either - equivalent
// in effect to extractor rule 1, applied one layer earlier.
func wrapExpr(fset *token.FileSet, e ast.Expr) decision.HostNode {
	e = astutil.Unparen(e)
	switch x := e.(type) {
	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND:
			return &node{kind: decision.KindInfixAnd, children: []decision.HostNode{wrapExpr(fset, x.X), wrapExpr(fset, x.Y)}}
		case token.LOR:
			return &node{kind: decision.KindInfixOr, children: []decision.HostNode{wrapExpr(fset, x.X), wrapExpr(fset, x.Y)}}
		default:
			return leaf(fset, e)
		}
	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return &node{kind: decision.KindPrefixNot, children: []decision.HostNode{wrapExpr(fset, x.X)}}
		}
		return leaf(fset, e)
	default:
		return leaf(fset, e)
	}
}

func leaf(fset *token.FileSet, e ast.Expr) decision.HostNode {
	var buf bytes.Buffer
	// Best-effort source rendering; printer never errors on a valid
	// go/ast expression produced by go/parser.
	_ = printer.Fprint(&buf, fset, e)
	// The leaf's direct sub-expressions (and function literal bodies) are
	// kept as children so the finder can reach decisions nested in calls,
	// comparisons and other atoms; Extract only reads the leaf's text.
	var children []decision.HostNode
	ast.Inspect(e, func(n ast.Node) bool {
		if n == nil || n == ast.Node(e) {
			return true
		}
		switch v := n.(type) {
		case ast.Expr:
			children = append(children, wrapExpr(fset, v))
			return false
		case *ast.BlockStmt:
			children = append(children, wrapBlock(fset, v))
			return false
		}
		return true
	})
	return &node{kind: decision.KindOther, children: children, text: strings.TrimSpace(buf.String())}
}
