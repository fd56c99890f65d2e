package hostgo

import (
	"go/ast"
	"go/token"

	"github.com/psychoticbeef/mcdctree/decision"
)

// wrapBlock folds every statement of a block into a single KindOther node,
// so the decision finder can walk into each without treating the block
// itself as a decision.
func wrapBlock(fset *token.FileSet, block *ast.BlockStmt) decision.HostNode {
	if block == nil {
		return &node{kind: decision.KindOther}
	}
	children := make([]decision.HostNode, 0, len(block.List))
	for _, stmt := range block.List {
		children = append(children, wrapStmt(fset, stmt))
	}
	return &node{kind: decision.KindOther, children: children}
}

// wrapStmt folds one statement into a HostNode exposing every
// sub-expression and nested statement a decision could hide in. The common
// control-flow statements are handled explicitly for clarity; anything
// else falls back to a generic expression sweep so no statement kind
// silently drops a decision.
func wrapStmt(fset *token.FileSet, stmt ast.Stmt) decision.HostNode {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return wrapBlock(fset, s)
	case *ast.IfStmt:
		children := []decision.HostNode{}
		if s.Init != nil {
			children = append(children, wrapStmt(fset, s.Init))
		}
		if s.Cond != nil {
			children = append(children, wrapExpr(fset, s.Cond))
		}
		children = append(children, wrapBlock(fset, s.Body))
		if s.Else != nil {
			children = append(children, wrapStmt(fset, s.Else))
		}
		return &node{kind: decision.KindOther, children: children}
	case *ast.ForStmt:
		children := []decision.HostNode{}
		if s.Init != nil {
			children = append(children, wrapStmt(fset, s.Init))
		}
		if s.Cond != nil {
			children = append(children, wrapExpr(fset, s.Cond))
		}
		if s.Post != nil {
			children = append(children, wrapStmt(fset, s.Post))
		}
		children = append(children, wrapBlock(fset, s.Body))
		return &node{kind: decision.KindOther, children: children}
	case *ast.SwitchStmt:
		children := []decision.HostNode{}
		if s.Init != nil {
			children = append(children, wrapStmt(fset, s.Init))
		}
		if s.Tag != nil {
			children = append(children, wrapExpr(fset, s.Tag))
		}
		children = append(children, wrapCaseClauses(fset, s.Body))
		return &node{kind: decision.KindOther, children: children}
	case *ast.ExprStmt:
		return wrapExpr(fset, s.X)
	case *ast.ReturnStmt:
		return wrapExprList(fset, s.Results)
	case *ast.AssignStmt:
		return wrapExprList(fset, s.Rhs)
	case *ast.LabeledStmt:
		return wrapStmt(fset, s.Stmt)
	default:
		// RangeStmt, TypeSwitchStmt, SelectStmt, GoStmt, DeferStmt,
		// SendStmt, DeclStmt, IncDecStmt and any future statement kind:
		// sweep every direct expression child with go/ast's own walker
		// instead of hand-enumerating every field of every node type.
		return wrapGeneric(fset, s)
	}
}

func wrapCaseClauses(fset *token.FileSet, body *ast.BlockStmt) decision.HostNode {
	if body == nil {
		return &node{kind: decision.KindOther}
	}
	var children []decision.HostNode
	for _, stmt := range body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			children = append(children, wrapStmt(fset, stmt))
			continue
		}
		children = append(children, wrapExprsSlice(fset, clause.List)...)
		for _, body := range clause.Body {
			children = append(children, wrapStmt(fset, body))
		}
	}
	return &node{kind: decision.KindOther, children: children}
}

func wrapExprList(fset *token.FileSet, exprs []ast.Expr) decision.HostNode {
	return &node{kind: decision.KindOther, children: wrapExprsSlice(fset, exprs)}
}

func wrapExprsSlice(fset *token.FileSet, exprs []ast.Expr) []decision.HostNode {
	children := make([]decision.HostNode, 0, len(exprs))
	for _, e := range exprs {
		children = append(children, wrapExpr(fset, e))
	}
	return children
}

// wrapGeneric visits stmt's immediate expression and nested-block/statement
// children without recursing through go/ast.Inspect's full subtree, so
// wrapExpr/wrapStmt stay the single place that interprets a node's shape.
func wrapGeneric(fset *token.FileSet, stmt ast.Stmt) decision.HostNode {
	var children []decision.HostNode
	ast.Inspect(stmt, func(n ast.Node) bool {
		if n == nil || n == ast.Node(stmt) {
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
	return &node{kind: decision.KindOther, children: children}
}
