package decision_test

import "github.com/psychoticbeef/mcdctree/decision"

// fakeNode is a hand-built HostNode used to exercise the extractor and
// finder without a real language parser - the host binding is a thin,
// swappable collaborator per the package's own contract.
type fakeNode struct {
	kind     decision.NodeKind
	children []decision.HostNode
	text     string
}

func (n *fakeNode) Kind() decision.NodeKind       { return n.kind }
func (n *fakeNode) Children() []decision.HostNode { return n.children }
func (n *fakeNode) Text() string                  { return n.text }

func leaf(text string) decision.HostNode {
	return &fakeNode{kind: decision.KindOther, text: text}
}

func and(l, r decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindInfixAnd, children: []decision.HostNode{l, r}}
}

func or(l, r decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindInfixOr, children: []decision.HostNode{l, r}}
}

func not(x decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindPrefixNot, children: []decision.HostNode{x}}
}

func paren(x decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindParenthesized, children: []decision.HostNode{x}}
}

func ternary(cond, then, els decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindTernary, children: []decision.HostNode{cond, then, els}}
}

// block groups unrelated statement-level children together without being a
// decision itself, standing in for an if/for/switch wrapper.
func block(children ...decision.HostNode) decision.HostNode {
	return &fakeNode{kind: decision.KindOther, children: children}
}
