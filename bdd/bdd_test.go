package bdd_test

import (
	"testing"

	"github.com/psychoticbeef/mcdctree/bdd"
)

func TestMakeNodeEliminatesEqualBranches(t *testing.T) {
	b := bdd.New([]string{"a"})
	v := b.Variable(0)
	if got := b.MakeNode(0, v, v); got != v {
		t.Fatalf("MakeNode with low==high = %v, want %v (I1)", got, v)
	}
}

func TestMakeNodeSharesIdenticalKeys(t *testing.T) {
	b := bdd.New([]string{"a", "b"})
	n1 := b.MakeNode(1, bdd.False, bdd.True)
	n2 := b.MakeNode(1, bdd.False, bdd.True)
	if n1 != n2 {
		t.Fatalf("two calls with the same (variable, low, high) returned distinct ids: %v, %v (I2)", n1, n2)
	}
}

func TestMakeNodeRejectsOutOfOrderChildren(t *testing.T) {
	b := bdd.New([]string{"a", "b"})
	child := b.MakeNode(1, bdd.False, bdd.True)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic from an I3 violation")
		}
	}()
	// child has variable 1; using it as a branch of a node at variable 1
	// (not strictly greater) must panic.
	b.MakeNode(1, child, bdd.True)
}

func TestAndOrNotIdempotent(t *testing.T) {
	b := bdd.New([]string{"a", "b"})
	a, c := b.Variable(0), b.Variable(1)
	first := b.And(a, c)
	second := b.And(a, c)
	if first != second {
		t.Fatalf("Ite is not idempotent: %v != %v", first, second)
	}
	if first, second := b.Or(a, c), b.Or(a, c); first != second {
		t.Fatalf("Or is not idempotent: %v != %v", first, second)
	}
	if first, second := b.Not(a), b.Not(a); first != second {
		t.Fatalf("Not is not idempotent: %v != %v", first, second)
	}
}

func TestNotNotIsIdentity(t *testing.T) {
	b := bdd.New([]string{"a"})
	a := b.Variable(0)
	if got := b.Not(b.Not(a)); got != a {
		t.Fatalf("Not(Not(a)) = %v, want %v", got, a)
	}
}

func TestDeMorgan(t *testing.T) {
	b := bdd.New([]string{"a", "b"})
	a, c := b.Variable(0), b.Variable(1)
	lhs := b.And(a, c)
	rhs := b.Not(b.Or(b.Not(a), b.Not(c)))
	if lhs != rhs {
		t.Fatalf("De Morgan: and(a,b)=%v, not(or(not a, not b))=%v", lhs, rhs)
	}
}

func TestIsTreeAndNodeCountSingleVariable(t *testing.T) {
	// And(Var(x), Var(x)): textually identical leaves are the same
	// variable, so this is a 1-node tree.
	b := bdd.New([]string{"x"})
	x := b.Variable(0)
	root := b.And(x, x)
	if root != x {
		t.Fatalf("And(x, x) should collapse to x itself, got %v", root)
	}
	if got := b.NodeCount(root); got != 1 {
		t.Fatalf("NodeCount = %d, want 1", got)
	}
	if !b.IsTree(root) {
		t.Fatal("single-variable decision must be a tree")
	}
}

func TestAndOfTwoVariablesIsTreeWithTwoNodes(t *testing.T) {
	b := bdd.New([]string{"a", "b"})
	a, c := b.Variable(0), b.Variable(1)
	root := b.And(a, c)
	if got := b.NodeCount(root); got != 2 {
		t.Fatalf("NodeCount = %d, want 2", got)
	}
	if !b.IsTree(root) {
		t.Fatal("a && b must be a tree")
	}
}
