package bdd_test

import (
	"testing"

	"github.com/psychoticbeef/mcdctree/bdd"
	"github.com/psychoticbeef/mcdctree/boolexpr"
)

func TestBuildScenario1_AndIsTree(t *testing.T) {
	// a && b, order [a, b] -> 2 nodes, tree.
	expr := boolexpr.And{Left: boolexpr.Var{Name: "a"}, Right: boolexpr.Var{Name: "b"}}
	b := bdd.Build(expr, []string{"a", "b"})
	if got := b.NodeCount(b.Root()); got != 2 {
		t.Fatalf("NodeCount = %d, want 2", got)
	}
	if !b.IsTree(b.Root()) {
		t.Fatal("a && b must be a tree")
	}
}

func TestBuildScenario2_OrIsTree(t *testing.T) {
	expr := boolexpr.Or{Left: boolexpr.Var{Name: "a"}, Right: boolexpr.Var{Name: "b"}}
	b := bdd.Build(expr, []string{"a", "b"})
	if got := b.NodeCount(b.Root()); got != 2 {
		t.Fatalf("NodeCount = %d, want 2", got)
	}
	if !b.IsTree(b.Root()) {
		t.Fatal("a || b must be a tree")
	}
}

func TestBuildScenario3_CorrectableUnderOriginalOrder(t *testing.T) {
	// (b && c) || a, order [b, c, a] -> 3 nodes, NOT a tree.
	expr := boolexpr.Or{
		Left:  boolexpr.And{Left: boolexpr.Var{Name: "b"}, Right: boolexpr.Var{Name: "c"}},
		Right: boolexpr.Var{Name: "a"},
	}
	b := bdd.Build(expr, []string{"b", "c", "a"})
	if got := b.NodeCount(b.Root()); got != 3 {
		t.Fatalf("NodeCount = %d, want 3", got)
	}
	if b.IsTree(b.Root()) {
		t.Fatal("(b && c) || a under [b,c,a] must not be a tree")
	}
	// Under [b, a, c] it becomes a tree.
	reordered := bdd.Build(expr, []string{"b", "a", "c"})
	if !reordered.IsTree(reordered.Root()) {
		t.Fatal("(b && c) || a under [b,a,c] must be a tree")
	}
}

func TestBuildScenario4_OrOfAndIsTree(t *testing.T) {
	// a || (b && c), order [a, b, c] -> 3 nodes, tree.
	expr := boolexpr.Or{
		Left:  boolexpr.Var{Name: "a"},
		Right: boolexpr.And{Left: boolexpr.Var{Name: "b"}, Right: boolexpr.Var{Name: "c"}},
	}
	b := bdd.Build(expr, []string{"a", "b", "c"})
	if got := b.NodeCount(b.Root()); got != 3 {
		t.Fatalf("NodeCount = %d, want 3", got)
	}
	if !b.IsTree(b.Root()) {
		t.Fatal("a || (b && c) must be a tree")
	}
}

func TestBuildScenario5_NegatedVariableIsTree(t *testing.T) {
	// !a && b, order [a, b] -> tree.
	expr := boolexpr.And{Left: boolexpr.Not{Operand: boolexpr.Var{Name: "a"}}, Right: boolexpr.Var{Name: "b"}}
	b := bdd.Build(expr, []string{"a", "b"})
	if !b.IsTree(b.Root()) {
		t.Fatal("!a && b must be a tree")
	}
}

func TestBuildScenario6_LargeArityNonCorrectable(t *testing.T) {
	v := func(name string) boolexpr.Expr { return boolexpr.Var{Name: name} }
	and3 := func(x, y, z string) boolexpr.Expr { return boolexpr.And{Left: boolexpr.And{Left: v(x), Right: v(y)}, Right: v(z)} }
	expr := boolexpr.Or{
		Left: boolexpr.Or{
			Left: boolexpr.Or{
				Left:  boolexpr.Or{Left: and3("a", "b", "c"), Right: and3("d", "e", "f")},
				Right: boolexpr.And{Left: v("a"), Right: v("d")},
			},
			Right: boolexpr.And{Left: v("b"), Right: v("e")},
		},
		Right: boolexpr.And{Left: v("c"), Right: v("f")},
	}
	order := []string{"a", "b", "c", "d", "e", "f"}
	b := bdd.Build(expr, order)
	if b.IsTree(b.Root()) {
		t.Fatal("6-variable mutually-referencing decision must not be a tree under its natural order")
	}
}

func TestUnresolvedVariableMapsToTrue(t *testing.T) {
	expr := boolexpr.Var{Name: "unknown"}
	b := bdd.Build(expr, []string{"known"})
	if b.Root() != bdd.True {
		t.Fatalf("unresolved variable should map to the true terminal, got %v", b.Root())
	}
}
