package bdd

import "math"

// ID identifies a node in a BDD. The two terminal identifiers, False and
// True, are the only representations of the constant boolean functions;
// every other identifier refers to an internal node.
type ID int

// The terminal identifiers. They are reserved across every BDD: internal
// nodes are always allocated starting at 2.
const (
	False ID = 0
	True  ID = 1
)

// infinity is the "variable index" contributed by a terminal when computing
// the top variable of an Ite call; terminals never constrain ordering.
const infinity = math.MaxInt32

type nodeRecord struct {
	variable   int
	low, high  ID
}

type uniqueKey struct {
	variable   int
	low, high  ID
}

type computedKey struct {
	f, g, h ID
}

// Stats reports advisory counters about a BDD's construction, useful for
// judging the cost of a reorder search. Nothing in this package depends on
// these values being accurate across concurrent use of a single BDD; a BDD
// is not meant to be shared across goroutines.
type Stats struct {
	NodesBuilt     int
	UniqueHits     int
	UniqueMisses   int
	ComputedHits   int
	ComputedMisses int
}

// BDD is a single, disposable Reduced Ordered Binary Decision Diagram. Each
// analyzed decision gets a fresh BDD; nothing is shared between BDDs.
type BDD struct {
	// Debug enables logging of the Stats counters to the standard logger,
	// mirroring the teacher library's build-time debug flag but as a
	// per-instance setting. Individual nodes are not logged. Build creates
	// its BDD with Debug unset, so Build itself never logs.
	Debug bool

	nodes    []nodeRecord // index 0 and 1 are placeholders for the terminals
	unique   map[uniqueKey]ID
	computed map[computedKey]ID

	variableNames []string
	nameIndex     map[string]int

	root  ID
	stats Stats
}

// New creates an empty BDD parameterized by variableNames, an ordered list
// assigning a variable index to each name (variableNames[i] has index i).
func New(variableNames []string) *BDD {
	nameIndex := make(map[string]int, len(variableNames))
	for i, name := range variableNames {
		nameIndex[name] = i
	}
	return &BDD{
		nodes:         make([]nodeRecord, 2, 2+2*len(variableNames)),
		unique:        make(map[uniqueKey]ID),
		computed:      make(map[computedKey]ID),
		variableNames: variableNames,
		nameIndex:     nameIndex,
	}
}

// Root returns the node the BDD was built to represent. It is the zero
// value (False) until set by Build or SetRoot.
func (b *BDD) Root() ID { return b.root }

// SetRoot records the node representing the decision's boolean function.
func (b *BDD) SetRoot(root ID) { b.root = root }

// VariableNames returns the ordered list of variable names this BDD was
// constructed with.
func (b *BDD) VariableNames() []string { return b.variableNames }

// VariableIndex resolves a variable name to its index under this BDD's
// order. The second return value is false if name is not one of the
// variables this BDD was built with.
func (b *BDD) VariableIndex(name string) (int, bool) {
	idx, ok := b.nameIndex[name]
	return idx, ok
}

// Stats returns a snapshot of the advisory counters gathered so far.
func (b *BDD) Stats() Stats { return b.stats }

func (b *BDD) isTerminal(id ID) bool { return id == False || id == True }

func (b *BDD) variableOf(id ID) int {
	if b.isTerminal(id) {
		return infinity
	}
	return b.nodes[id].variable
}

func (b *BDD) low(id ID) ID  { return b.nodes[id].low }
func (b *BDD) high(id ID) ID { return b.nodes[id].high }

// MakeNode returns a node identifier for (variable, low, high), honoring
// the elimination rule I1 (low == high collapses to that branch) and the
// sharing rule I2 (an existing node with the same key is reused). It
// panics with an *InvariantError if the ordering invariant I3 would be
// broken by the new node.
func (b *BDD) MakeNode(variable int, low, high ID) ID {
	if low == high {
		return low
	}
	key := uniqueKey{variable, low, high}
	if id, ok := b.unique[key]; ok {
		b.stats.UniqueHits++
		return id
	}
	b.stats.UniqueMisses++
	b.checkOrder(variable, low, high)
	id := ID(len(b.nodes))
	b.nodes = append(b.nodes, nodeRecord{variable: variable, low: low, high: high})
	b.unique[key] = id
	b.stats.NodesBuilt++
	return id
}

// Variable returns the node representing the i'th variable in positive
// form: make_node(i, False, True).
func (b *BDD) Variable(index int) ID {
	return b.MakeNode(index, False, True)
}

func (b *BDD) checkOrder(variable int, low, high ID) {
	for _, child := range [2]ID{low, high} {
		if !b.isTerminal(child) && b.nodes[child].variable <= variable {
			invariantBreach("%w: variable %d must precede child variable %d", ErrInvariant, variable, b.nodes[child].variable)
		}
	}
}
