package bdd

// Ite computes "if f then g else h", the single primitive every other
// boolean operation in this package is built from. It applies the
// terminal short-circuits before consulting the computed table, so that
// trivial calls never grow the cache.
func (b *BDD) Ite(f, g, h ID) ID {
	switch f {
	case True:
		return g
	case False:
		return h
	}
	if g == True && h == False {
		return f
	}
	if g == h {
		return g
	}

	key := computedKey{f, g, h}
	if id, ok := b.computed[key]; ok {
		b.stats.ComputedHits++
		return id
	}
	b.stats.ComputedMisses++

	top := minVariable(b.variableOf(f), b.variableOf(g), b.variableOf(h))

	low := b.Ite(b.restrict(f, top, false), b.restrict(g, top, false), b.restrict(h, top, false))
	high := b.Ite(b.restrict(f, top, true), b.restrict(g, top, true), b.restrict(h, top, true))
	result := b.MakeNode(top, low, high)

	b.computed[key] = result
	return result
}

// And returns the conjunction of f and g.
func (b *BDD) And(f, g ID) ID { return b.Ite(f, g, False) }

// Or returns the disjunction of f and g.
func (b *BDD) Or(f, g ID) ID { return b.Ite(f, True, g) }

// Not returns the negation of f.
func (b *BDD) Not(f ID) ID { return b.Ite(f, False, True) }

// restrict substitutes bit for the variable at index v in the function
// denoted by x. On a terminal it is the identity. On an internal node with
// variable w: if w == v, it follows the high branch when bit is true and
// the low branch otherwise; if w > v, variable v does not occur in this
// subtree (ordering I3) and restrict is the identity; w < v never occurs
// given the way Ite chooses v as the minimum variable among its operands.
func (b *BDD) restrict(x ID, v int, bit bool) ID {
	if b.isTerminal(x) {
		return x
	}
	w := b.nodes[x].variable
	switch {
	case w == v:
		if bit {
			return b.nodes[x].high
		}
		return b.nodes[x].low
	case w > v:
		return x
	default:
		invariantBreach("%w: restrict encountered variable %d below target %d", ErrInvariant, w, v)
		return False // unreachable
	}
}

func minVariable(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
