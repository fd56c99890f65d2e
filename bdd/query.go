package bdd

// reachableInternal returns the internal (non-terminal) nodes reachable
// from root, each visited exactly once, in depth-first pre-order (low branch
// before high). A node shared by several parents is listed at its first
// visit, which may come before some of those parents. The local visited set is fresh on
// every call, as the queries below are meant to be used once per decision.
func (b *BDD) reachableInternal(root ID) []ID {
	if b.isTerminal(root) {
		return nil
	}
	visited := make(map[ID]bool)
	var order []ID
	var walk func(ID)
	walk = func(id ID) {
		if b.isTerminal(id) || visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		walk(b.nodes[id].low)
		walk(b.nodes[id].high)
	}
	walk(root)
	return order
}

// NodeCount returns the number of distinct internal nodes reachable from
// root.
func (b *BDD) NodeCount(root ID) int {
	return len(b.reachableInternal(root))
}

// Variables returns the set of variable indices appearing on internal
// nodes reachable from root.
func (b *BDD) Variables(root ID) map[int]struct{} {
	vars := make(map[int]struct{})
	for _, id := range b.reachableInternal(root) {
		vars[b.nodes[id].variable] = struct{}{}
	}
	return vars
}

// IsTree reports whether every internal node reachable from root has
// in-degree at most one among reachable internal nodes; terminals are
// excluded since they are expected to be shared by every BDD.
func (b *BDD) IsTree(root ID) bool {
	refcount := make(map[ID]int)
	for _, id := range b.reachableInternal(root) {
		for _, child := range [2]ID{b.nodes[id].low, b.nodes[id].high} {
			if b.isTerminal(child) {
				continue
			}
			refcount[child]++
			if refcount[child] >= 2 {
				return false
			}
		}
	}
	return true
}
