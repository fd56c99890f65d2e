// Package bdd implements Bryant-style Reduced Ordered Binary Decision
// Diagrams (ROBDD): if-then-else node construction with the two canonical
// reductions (no node with low == high, no two nodes sharing a
// (variable, low, high) key), a unique table for structural sharing, and a
// computed table memoizing Ite.
//
// Unlike a general-purpose BDD library, a bdd.BDD here is built once for a
// single decision, queried read-only, and discarded; there is no garbage
// collector, no reference counting and no resizing strategy, since the
// table sizes involved are bounded by the arity of one source-level
// boolean decision.
package bdd
