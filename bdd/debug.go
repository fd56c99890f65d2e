package bdd

import (
	"fmt"
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Dump returns a human-readable rendering of every internal node reachable
// from root, one line per node formatted with fmt, keyed by identifier. It
// is the equivalent of the teacher library's hand-rolled table printer.
func (b *BDD) Dump(root ID) string {
	var sb strings.Builder
	for _, id := range b.reachableInternal(root) {
		n := b.nodes[id]
		fmt.Fprintf(&sb, "%d: var=%s low=%d high=%d\n", id, b.variableName(n.variable), n.low, n.high)
	}
	return sb.String()
}

func (b *BDD) variableName(index int) string {
	if index >= 0 && index < len(b.variableNames) {
		return b.variableNames[index]
	}
	return fmt.Sprintf("#%d", index)
}

// logStats writes the current Stats to the standard logger when Debug is
// enabled, in the spirit of the teacher library's _LOGLEVEL-gated prints.
func (b *BDD) logStats(stage string) {
	if !b.Debug {
		return
	}
	log.Printf("bdd[%s]: %s", stage, spew.Sdump(b.stats))
}
