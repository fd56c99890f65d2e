// Command mcdctree decides, for every compound boolean decision in a Go
// source tree, whether branch coverage of the compiled decision implies
// masking MC/DC - i.e. whether the decision's ROBDD is tree-shaped under
// its natural evaluation order - and proposes a variable reordering when
// it is not but could be made so.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err == flag.ErrHelp {
		os.Exit(1)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `
mcdctree decides whether branch coverage of a compound boolean decision
implies masking MC/DC, following the ROBDD tree criterion of Comar et al.

Usage:

	mcdctree [flags] <path>...

Paths may be files or directories; directories are scanned recursively.
An optional .mcdctree.yaml next to the analysis root supplies defaults
that flags below override.

Flags:

	-json                 emit the structured JSON report
	-summary              print only the aggregate summary
	-max-reorder-vars N   maximum decision arity eligible for reorder search (default 5)
	-exclude PATTERNS     comma-separated glob patterns to skip, matched against file names
	-file-ext EXT         extension handled when a path argument is a plain file (default .go)
`[1:])
}
