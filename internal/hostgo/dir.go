package hostgo

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/psychoticbeef/mcdctree/decision"
)

// DirLoader implements analysis.DirLoader for a tree of Go packages,
// using golang.org/x/tools/go/packages for build-tag- and module-aware
// file discovery instead of a hand-rolled filepath.WalkDir.
type DirLoader struct {
	Excludes []string
}

// NewDirLoader returns a DirLoader that skips any file matching one of the
// given glob patterns (matched against the file's base name).
func NewDirLoader(excludes []string) *DirLoader {
	return &DirLoader{Excludes: excludes}
}

// LoadDir implements analysis.DirLoader.
func (l *DirLoader) LoadDir(dir string) (map[string][]decision.HostFunc, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("load packages under %s: %w", dir, err)
	}

	result := make(map[string][]decision.HostFunc)
	for _, pkg := range pkgs {
		// A package with load errors may still offer partial syntax for
		// its parseable files; we analyze what we have rather than
		// failing the whole directory, matching the ParseError contract.
		for i, file := range pkg.Syntax {
			if i >= len(pkg.CompiledGoFiles) {
				continue
			}
			path := pkg.CompiledGoFiles[i]
			if l.excluded(path) {
				continue
			}
			result[path] = funcsFromFile(pkg.Fset, file)
		}
	}
	return result, nil
}

func (l *DirLoader) excluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range l.Excludes {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
