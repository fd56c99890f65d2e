package hostgo

import (
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/psychoticbeef/mcdctree/decision"
)

// funcsFromFile enumerates every func/init declaration with a body in f,
// in source order. Declarations without a body (external stubs, interface
// method sets) are skipped.
func funcsFromFile(fset *token.FileSet, f *ast.File) []decision.HostFunc {
	var funcs []decision.HostFunc
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Body == nil {
			continue
		}
		funcs = append(funcs, decision.HostFunc{
			Name: fd.Name.Name,
			Line: fset.Position(fd.Pos()).Line,
			Body: wrapBlock(fset, fd.Body),
		})
	}
	return funcs
}

// FileParser implements analysis.Parser for a single Go source file using
// go/parser directly - no module resolution needed to read one file's
// syntax tree.
type FileParser struct{}

// NewFileParser returns a ready-to-use FileParser.
func NewFileParser() *FileParser { return &FileParser{} }

// ParseFile implements analysis.Parser.
func (p *FileParser) ParseFile(path string) ([]decision.HostFunc, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	return funcsFromFile(fset, f), nil
}
