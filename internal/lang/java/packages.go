package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/model"
	"github.com/syntaxpresso/core-sub005/internal/query"
)

const packageDeclQuery = `(package_declaration [(scoped_identifier) (identifier)] @name) @decl`

// PackageDeclaration locates the file's (at most one) package declaration
// and returns its fully qualified name, or "" if the file is in the
// default package.
func PackageDeclaration(f *engine.File) (string, *sitter.Node, error) {
	q, err := query.Compile(f.Language().SitterLanguage(), packageDeclQuery)
	if err != nil {
		return "", nil, model.IOFailure("failed to compile package query", err)
	}
	res := q.Run(f.Root(), f.Source(), nil)
	n := res.FirstNode()
	if n == nil {
		return "", nil, nil
	}
	nameNode, _ := firstCapture(res, "name")
	return f.TextOfNode(nameNode), n, nil
}

// PackageParts splits a fully qualified package name into its leading
// scope and final segment, e.g. "com.example.app" -> ("com.example",
// "app"). Returns ("", name) when name has no dot.
func PackageParts(name string) (scope, last string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

func firstCapture(res *query.Result, name string) (*sitter.Node, bool) {
	for _, m := range res.Captures() {
		if n, ok := m[name]; ok {
			return n, true
		}
	}
	return nil, false
}
