package java

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/model"
	"github.com/syntaxpresso/core-sub005/internal/query"
)

const importDeclQuery = `(import_declaration (scoped_identifier) @name) @decl`

// Imports enumerates every import declaration's fully qualified name, in
// source order.
func Imports(f *engine.File) ([]string, error) {
	q, err := query.Compile(f.Language().SitterLanguage(), importDeclQuery)
	if err != nil {
		return nil, model.IOFailure("failed to compile import query", err)
	}
	res := q.Run(f.Root(), f.Source(), nil)
	var names []string
	for _, n := range res.NodesFrom("name") {
		names = append(names, f.TextOfNode(n))
	}
	return names, nil
}

// HasImport reports whether fqName is already imported.
func HasImport(f *engine.File, fqName string) (bool, error) {
	names, err := Imports(f)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == fqName {
			return true, nil
		}
	}
	return false, nil
}

// AddImport inserts "import <fqName>;" alphabetically after the package
// declaration (or at the top of the file when there is none) and before
// the first top-level declaration, deduplicated. A no-op if fqName is
// already imported (Import idempotence, §8).
func AddImport(f *engine.File, fqName string) error {
	has, err := HasImport(f, fqName)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	existing, err := importDeclNodes(f)
	if err != nil {
		return err
	}
	line := fmt.Sprintf("import %s;\n", fqName)

	insertAt := insertionPoint(existing, fqName, f)
	if insertAt != nil {
		return f.InsertBefore(insertAt, []byte(line))
	}
	if len(existing) > 0 {
		// Sorts after every existing import: append after the last one.
		return f.InsertAfter(existing[len(existing)-1], []byte("\n"+strings.TrimRight(line, "\n")))
	}

	// No imports yet: insert after the package declaration, or at file start.
	_, pkgNode, err := PackageDeclaration(f)
	if err != nil {
		return err
	}
	if pkgNode != nil {
		return f.InsertAfter(pkgNode, []byte("\n"+strings.TrimRight(line, "\n")))
	}
	return f.InsertBefore(f.Root(), []byte(line))
}

// RemoveImport deletes the import declaration for fqName, if present.
func RemoveImport(f *engine.File, fqName string) error {
	nodes, err := importDeclNodes(f)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		name, _ := firstNameWithin(f, n)
		if name == fqName {
			return f.ReplaceNode(n, nil)
		}
	}
	return nil
}

func importDeclNodes(f *engine.File) ([]*sitter.Node, error) {
	q, err := query.Compile(f.Language().SitterLanguage(), `(import_declaration) @decl`)
	if err != nil {
		return nil, model.IOFailure("failed to compile import query", err)
	}
	res := q.Run(f.Root(), f.Source(), nil)
	return res.NodesFrom("decl"), nil
}

func firstNameWithin(f *engine.File, decl *sitter.Node) (string, bool) {
	q, err := query.Compile(f.Language().SitterLanguage(), `(scoped_identifier) @name`)
	if err != nil {
		return "", false
	}
	res := q.Run(decl, f.Source(), nil)
	n := res.FirstNode()
	if n == nil {
		return "", false
	}
	return f.TextOfNode(n), true
}

// insertionPoint returns the import declaration node that newImport
// should be inserted before to keep the list alphabetical, or nil when
// newImport sorts after every existing import.
func insertionPoint(existing []*sitter.Node, newImport string, f *engine.File) *sitter.Node {
	names := make([]string, len(existing))
	for i, n := range existing {
		name, _ := firstNameWithin(f, n)
		names[i] = name
	}
	idx := sort.SearchStrings(names, newImport)
	if idx >= len(existing) {
		return nil
	}
	return existing[idx]
}
