package java

import (
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/model"
	"github.com/syntaxpresso/core-sub005/internal/query"
)

// classLikeKinds are the CST node kinds §3 recognizes as "class-like":
// class, interface, enum, record, annotation.
var classLikeKinds = []string{
	"class_declaration",
	"interface_declaration",
	"enum_declaration",
	"record_declaration",
	"annotation_type_declaration",
}

const classLikeQuery = `[
  (class_declaration name: (identifier) @name) @decl
  (interface_declaration name: (identifier) @name) @decl
  (enum_declaration name: (identifier) @name) @decl
  (record_declaration name: (identifier) @name) @decl
  (annotation_type_declaration name: (identifier) @name) @decl
]`

// ClassLikeDeclarations enumerates every class-like declaration in the
// file, in source order.
func ClassLikeDeclarations(f *engine.File) ([]*sitter.Node, error) {
	q, err := query.Compile(f.Language().SitterLanguage(), classLikeQuery)
	if err != nil {
		return nil, model.IOFailure("failed to compile class query", err)
	}
	res := q.Run(f.Root(), f.Source(), nil)
	return res.NodesFrom("decl"), nil
}

// FirstPublicClass returns the first class-like declaration carrying the
// "public" modifier, or nil.
func FirstPublicClass(f *engine.File) (*sitter.Node, error) {
	decls, err := ClassLikeDeclarations(f)
	if err != nil {
		return nil, err
	}
	for _, d := range decls {
		if hasModifier(f, d, "public") {
			return d, nil
		}
	}
	return nil, nil
}

// FindClassByName finds a class-like declaration by simple name.
func FindClassByName(f *engine.File, name string) (*sitter.Node, error) {
	decls, err := ClassLikeDeclarations(f)
	if err != nil {
		return nil, err
	}
	for _, d := range decls {
		if nameNode := ClassName(d); nameNode != nil && f.TextOfNode(nameNode) == name {
			return d, nil
		}
	}
	return nil, nil
}

// ClassName returns decl's name node.
func ClassName(decl *sitter.Node) *sitter.Node {
	return decl.ChildByFieldName("name")
}

// ClassBody returns decl's body node (class_body/interface_body/
// enum_body/record_body/annotation_type_body), or nil.
func ClassBody(decl *sitter.Node) *sitter.Node {
	return decl.ChildByFieldName("body")
}

// ClassAnnotations enumerates the annotations carried by decl's modifiers.
func ClassAnnotations(f *engine.File, decl *sitter.Node) []*sitter.Node {
	return annotationsOf(f, decl)
}

// ClassFields enumerates decl's direct field declarations, in source
// order.
func ClassFields(f *engine.File, decl *sitter.Node) []*sitter.Node {
	return directChildrenOfType(ClassBody(decl), "field_declaration")
}

// ClassMethods enumerates decl's direct method declarations, in source
// order.
func ClassMethods(f *engine.File, decl *sitter.Node) []*sitter.Node {
	return directChildrenOfType(ClassBody(decl), "method_declaration")
}

// HasMainMethod reports whether decl declares a conventional program-entry
// method: named "main", modifiers "static" and "public", parameter list
// of a single array of the String type (§4.5 get-main-class).
func HasMainMethod(f *engine.File, decl *sitter.Node) bool {
	for _, m := range ClassMethods(f, decl) {
		name := m.ChildByFieldName("name")
		if name == nil || f.TextOfNode(name) != "main" {
			continue
		}
		if !hasModifier(f, m, "public") || !hasModifier(f, m, "static") {
			continue
		}
		params := m.ChildByFieldName("parameters")
		if params == nil || int(params.NamedChildCount()) != 1 {
			continue
		}
		param := params.NamedChild(0)
		ptype := param.ChildByFieldName("type")
		if ptype == nil || ptype.Type() != "array_type" {
			continue
		}
		element := ptype.ChildByFieldName("element")
		if element != nil && f.TextOfNode(element) == "String" {
			return true
		}
	}
	return false
}

// FieldPosition selects where InsertField places a new field.
type FieldPosition int

const (
	PositionFirst FieldPosition = iota
	PositionLast
	PositionIndex
)

// InsertField inserts declText (a formatted field declaration, including
// trailing newline) into decl's body at the chosen position, preserving
// surrounding whitespace by indenting to match the body's existing
// members.
func InsertField(f *engine.File, decl *sitter.Node, declText string, pos FieldPosition, index int) error {
	body := ClassBody(decl)
	if body == nil {
		return model.NotFound("class body not found")
	}
	fields := ClassFields(f, decl)
	indent := bodyMemberIndent(f, body)
	text := indent + strings.ReplaceAll(strings.TrimRight(declText, "\n"), "\n", "\n"+indent) + "\n"
	// An insert at a field's start byte lands after that field's own
	// indentation, so it ends with the indentation the pushed-down field
	// keeps instead of starting with one.
	before := strings.TrimPrefix(text, indent) + indent

	switch {
	case len(fields) == 0:
		return f.InsertAfter(bodyOpenBrace(body), []byte("\n"+text))
	case pos == PositionFirst:
		return f.InsertBefore(fields[0], []byte(before))
	case pos == PositionLast:
		return f.InsertAfter(fields[len(fields)-1], []byte("\n"+text))
	case pos == PositionIndex && index >= 0 && index < len(fields):
		return f.InsertBefore(fields[index], []byte(before))
	default:
		return f.InsertAfter(fields[len(fields)-1], []byte("\n"+text))
	}
}

// RenameClass renames decl's declared name to newName and, in the same
// pass, every textual usage of the old name within the file — excluding
// identifiers used as field names on "this." field accesses whose meaning
// is not the renamed symbol (§4.3, §4.5 rename-type).
func RenameClass(f *engine.File, decl *sitter.Node, newName string) error {
	nameNode := ClassName(decl)
	if nameNode == nil {
		return model.NotFound("class has no name node")
	}
	oldName := f.TextOfNode(nameNode)
	if oldName == newName {
		return nil
	}

	usages, err := findTypeUsages(f, oldName)
	if err != nil {
		return err
	}

	// Apply from the end of the file backward so earlier byte offsets
	// stay valid across edits.
	for i := len(usages) - 1; i >= 0; i-- {
		if err := f.ReplaceNode(usages[i], []byte(newName)); err != nil {
			return err
		}
	}
	return nil
}

// findTypeUsages returns every identifier and type_identifier node whose
// text equals oldName, whatever its role — excluding identifiers that are
// the field-name half of a "this.<field>" field access.
func findTypeUsages(f *engine.File, oldName string) ([]*sitter.Node, error) {
	pattern := fmt.Sprintf(`(identifier) @id (#eq? @id %q)`, oldName)
	q, err := query.Compile(f.Language().SitterLanguage(), pattern)
	if err != nil {
		return nil, model.IOFailure("failed to compile rename query", err)
	}
	res := q.Run(f.Root(), f.Source(), nil)

	var typeIdentifierPattern = fmt.Sprintf(`(type_identifier) @id (#eq? @id %q)`, oldName)
	q2, err := query.Compile(f.Language().SitterLanguage(), typeIdentifierPattern)
	if err != nil {
		return nil, model.IOFailure("failed to compile rename query", err)
	}
	res2 := q2.Run(f.Root(), f.Source(), nil)

	all := append(res.NodesFrom("id"), res2.NodesFrom("id")...)
	var out []*sitter.Node
	for _, n := range all {
		if isThisFieldAccessFieldName(n) {
			continue
		}
		out = append(out, n)
	}
	sortByStart(out)
	return out, nil
}

func isThisFieldAccessFieldName(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != "field_access" {
		return false
	}
	field := parent.ChildByFieldName("field")
	if field == nil || !sameRange(field, n) {
		return false
	}
	obj := parent.ChildByFieldName("object")
	return obj != nil && obj.Type() == "this"
}

func sortByStart(nodes []*sitter.Node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j-1].StartByte() > nodes[j].StartByte(); j-- {
			nodes[j-1], nodes[j] = nodes[j], nodes[j-1]
		}
	}
}

// --- shared helpers also used by members.go / annotation.go ---

func directChildrenOfType(parent *sitter.Node, kind string) []*sitter.Node {
	if parent == nil {
		return nil
	}
	var out []*sitter.Node
	count := int(parent.NamedChildCount())
	for i := 0; i < count; i++ {
		child := parent.NamedChild(i)
		if child.Type() == kind {
			out = append(out, child)
		}
	}
	return out
}

func hasModifier(f *engine.File, decl *sitter.Node, modifier string) bool {
	mods := decl.ChildByFieldName("modifiers")
	if mods == nil {
		count := int(decl.NamedChildCount())
		for i := 0; i < count; i++ {
			if child := decl.NamedChild(i); child.Type() == "modifiers" {
				mods = child
				break
			}
		}
	}
	if mods == nil {
		return false
	}
	return f.TextOfNode(mods) != "" && regexp.MustCompile(`\b`+modifier+`\b`).MatchString(f.TextOfNode(mods))
}

func bodyOpenBrace(body *sitter.Node) *sitter.Node {
	count := int(body.ChildCount())
	for i := 0; i < count; i++ {
		if child := body.Child(i); child.Type() == "{" {
			return child
		}
	}
	return body
}

func bodyMemberIndent(f *engine.File, body *sitter.Node) string {
	fields := directChildrenOfType(body, "field_declaration")
	methods := directChildrenOfType(body, "method_declaration")
	var sample *sitter.Node
	switch {
	case len(fields) > 0:
		sample = fields[0]
	case len(methods) > 0:
		sample = methods[0]
	default:
		return "    "
	}
	src := f.Source()
	lineStart := sample.StartByte()
	for lineStart > 0 && src[lineStart-1] != '\n' {
		lineStart--
	}
	return string(src[lineStart:sample.StartByte()])
}
