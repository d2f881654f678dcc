package query

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Roler classifies a node's role for the "#is?" predicate
// (definition, reference, local). Host-language packages may supply a
// more precise Roler; DefaultRoler is a generic fallback the query layer
// itself can evaluate without host-language knowledge (component B is
// language-agnostic per its design), using only parent-field shape.
type Roler interface {
	Role(n *sitter.Node) string
}

// RolerFunc adapts a function to a Roler.
type RolerFunc func(n *sitter.Node) string

func (f RolerFunc) Role(n *sitter.Node) string { return f(n) }

// DefaultRoler classifies definition/local/reference from generic
// grammar-shape conventions: a node that is the "name" field of a
// "*_declaration"/"*_declarator" parent is a definition; a node inside a
// formal_parameters or local_variable_declaration subtree is local;
// anything else is a reference.
var DefaultRoler Roler = RolerFunc(defaultRole)

func defaultRole(n *sitter.Node) string {
	parent := n.Parent()
	if parent == nil {
		return "reference"
	}
	field := fieldNameOf(parent, n)
	parentType := parent.Type()
	if field == "name" && (strings.HasSuffix(parentType, "_declaration") || strings.HasSuffix(parentType, "_declarator")) {
		return "definition"
	}
	for cur := parent; cur != nil; cur = cur.Parent() {
		switch cur.Type() {
		case "formal_parameters", "formal_parameter":
			return "local"
		case "local_variable_declaration":
			return "local"
		case "class_body", "interface_body", "program":
			return "reference"
		}
	}
	return "reference"
}

// fieldNameOf returns the field name under which child occurs in parent,
// or "" if none. Only the fields "name", "declarator", "type" and "value"
// are probed.
func fieldNameOf(parent, child *sitter.Node) string {
	// smacker/go-tree-sitter exposes ChildByFieldName but not the reverse
	// lookup, so probe the common field names used by declarations and
	// compare byte ranges (two nodes at the same range are the same node).
	for _, candidate := range []string{"name", "declarator", "type", "value"} {
		if f := parent.ChildByFieldName(candidate); f != nil &&
			f.StartByte() == child.StartByte() && f.EndByte() == child.EndByte() {
			return candidate
		}
	}
	return ""
}
