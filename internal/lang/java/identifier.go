package java

import sitter "github.com/smacker/go-tree-sitter"

// IdentifierRole is the identifier-kind classifier's result for one
// identifier node.
type IdentifierRole string

const (
	RoleClassName      IdentifierRole = "class-name"
	RoleMethodName     IdentifierRole = "method-name"
	RoleFieldName      IdentifierRole = "field-name"
	RoleParameterName  IdentifierRole = "parameter-name"
	RoleLocalVarName   IdentifierRole = "local-variable-name"
	RoleNone           IdentifierRole = "none"
)

// ClassifyIdentifier returns n's role based on its parent node's kind, per
// spec.md §4.3's identifier-kind classifier. Grounded on
// GoProvider.GetNodeKind/GetNodeName's switch-on-parent-type idiom.
func ClassifyIdentifier(n *sitter.Node) IdentifierRole {
	parent := n.Parent()
	if parent == nil {
		return RoleNone
	}
	nameField := parent.ChildByFieldName("name")
	if nameField == nil || !sameRange(nameField, n) {
		return RoleNone
	}
	switch parent.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"record_declaration", "annotation_type_declaration":
		return RoleClassName
	case "method_declaration", "constructor_declaration":
		return RoleMethodName
	case "variable_declarator":
		return fieldOrLocal(parent)
	case "formal_parameter", "spread_parameter":
		return RoleParameterName
	default:
		return RoleNone
	}
}

// fieldOrLocal disambiguates a variable_declarator's enclosing
// declaration: field_declaration -> field-name, local_variable_declaration
// -> local-variable-name.
func fieldOrLocal(declarator *sitter.Node) IdentifierRole {
	switch declParent := declarator.Parent(); {
	case declParent == nil:
		return RoleNone
	case declParent.Type() == "field_declaration":
		return RoleFieldName
	case declParent.Type() == "local_variable_declaration":
		return RoleLocalVarName
	default:
		return RoleNone
	}
}

func sameRange(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
