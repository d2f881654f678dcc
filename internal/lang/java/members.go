package java

import (
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
)

// FieldName returns the name node of a field_declaration's sole
// variable_declarator.
func FieldName(decl *sitter.Node) *sitter.Node {
	declarator := decl.ChildByFieldName("declarator")
	if declarator == nil {
		return nil
	}
	return declarator.ChildByFieldName("name")
}

// FieldType returns the declared type node of a field_declaration.
func FieldType(decl *sitter.Node) *sitter.Node {
	return decl.ChildByFieldName("type")
}

// NaturalVariableName infers a conventional variable name from a type's
// simple name by lowering its first character, e.g. "User" -> "user",
// "ID" -> "iD" (only the first rune is lowered, per §4.3).
func NaturalVariableName(typeName string) string {
	if typeName == "" {
		return typeName
	}
	r := []rune(typeName)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// Argument is one named argument for FormatAnnotation / the ordered
// annotation builder.
type Argument struct {
	Name  string
	Value string // already quoted/formatted as Java source, e.g. `"users"` or `10`
}

// FormatAnnotation renders "@Simple" (marker), "@Simple(value)" (single,
// unnamed-shorthand), or "@Simple(name = value, ...)" (key-value,
// argument order preserved as given).
func FormatAnnotation(simpleName string, args []Argument) string {
	if len(args) == 0 {
		return "@" + simpleName
	}
	if len(args) == 1 && args[0].Name == "" {
		return fmt.Sprintf("@%s(%s)", simpleName, args[0].Value)
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%s = %s", a.Name, a.Value)
	}
	return fmt.Sprintf("@%s(%s)", simpleName, strings.Join(parts, ", "))
}

// FieldSpec describes a field to render via FormatFieldDeclaration.
type FieldSpec struct {
	Modifiers   []string
	Type        string
	Name        string
	Initializer string // optional; rendered as "= <Initializer>" when non-empty
	Annotations []string
}

// FormatFieldDeclaration derives a formatted field declaration from a
// modifier set, type reference, name, and optional initializer, with
// annotations each on their own line above it (§4.3 field service).
func FormatFieldDeclaration(spec FieldSpec) string {
	var b strings.Builder
	for _, a := range spec.Annotations {
		b.WriteString(a)
		b.WriteString("\n")
	}
	if len(spec.Modifiers) > 0 {
		b.WriteString(strings.Join(spec.Modifiers, " "))
		b.WriteString(" ")
	}
	b.WriteString(spec.Type)
	b.WriteString(" ")
	b.WriteString(spec.Name)
	if spec.Initializer != "" {
		b.WriteString(" = ")
		b.WriteString(spec.Initializer)
	}
	b.WriteString(";")
	return b.String()
}

// ParameterName returns the name node of a formal_parameter.
func ParameterName(param *sitter.Node) *sitter.Node {
	return param.ChildByFieldName("name")
}

// ParameterType returns the declared type node of a formal_parameter.
func ParameterType(param *sitter.Node) *sitter.Node {
	return param.ChildByFieldName("type")
}

// LocalVariableName returns the name node of a local_variable_declaration's
// sole variable_declarator.
func LocalVariableName(decl *sitter.Node) *sitter.Node {
	declarator := decl.ChildByFieldName("declarator")
	if declarator == nil {
		return nil
	}
	return declarator.ChildByFieldName("name")
}

// FieldTypeName reads a field's declared type as plain text, for use in
// id-type classification and import resolution.
func FieldTypeName(f *engine.File, decl *sitter.Node) string {
	t := FieldType(decl)
	if t == nil {
		return ""
	}
	return f.TextOfNode(t)
}
