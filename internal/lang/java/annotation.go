package java

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
)

// annotationsOf enumerates the marker_annotation/annotation nodes carried
// by decl's modifiers child, in source order.
func annotationsOf(f *engine.File, decl *sitter.Node) []*sitter.Node {
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
		return nil
	}
	return directChildrenOfKinds(mods, "marker_annotation", "annotation")
}

func directChildrenOfKinds(parent *sitter.Node, kinds ...string) []*sitter.Node {
	var out []*sitter.Node
	count := int(parent.NamedChildCount())
	for i := 0; i < count; i++ {
		child := parent.NamedChild(i)
		for _, k := range kinds {
			if child.Type() == k {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

// AnnotationSimpleName returns an annotation/marker_annotation node's
// simple name (the identifier after "@").
func AnnotationSimpleName(f *engine.File, ann *sitter.Node) string {
	n := ann.ChildByFieldName("name")
	if n == nil {
		return ""
	}
	return f.TextOfNode(n)
}

// HasAnnotation reports whether decl carries an annotation with the given
// simple name.
func HasAnnotation(f *engine.File, decl *sitter.Node, simpleName string) bool {
	for _, a := range annotationsOf(f, decl) {
		if AnnotationSimpleName(f, a) == simpleName {
			return true
		}
	}
	return false
}

// FindAnnotation returns the first annotation node on decl with the given
// simple name, or nil.
func FindAnnotation(f *engine.File, decl *sitter.Node, simpleName string) *sitter.Node {
	for _, a := range annotationsOf(f, decl) {
		if AnnotationSimpleName(f, a) == simpleName {
			return a
		}
	}
	return nil
}

// AnnotationArgument reads a named argument from ann's argument list. It
// handles all three conventional shapes:
//   - marker (no argument list): returns ("", false)
//   - single-value shorthand, e.g. @Table("users"): name must be "value"
//   - key-value, e.g. @Column(name = "email", nullable = false)
func AnnotationArgument(f *engine.File, ann *sitter.Node, name string) (string, bool) {
	argList := ann.ChildByFieldName("arguments")
	if argList == nil {
		return "", false
	}
	count := int(argList.NamedChildCount())
	if count == 1 {
		only := argList.NamedChild(0)
		if only.Type() != "element_value_pair" {
			if name == "value" {
				return stripQuotes(f.TextOfNode(only)), true
			}
			return "", false
		}
	}
	for i := 0; i < count; i++ {
		child := argList.NamedChild(i)
		if child.Type() != "element_value_pair" {
			continue
		}
		key := child.ChildByFieldName("key")
		if key == nil || f.TextOfNode(key) != name {
			continue
		}
		value := child.ChildByFieldName("value")
		if value == nil {
			return "", false
		}
		return stripQuotes(f.TextOfNode(value)), true
	}
	return "", false
}

func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
