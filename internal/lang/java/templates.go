package java

import "fmt"

// TemplateKind selects which file template RenderTemplate produces.
type TemplateKind string

const (
	TemplateClass      TemplateKind = "class"
	TemplateInterface  TemplateKind = "interface"
	TemplateEnum       TemplateKind = "enum"
	TemplateRecord     TemplateKind = "record"
	TemplateAnnotation TemplateKind = "annotation"
)

// RenderTemplate renders a new source file body for kind, substituting
// packageName and typeName. Written in the teacher's plain
// fmt.Sprintf-over-string-template style (neither the teacher nor any
// other pack repo pulls a Go templating library for generated source, so
// string building is the grounded choice here — see DESIGN.md).
func RenderTemplate(kind TemplateKind, packageName, typeName string) (string, error) {
	switch kind {
	case TemplateClass:
		return fmt.Sprintf("package %s;\n\npublic class %s {\n}\n", packageName, typeName), nil
	case TemplateInterface:
		return fmt.Sprintf("package %s;\n\npublic interface %s {\n}\n", packageName, typeName), nil
	case TemplateEnum:
		return fmt.Sprintf("package %s;\n\npublic enum %s {\n}\n", packageName, typeName), nil
	case TemplateRecord:
		return fmt.Sprintf("package %s;\n\npublic record %s() {\n}\n", packageName, typeName), nil
	case TemplateAnnotation:
		return fmt.Sprintf("package %s;\n\npublic @interface %s {\n}\n", packageName, typeName), nil
	default:
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}
}

// RenderRepositoryInterface renders a repository interface extending the
// generic repository type, parameterized by (entityType, idType), per
// the create-repository command (§4.5).
func RenderRepositoryInterface(packageName, repositoryName, entityType, idType string) string {
	return fmt.Sprintf(
		"package %s;\n\nimport org.springframework.data.repository.CrudRepository;\n\npublic interface %s extends CrudRepository<%s, %s> {\n}\n",
		packageName, repositoryName, entityType, idType,
	)
}
