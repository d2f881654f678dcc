package java

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/walker"
)

// MappedClassDescriptor is §3's "Mapped class descriptor" domain object,
// denormalized from the CST on demand.
type MappedClassDescriptor struct {
	FilePath        string   `json:"filePath"`
	SimpleName      string   `json:"simpleName"`
	PackageName     string   `json:"packageName"`
	IdType          string   `json:"idType,omitempty"`
	IdTypePackage   string   `json:"idTypePackage,omitempty"`
	AnnotationKinds []string `json:"annotationKinds"`
}

// classAnnotationVocabulary is the subset of the relational-mapping
// vocabulary that can appear on a class-like declaration itself, checked
// in this fixed order when building AnnotationKinds.
var classAnnotationVocabulary = []string{
	AnnotationEntity,
	AnnotationTable,
	AnnotationMappedSuperclass,
}

// ScanMappedClasses walks every Java file under cwd and returns a
// descriptor for every class-like declaration carrying marker (§4.5
// get-mapped-classes / get-mapped-superclasses).
func ScanMappedClasses(cwd, marker string) ([]MappedClassDescriptor, error) {
	paths, err := walker.Walk(context.Background(), cwd, nil)
	if err != nil {
		return nil, err
	}

	var out []MappedClassDescriptor
	for _, path := range paths {
		f, ferr := engine.NewFromPath(Grammar(), path)
		if ferr != nil {
			continue
		}
		decls, derr := ClassLikeDeclarations(f)
		if derr != nil {
			continue
		}
		for _, decl := range decls {
			if !HasAnnotation(f, decl, marker) {
				continue
			}
			out = append(out, describeMappedClass(cwd, f, decl, path))
		}
	}
	return out, nil
}

// FindMappedClassByName reports whether a class-like declaration named
// simpleName carrying AnnotationEntity already exists anywhere under cwd
// (create-mapped-class's duplicate-name guard).
func FindMappedClassByName(cwd, simpleName string) (bool, error) {
	descriptors, err := ScanMappedClasses(cwd, AnnotationEntity)
	if err != nil {
		return false, err
	}
	for _, d := range descriptors {
		if d.SimpleName == simpleName {
			return true, nil
		}
	}
	return false, nil
}

func describeMappedClass(cwd string, f *engine.File, decl *sitter.Node, path string) MappedClassDescriptor {
	pkgName, _, _ := PackageDeclaration(f)
	nameNode := ClassName(decl)
	simpleName := ""
	if nameNode != nil {
		simpleName = f.TextOfNode(nameNode)
	}

	var kinds []string
	for _, name := range classAnnotationVocabulary {
		if HasAnnotation(f, decl, name) {
			kinds = append(kinds, name)
		}
	}

	d := MappedClassDescriptor{
		FilePath:        path,
		SimpleName:      simpleName,
		PackageName:     pkgName,
		AnnotationKinds: kinds,
	}
	if idField, err := FindIdField(cwd, f, decl); err == nil {
		typeName := FieldTypeName(idField.File, idField.Decl)
		d.IdType = typeName
		if idType, ok := LookupIdType(typeName); ok {
			d.IdTypePackage = idType.Package()
		}
	}
	return d
}

// ToSnakeCase converts a PascalCase/camelCase simple name to snake_case,
// e.g. "UserAccount" -> "user_account" — used by create-mapped-class's
// default table-name override.
func ToSnakeCase(s string) string {
	var b []byte
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b = append(b, '_')
			}
			b = append(b, byte(r-'A'+'a'))
			continue
		}
		b = append(b, byte(r))
	}
	return string(b)
}
