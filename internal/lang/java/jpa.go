package java

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// The closed relational-mapping annotation vocabulary (§4.3 [ADD]).
const (
	AnnotationEntity           = "Entity"
	AnnotationTable            = "Table"
	AnnotationMappedSuperclass = "MappedSuperclass"
	AnnotationId               = "Id"
	AnnotationGeneratedValue   = "GeneratedValue"
	AnnotationColumn           = "Column"
	AnnotationOneToOne         = "OneToOne"
	AnnotationManyToOne        = "ManyToOne"
)

// IsMappedClass reports whether decl carries the entity marker.
func IsMappedClass(f *engine.File, decl *sitter.Node) bool {
	return HasAnnotation(f, decl, AnnotationEntity)
}

// IsMappedSuperclass reports whether decl carries the mapped-superclass
// marker.
func IsMappedSuperclass(f *engine.File, decl *sitter.Node) bool {
	return HasAnnotation(f, decl, AnnotationMappedSuperclass)
}

// TableName reads the @Table(name=...) override, or "" if absent.
func TableName(f *engine.File, decl *sitter.Node) string {
	ann := FindAnnotation(f, decl, AnnotationTable)
	if ann == nil {
		return ""
	}
	name, _ := AnnotationArgument(f, ann, "name")
	return name
}

// IdType is the tagged variant of §4.3's "recognized basic id types"
// catalogue: Long/Integer/String (java.lang) and UUID (java.util). Built
// as a variant with methods rather than a map lookup, per the Design
// Notes' "enum-of-types" guidance — the recommended subset is derived
// from the variants (Recommended()), not duplicated as separate data.
type IdType struct {
	simpleName string
	pkg        string
	recommended bool
}

func (t IdType) SimpleName() string { return t.simpleName }
func (t IdType) Package() string    { return t.pkg }
func (t IdType) Recommended() bool  { return t.recommended }

var (
	IdTypeLong    = IdType{simpleName: "Long", pkg: "java.lang", recommended: true}
	IdTypeInteger = IdType{simpleName: "Integer", pkg: "java.lang", recommended: true}
	IdTypeString  = IdType{simpleName: "String", pkg: "java.lang", recommended: false}
	IdTypeUUID    = IdType{simpleName: "UUID", pkg: "java.util", recommended: true}
)

// KnownIdTypes is the closed catalogue, in a stable, documented order.
func KnownIdTypes() []IdType {
	return []IdType{IdTypeLong, IdTypeInteger, IdTypeString, IdTypeUUID}
}

// LookupIdType finds the catalogue entry for a simple type name, or
// ok=false if typeName isn't one of the recognized basic id types.
func LookupIdType(typeName string) (IdType, bool) {
	for _, t := range KnownIdTypes() {
		if t.simpleName == typeName {
			return t, true
		}
	}
	return IdType{}, false
}

// RecommendedIdTypes returns the catalogue's recommended subset, minus
// the field's current declared type — used by get-mapped-class-info's
// "recommended id-type alternatives".
func RecommendedIdTypes(currentType string) []IdType {
	var out []IdType
	for _, t := range KnownIdTypes() {
		if t.recommended && t.simpleName != currentType {
			out = append(out, t)
		}
	}
	return out
}

// IdField is the result of FindIdField: the field declaration carrying
// the @Id marker, and the file it was found in (which may differ from the
// file search started at, if inherited from a mapped superclass).
type IdField struct {
	Decl *sitter.Node
	File *engine.File
}

// FindIdField searches decl's fields for one annotated with @Id. If none
// is found, it follows decl's "extends" clause: locates the named
// supertype's source file under the project root and recurses. If the
// supertype's source is not found in the project, it returns a
// model.CLIError of kind MissingExternalSymbol naming the supertype, per
// §4.3's id-field search and §7's error taxonomy.
func FindIdField(cwd string, f *engine.File, decl *sitter.Node) (*IdField, error) {
	return FindIdFieldWithSupertypeSource(cwd, f, decl, "", nil)
}

// FindIdFieldWithSupertypeSource behaves like FindIdField, but when the
// search walks into a supertype named supertypeSimpleName that isn't
// found in the project, it parses supertypeSource (when non-nil) in its
// place instead of failing with MissingExternalSymbol — the
// create-repository command's "optionally supplied supertype source"
// input (§4.5).
func FindIdFieldWithSupertypeSource(cwd string, f *engine.File, decl *sitter.Node, supertypeSimpleName string, supertypeSource []byte) (*IdField, error) {
	for _, field := range ClassFields(f, decl) {
		if HasAnnotation(f, field, AnnotationId) {
			return &IdField{Decl: field, File: f}, nil
		}
	}

	superclass := decl.ChildByFieldName("superclass")
	if superclass == nil {
		return nil, model.NotFound("no id field found and class has no superclass")
	}
	typeNode := superNameNode(superclass)
	if typeNode == nil {
		return nil, model.NotFound("no id field found and superclass could not be resolved")
	}
	superName := f.TextOfNode(typeNode)

	superFile, superDecl, err := locateClassInProject(cwd, superName)
	if err != nil {
		return nil, err
	}
	if superFile == nil {
		if supertypeSource != nil && superName == supertypeSimpleName {
			overrideFile, ferr := engine.NewFromSource(Grammar(), supertypeSource)
			if ferr != nil {
				return nil, ferr
			}
			overrideDecl, derr := FindClassByName(overrideFile, superName)
			if derr != nil {
				return nil, derr
			}
			if overrideDecl == nil {
				return nil, model.NotFound(fmt.Sprintf("supplied supertype source has no class named %q", superName))
			}
			return FindIdFieldWithSupertypeSource(cwd, overrideFile, overrideDecl, supertypeSimpleName, supertypeSource)
		}
		return nil, model.MissingExternalSymbol(superName)
	}
	return FindIdFieldWithSupertypeSource(cwd, superFile, superDecl, supertypeSimpleName, supertypeSource)
}

func superNameNode(superclass *sitter.Node) *sitter.Node {
	count := int(superclass.NamedChildCount())
	for i := 0; i < count; i++ {
		child := superclass.NamedChild(i)
		if child.Type() == "type_identifier" || child.Type() == "generic_type" {
			if child.Type() == "generic_type" {
				return child.ChildByFieldName("type")
			}
			return child
		}
	}
	return nil
}

// locateClassInProject scans .java files under cwd for a class-like
// declaration named simpleName, returning its file and declaration. Both
// are nil, with no error, when not found (the caller turns that into
// MissingExternalSymbol).
func locateClassInProject(cwd, simpleName string) (*engine.File, *sitter.Node, error) {
	var found *engine.File
	var foundDecl *sitter.Node

	err := filepath.Walk(cwd, func(path string, info os.FileInfo, err error) error {
		if err != nil || found != nil {
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(path, ".java") {
			return nil
		}
		candidate, ferr := engine.NewFromPath(Grammar(), path)
		if ferr != nil {
			return nil
		}
		decl, ferr := FindClassByName(candidate, simpleName)
		if ferr != nil || decl == nil {
			return nil
		}
		found = candidate
		foundDecl = decl
		return nil
	})
	if err != nil {
		return nil, nil, model.IOFailure("failed to scan project for supertype", err)
	}
	return found, foundDecl, nil
}
