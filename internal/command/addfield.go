package command

import (
	"fmt"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// AddFieldInput is add-field's input (§4.5). SourceOverride, when
// non-nil, is the base64-decoded unsaved buffer content for FilePath.
type AddFieldInput struct {
	Cwd            string
	FilePath       string
	SourceOverride []byte
	FieldName      string
	FieldType      string
	Modifiers      []string
	Annotations    []string // pre-formatted, e.g. "@NotNull"

	ColumnName     string
	ColumnNullable *bool
	ColumnLength   int
}

// AddFieldOutput is add-field's success payload.
type AddFieldOutput struct {
	FilePath string `json:"filePath"`
}

// AddField parses the file, finds its sole top-level class, renders the
// field, inserts it after the last existing field (or at the top of the
// body if none), and adds imports for the declared type when it is a
// catalogued id type declared outside java.lang, and for a generated
// @Column annotation. Caller-supplied annotations get no import.
func AddField(in AddFieldInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	if err := requirePath(in.FilePath); err != nil {
		return model.FromError(err)
	}
	if err := requireSimpleName("fieldName", in.FieldName); err != nil {
		return model.FromError(err)
	}
	if err := requireSimpleName("fieldType", in.FieldType); err != nil {
		return model.FromError(err)
	}

	f, err := engine.NewFromPathOrSource(java.Grammar(), in.FilePath, in.SourceOverride)
	if err != nil {
		return model.FromError(err)
	}

	decls, err := java.ClassLikeDeclarations(f)
	if err != nil {
		return model.FromError(err)
	}
	if len(decls) != 1 {
		return model.FromError(model.NotFound("file does not have exactly one top-level class"))
	}
	decl := decls[0]

	annotations := append([]string{}, in.Annotations...)
	if in.ColumnName != "" || in.ColumnNullable != nil || in.ColumnLength != 0 {
		annotations = append(annotations, formatColumnAnnotation(in))
	}

	declText := java.FormatFieldDeclaration(java.FieldSpec{
		Modifiers:   in.Modifiers,
		Type:        in.FieldType,
		Name:        in.FieldName,
		Annotations: annotations,
	})
	if err := java.InsertField(f, decl, declText, java.PositionLast, 0); err != nil {
		return model.FromError(err)
	}

	if err := addTypeImportIfNeeded(f, in.FieldType); err != nil {
		return model.FromError(err)
	}
	for _, name := range []string{java.AnnotationColumn} {
		if containsAnnotation(annotations, name) {
			if err := java.AddImport(f, "jakarta.persistence."+name); err != nil {
				return model.FromError(err)
			}
		}
	}

	if err := f.Save(in.Cwd); err != nil {
		return model.FromError(err)
	}
	return model.Success(AddFieldOutput{FilePath: f.Path()})
}

func formatColumnAnnotation(in AddFieldInput) string {
	var args []java.Argument
	if in.ColumnName != "" {
		args = append(args, java.Argument{Name: "name", Value: fmt.Sprintf("%q", in.ColumnName)})
	}
	if in.ColumnNullable != nil {
		args = append(args, java.Argument{Name: "nullable", Value: fmt.Sprintf("%t", *in.ColumnNullable)})
	}
	if in.ColumnLength != 0 {
		args = append(args, java.Argument{Name: "length", Value: fmt.Sprintf("%d", in.ColumnLength)})
	}
	return java.FormatAnnotation(java.AnnotationColumn, args)
}

func containsAnnotation(annotations []string, simpleName string) bool {
	marker := "@" + simpleName
	for _, a := range annotations {
		if a == marker || len(a) > len(marker) && a[:len(marker)+1] == marker+"(" {
			return true
		}
	}
	return false
}

// addTypeImportIfNeeded adds an import for typeName when it is one of the
// recognized basic id types declared outside java.lang (§4.3's closed
// catalogue is the only type registry this engine has beyond textual
// matching, per §1's Non-goals).
func addTypeImportIfNeeded(f *engine.File, typeName string) error {
	idType, ok := java.LookupIdType(typeName)
	if !ok || idType.Package() == "java.lang" {
		return nil
	}
	return java.AddImport(f, idType.Package()+"."+idType.SimpleName())
}
