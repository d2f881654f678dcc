package command

import (
	"fmt"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// CreateMappedClassInput is create-mapped-class's input (§4.5).
type CreateMappedClassInput struct {
	Cwd         string
	PackageName string
	FileName    string
}

// CreateMappedClassOutput is create-mapped-class's success payload.
type CreateMappedClassOutput struct {
	FilePath string `json:"filePath"`
}

// CreateMappedClass creates a class file, then marks it as an entity with
// a table-name override derived from the file name, adding the imports
// the markers require. Refuses if a mapped class of the same simple name
// already exists anywhere in the project.
func CreateMappedClass(in CreateMappedClassInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	if err := requirePackageName(in.PackageName); err != nil {
		return model.FromError(err)
	}
	if err := requireSimpleName("fileName", in.FileName); err != nil {
		return model.FromError(err)
	}

	exists, err := java.FindMappedClassByName(in.Cwd, in.FileName)
	if err != nil {
		return model.FromError(err)
	}
	if exists {
		return model.FromError(model.Conflict(in.FileName))
	}

	path, err := createFileAt(CreateFileInput{
		Cwd:           in.Cwd,
		PackageName:   in.PackageName,
		FileName:      in.FileName,
		TemplateKind:  java.TemplateClass,
		SourceDirKind: "main",
	})
	if err != nil {
		return model.FromError(err)
	}

	f, ferr := engine.NewFromPath(java.Grammar(), path)
	if ferr != nil {
		return model.FromError(ferr)
	}
	decl, derr := java.FindClassByName(f, in.FileName)
	if derr != nil {
		return model.FromError(derr)
	}
	if decl == nil {
		return model.FromError(model.NotFound("generated file has no matching class declaration"))
	}

	tableName := java.ToSnakeCase(in.FileName)
	tableAnnotation := java.FormatAnnotation(java.AnnotationTable, []java.Argument{
		{Name: "name", Value: fmt.Sprintf("%q", tableName)},
	})
	markers := fmt.Sprintf("@%s\n%s\n", java.AnnotationEntity, tableAnnotation)
	if err := f.InsertBefore(decl, []byte(markers)); err != nil {
		return model.FromError(err)
	}
	if err := java.AddImport(f, "jakarta.persistence.Entity"); err != nil {
		return model.FromError(err)
	}
	if err := java.AddImport(f, "jakarta.persistence.Table"); err != nil {
		return model.FromError(err)
	}

	if err := f.Save(in.Cwd); err != nil {
		return model.FromError(err)
	}
	return model.Success(CreateMappedClassOutput{FilePath: f.Path()})
}
