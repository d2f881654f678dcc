package command

import (
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// GetMappedClassesInput is get-mapped-classes' and
// get-mapped-superclasses' shared input (§4.5) — the same project scan
// with a different marker annotation.
type GetMappedClassesInput struct {
	Cwd string
}

// GetMappedClassesOutput is the shared success payload.
type GetMappedClassesOutput struct {
	Classes []java.MappedClassDescriptor `json:"classes"`
}

// GetMappedClasses scans the project for every class carrying the entity
// marker annotation.
func GetMappedClasses(in GetMappedClassesInput) *model.Envelope {
	return scanMarked(in, java.AnnotationEntity)
}

// GetMappedSuperclasses scans the project for every class carrying the
// mapped-superclass marker annotation.
func GetMappedSuperclasses(in GetMappedClassesInput) *model.Envelope {
	return scanMarked(in, java.AnnotationMappedSuperclass)
}

func scanMarked(in GetMappedClassesInput, marker string) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	descriptors, err := java.ScanMappedClasses(in.Cwd, marker)
	if err != nil {
		return model.FromError(err)
	}
	return model.Success(GetMappedClassesOutput{Classes: descriptors})
}
