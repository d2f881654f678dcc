package command

import (
	"path/filepath"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// CreateRepositoryInput is create-repository's input (§4.5).
// SupertypeSimpleName/SupertypeSource let a caller supply the source of a
// missing supertype after retrying a MissingExternalSymbol failure.
type CreateRepositoryInput struct {
	Cwd                 string
	FilePath            string
	SupertypeSimpleName string
	SupertypeSource     []byte
}

// CreateRepositoryOutput is create-repository's success payload.
type CreateRepositoryOutput struct {
	FilePath string `json:"filePath"`
}

// CreateRepository verifies the target is a mapped class, runs the
// id-field search up its hierarchy, and on success creates a sibling
// repository interface parameterized by (entity type, id type).
func CreateRepository(in CreateRepositoryInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	if err := requirePath(in.FilePath); err != nil {
		return model.FromError(err)
	}

	f, err := engine.NewFromPath(java.Grammar(), in.FilePath)
	if err != nil {
		return model.FromError(err)
	}
	decl, err := java.FirstPublicClass(f)
	if err != nil {
		return model.FromError(err)
	}
	if decl == nil {
		return model.FromError(model.NotFound("file has no public class"))
	}
	if !java.IsMappedClass(f, decl) {
		return model.FromError(model.InvalidInput("filePath", "class is not a mapped class"))
	}

	idField, err := java.FindIdFieldWithSupertypeSource(in.Cwd, f, decl, in.SupertypeSimpleName, in.SupertypeSource)
	if err != nil {
		return model.FromError(err)
	}

	entityName := f.TextOfNode(java.ClassName(decl))
	idTypeName := java.FieldTypeName(idField.File, idField.Decl)
	pkgName, _, err := java.PackageDeclaration(f)
	if err != nil {
		return model.FromError(err)
	}

	repoName := entityName + "Repository"
	repoPath := filepath.Join(filepath.Dir(f.Path()), repoName+".java")
	if exists, statErr := fileExists(repoPath); statErr == nil && exists {
		return model.FromError(model.Conflict(repoPath))
	}

	body := java.RenderRepositoryInterface(pkgName, repoName, entityName, idTypeName)
	repoFile, err := engine.NewFromSource(java.Grammar(), []byte(body))
	if err != nil {
		return model.FromError(err)
	}
	if idType, ok := java.LookupIdType(idTypeName); ok && idType.Package() != "java.lang" {
		if err := java.AddImport(repoFile, idType.Package()+"."+idType.SimpleName()); err != nil {
			return model.FromError(err)
		}
	}

	if err := repoFile.SaveAs(repoPath, in.Cwd); err != nil {
		return model.FromError(err)
	}
	return model.Success(CreateRepositoryOutput{FilePath: repoFile.Path()})
}
