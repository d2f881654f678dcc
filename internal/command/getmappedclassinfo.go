package command

import (
	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// GetMappedClassInfoInput is get-mapped-class-info's input (§4.5).
type GetMappedClassInfoInput struct {
	Cwd                 string
	FilePath            string
	SupertypeSimpleName string
	SupertypeSource     []byte
}

// GetMappedClassInfoOutput is get-mapped-class-info's success payload.
type GetMappedClassInfoOutput struct {
	SimpleName                   string   `json:"simpleName"`
	PackageName                  string   `json:"packageName"`
	IdType                       string   `json:"idType"`
	IdTypePackage                string   `json:"idTypePackage,omitempty"`
	RecommendedRepositoryName    string   `json:"recommendedRepositoryName"`
	RecommendedRepositoryPackage string   `json:"recommendedRepositoryPackage"`
	RecommendedIdTypes           []string `json:"recommendedIdTypes"`
}

// GetMappedClassInfo parses and verifies a mapped class, runs the
// id-field search, and reports its identity, id type, recommended
// repository name/package, and recommended id-type alternatives.
func GetMappedClassInfo(in GetMappedClassInfoInput) *model.Envelope {
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

	simpleName := f.TextOfNode(java.ClassName(decl))
	pkgName, _, err := java.PackageDeclaration(f)
	if err != nil {
		return model.FromError(err)
	}
	idTypeName := java.FieldTypeName(idField.File, idField.Decl)
	idTypePackage := ""
	if idType, ok := java.LookupIdType(idTypeName); ok {
		idTypePackage = idType.Package()
	}

	var alternatives []string
	for _, t := range java.RecommendedIdTypes(idTypeName) {
		alternatives = append(alternatives, t.SimpleName())
	}

	return model.Success(GetMappedClassInfoOutput{
		SimpleName:                   simpleName,
		PackageName:                  pkgName,
		IdType:                       idTypeName,
		IdTypePackage:                idTypePackage,
		RecommendedRepositoryName:    simpleName + "Repository",
		RecommendedRepositoryPackage: pkgName,
		RecommendedIdTypes:           alternatives,
	})
}
