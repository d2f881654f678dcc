package command

import (
	"context"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
	"github.com/syntaxpresso/core-sub005/internal/walker"
)

// GetMainClassInput is get-main-class's sole input.
type GetMainClassInput struct {
	Cwd string
}

// GetMainClassOutput is get-main-class's success payload.
type GetMainClassOutput struct {
	FilePath    string `json:"filePath"`
	SimpleName  string `json:"simpleName"`
	PackageName string `json:"packageName"`
}

// GetMainClass walks every Java file under Cwd looking for a public
// top-level class with a conventional program-entry method (§4.5).
func GetMainClass(in GetMainClassInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}

	files, err := walker.Walk(context.Background(), in.Cwd, nil)
	if err != nil {
		return model.FromError(err)
	}

	for _, path := range files {
		f, ferr := engine.NewFromPath(java.Grammar(), path)
		if ferr != nil {
			continue
		}
		decl, derr := java.FirstPublicClass(f)
		if derr != nil || decl == nil {
			continue
		}
		if !java.HasMainMethod(f, decl) {
			continue
		}
		pkgName, _, _ := java.PackageDeclaration(f)
		return model.Success(GetMainClassOutput{
			FilePath:    path,
			SimpleName:  f.TextOfNode(java.ClassName(decl)),
			PackageName: pkgName,
		})
	}
	return model.FromError(model.NotFound("no class with a main method was found"))
}
