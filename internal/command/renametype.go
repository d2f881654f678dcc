package command

import (
	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
)

// RenameTypeInput is rename-type's input (§4.5): the (line, column) of
// the identifier under cursor is 1-based.
type RenameTypeInput struct {
	Cwd      string
	FilePath string
	NewName  string
	Line     int
	Column   int
}

// RenameTypeOutput is rename-type's success payload.
type RenameTypeOutput struct {
	FilePath string `json:"filePath"`
}

// RenameType requires the identifier under cursor to classify as a
// class-name, renames the declaration and every textual usage in the
// file, and — when the renamed class is the file's public type — renames
// the file itself to match.
func RenameType(in RenameTypeInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	if err := requirePath(in.FilePath); err != nil {
		return model.FromError(err)
	}
	if err := requireSimpleName("newName", in.NewName); err != nil {
		return model.FromError(err)
	}

	f, err := engine.NewFromPath(java.Grammar(), in.FilePath)
	if err != nil {
		return model.FromError(err)
	}

	n, nerr := f.NodeAt(in.Line, in.Column)
	if nerr != nil {
		return model.FromError(nerr)
	}
	if java.ClassifyIdentifier(n) != java.RoleClassName {
		return model.FromError(model.InvalidInput("position", "identifier under cursor is not a class name"))
	}

	oldName := f.TextOfNode(n)
	decl, derr := java.FindClassByName(f, oldName)
	if derr != nil {
		return model.FromError(derr)
	}
	if decl == nil {
		return model.FromError(model.NotFound("enclosing class declaration not found"))
	}

	isPublic := false
	if pub, perr := java.FirstPublicClass(f); perr == nil && pub != nil {
		isPublic = f.TextOfNode(java.ClassName(pub)) == oldName
	}

	if err := java.RenameClass(f, decl, in.NewName); err != nil {
		return model.FromError(err)
	}

	if isPublic {
		f.Rename(in.NewName)
	}
	if err := f.Save(in.Cwd); err != nil {
		return model.FromError(err)
	}
	return model.Success(RenameTypeOutput{FilePath: f.Path()})
}
