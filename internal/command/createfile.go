package command

import (
	"os"
	"path/filepath"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/model"
	"github.com/syntaxpresso/core-sub005/internal/walker"
)

// CreateFileInput is create-file's input (§4.5).
type CreateFileInput struct {
	Cwd           string
	PackageName   string
	FileName      string
	TemplateKind  java.TemplateKind
	SourceDirKind string // "main" or "test"
}

// CreateFileOutput is create-file's success payload.
type CreateFileOutput struct {
	FilePath string `json:"filePath"`
}

// CreateFile resolves package -> directory (creating missing
// directories), renders the chosen template, and refuses to overwrite an
// existing file.
func CreateFile(in CreateFileInput) *model.Envelope {
	if err := requireCwd(in.Cwd); err != nil {
		return model.FromError(err)
	}
	if err := requirePackageName(in.PackageName); err != nil {
		return model.FromError(err)
	}
	if err := requireSimpleName("fileName", in.FileName); err != nil {
		return model.FromError(err)
	}
	if err := requireSourceDirKind(in.SourceDirKind); err != nil {
		return model.FromError(err)
	}

	path, err := createFileAt(in)
	if err != nil {
		return model.FromError(err)
	}
	return model.Success(CreateFileOutput{FilePath: path})
}

// createFileAt is shared by CreateFile and CreateMappedClass.
func createFileAt(in CreateFileInput) (string, error) {
	dir, err := walker.ResolvePackageDir(in.Cwd, in.SourceDirKind, in.PackageName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", model.IOFailure("failed to create package directory", err)
	}

	path := filepath.Join(dir, in.FileName+".java")
	if _, statErr := os.Stat(path); statErr == nil {
		return "", model.Conflict(path)
	}

	body, err := java.RenderTemplate(in.TemplateKind, in.PackageName, in.FileName)
	if err != nil {
		return "", model.InvalidInput("templateKind", err.Error())
	}

	f, err := engine.NewFromSource(java.Grammar(), []byte(body))
	if err != nil {
		return "", err
	}
	if err := f.SaveAs(path, in.Cwd); err != nil {
		return "", err
	}
	return f.Path(), nil
}
