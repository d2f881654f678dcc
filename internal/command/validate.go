// Package command implements the composite command services (§4.5): one
// pure function per command, each validating its inputs before touching
// the filesystem and returning exactly one model.Envelope.
package command

import (
	"os"
	"regexp"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	packagePattern     = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// requireCwd validates that cwd is a non-empty, existing directory.
func requireCwd(cwd string) *model.CLIError {
	if cwd == "" {
		return model.InvalidInput("cwd", "cwd is required")
	}
	info, err := os.Stat(cwd)
	if err != nil || !info.IsDir() {
		return model.InvalidInput("cwd", "cwd does not exist")
	}
	return nil
}

// requirePath validates that path is a non-empty, existing file.
func requirePath(path string) *model.CLIError {
	if path == "" {
		return model.InvalidInput("filePath", "filePath is required")
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return model.InvalidInput("filePath", "filePath does not exist")
	}
	return nil
}

// requirePackageName validates the conventional dotted-identifier
// grammar.
func requirePackageName(pkg string) *model.CLIError {
	if !packagePattern.MatchString(pkg) {
		return model.InvalidInput("packageName", "packageName is not a valid dotted identifier")
	}
	return nil
}

// requireSimpleName validates the conventional identifier grammar.
func requireSimpleName(field, name string) *model.CLIError {
	if !identifierPattern.MatchString(name) {
		return model.InvalidInput(field, "is not a valid identifier")
	}
	return nil
}

// requireSourceDirKind validates that kind is "main" or "test".
func requireSourceDirKind(kind string) *model.CLIError {
	if kind != "main" && kind != "test" {
		return model.InvalidInput("sourceDirKind", "must be \"main\" or \"test\"")
	}
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
