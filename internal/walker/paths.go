package walker

import (
	"path/filepath"
	"strings"

	"github.com/syntaxpresso/core-sub005/internal/engine"
)

// SourceDirMain and SourceDirTest are the conventional source-directory
// kinds a create-command may target (§4.5's "source directory kind").
const (
	SourceDirMain = "main"
	SourceDirTest = "test"
)

// SourceRoot returns the conventional source root path for kind
// ("src/main/java" or "src/test/java"), relative to cwd.
func SourceRoot(kind string) (string, bool) {
	switch kind {
	case SourceDirMain:
		return filepath.Join("src", "main", "java"), true
	case SourceDirTest:
		return filepath.Join("src", "test", "java"), true
	default:
		return "", false
	}
}

// ResolvePackageDir resolves a package-qualified name to a directory
// under the conventional source root beneath cwd (creating it is the
// caller's responsibility; this only computes and containment-checks the
// path). Grounded on spec.md §4.3's package-service description and §2
// row F's "resolution of a package-qualified name to a filesystem
// directory" responsibility.
func ResolvePackageDir(cwd, sourceDirKind, packageName string) (string, error) {
	root, ok := SourceRoot(sourceDirKind)
	if !ok {
		root, ok = sourceDirKind, true // accept a raw "src/main/java"-style path too
	}
	parts := strings.Split(packageName, ".")
	dir := filepath.Join(append([]string{cwd, root}, parts...)...)
	return engine.Containment(dir, cwd)
}
