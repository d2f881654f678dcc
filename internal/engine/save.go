package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

// Containment is the sole security perimeter: it canonicalizes target and
// fails unless the canonical path is lexically inside the canonical root.
// Grounded on the teacher's containment-adjacent glob scoping in
// core/filewalker.go, generalized to the single-path check §4.1 requires.
func Containment(target, root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", model.IOFailure("failed to resolve containment root", err)
	}
	canonRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", model.IOFailure("failed to resolve containment root", err)
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", model.IOFailure("failed to resolve target path", err)
	}
	// The target itself may not exist yet (we're about to create it), so
	// resolve symlinks on its parent directory and rejoin the leaf name.
	dir, base := filepath.Dir(absTarget), filepath.Base(absTarget)
	canonDir, err := resolveExistingAncestor(dir)
	if err != nil {
		return "", model.IOFailure("failed to resolve target path", err)
	}
	canonTarget := filepath.Join(canonDir, base)

	rel, err := filepath.Rel(canonRoot, canonTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", model.InvalidInput("path", fmt.Sprintf("%s escapes containment root %s", target, root))
	}
	return canonTarget, nil
}

// resolveExistingAncestor walks up from dir until it finds a path that
// exists, resolves symlinks on that prefix, then rejoins the remainder.
func resolveExistingAncestor(dir string) (string, error) {
	var tail []string
	cur := dir
	for {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir, nil
		}
		tail = append(tail, filepath.Base(cur))
		cur = parent
	}
}

// Save writes the buffer to the current path. If a pending-move path is
// set, the file is renamed to it after write (REPLACE_EXISTING semantics).
func (f *File) Save(containmentRoot string) error {
	if f.path == "" {
		return model.InvalidInput("path", "file has no path to save to")
	}
	return f.writeAndMove(f.path, containmentRoot)
}

// SaveAs canonicalizes path against containmentRoot, fails if it escapes,
// then writes. On success the file's path becomes the canonical target.
func (f *File) SaveAs(path, containmentRoot string) error {
	canon, err := Containment(path, containmentRoot)
	if err != nil {
		return err
	}
	if err := writeAtomic(canon, f.source); err != nil {
		return err
	}
	f.path = canon
	return nil
}

// Rename sets the pending-move path to the same directory with newName
// as the base (adding the host-language extension when newName lacks
// one), honored on the next Save.
func (f *File) Rename(newName string) {
	dir := filepath.Dir(f.path)
	if !strings.Contains(filepath.Base(newName), ".") {
		newName = newName + "." + f.lang.Extension()
	}
	f.pendingMove = filepath.Join(dir, newName)
}

func (f *File) writeAndMove(path, containmentRoot string) error {
	canon, err := Containment(path, containmentRoot)
	if err != nil {
		return err
	}
	if err := writeAtomic(canon, f.source); err != nil {
		return err
	}
	f.path = canon

	if f.pendingMove != "" {
		target, err := Containment(f.pendingMove, containmentRoot)
		if err != nil {
			return err
		}
		if err := os.Rename(canon, target); err != nil {
			return model.IOFailure("failed to rename file", err)
		}
		f.path = target
		f.pendingMove = ""
	}
	return nil
}

// writeAtomic writes data to path using write-to-temp-then-rename
// semantics. Grounded on the teacher's core/atomicwriter.go WriteFile and
// internal/util/file.go's WriteFileAtomic; the teacher's cross-process
// advisory FileLock is not carried here (see DESIGN.md): this engine is
// single-process, single-request, so nothing else can contend for the
// file within one invocation's lifetime.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.IOFailure("failed to create parent directory", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return model.IOFailure("failed to create temp file", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return model.IOFailure("failed to write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return model.IOFailure("failed to sync temp file", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return model.IOFailure("failed to set file mode", err)
	}
	if err := tmp.Close(); err != nil {
		return model.IOFailure("failed to close temp file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return model.IOFailure("failed to rename temp file into place", err)
	}
	return nil
}
