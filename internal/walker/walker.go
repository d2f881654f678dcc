// Package walker implements the project file scan and the
// package-qualified-name-to-directory resolution that command services
// use to discover and place Java source files.
package walker

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/syntaxpresso/core-sub005/internal/model"
)

// defaultIgnore are the directories excluded from project scans unless
// the caller overrides them: .git, build, target and node_modules. Test
// roots are not in this list.
var defaultIgnore = []string{
	"**/.git/**",
	"**/build/**",
	"**/target/**",
	"**/node_modules/**",
}

// Result is one discovered source file.
type Result struct {
	Path string
	Err  error
}

// Walk recursively scans root for ".java" files in parallel, skipping
// paths matched by any of ignore (doublestar glob patterns; nil uses
// defaultIgnore). Grounded on core/filewalker.go's worker-pool shape,
// reduced to this engine's single-language, single-extension need.
func Walk(ctx context.Context, root string, ignore []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, model.InvalidInput("cwd", "working directory does not exist")
	}
	if !info.IsDir() {
		return nil, model.InvalidInput("cwd", "working directory is not a directory")
	}
	if ignore == nil {
		ignore = defaultIgnore
	}

	paths := make(chan string, 1000)
	results := make(chan Result, 1000)
	workers := runtime.NumCPU() * 2

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case p, ok := <-paths:
					if !ok {
						return
					}
					results <- Result{Path: p}
				}
			}
		}()
	}

	go func() {
		defer close(paths)
		scanDir(ctx, root, ignore, paths)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var files []string
	for r := range results {
		if r.Err == nil {
			files = append(files, r.Path)
		}
	}
	return files, nil
}

func scanDir(ctx context.Context, dir string, ignore []string, paths chan<- string) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if isIgnored(full, ignore) {
			continue
		}
		if entry.IsDir() {
			scanDir(ctx, full, ignore, paths)
			continue
		}
		if filepath.Ext(full) == ".java" {
			select {
			case <-ctx.Done():
				return
			case paths <- full:
			}
		}
	}
}

func isIgnored(path string, patterns []string) bool {
	for _, p := range patterns {
		if matched, err := doublestar.PathMatch(p, path); err == nil && matched {
			return true
		}
	}
	return false
}
