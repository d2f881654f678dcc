package walker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core-sub005/internal/walker"
)

func TestWalkFindsJavaFilesAndSkipsIgnored(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main", "java", "com", "x"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "build"), 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main", "java", "com", "x", "App.java"), []byte("package com.x;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "Generated.java"), []byte("package com.x;\n"), 0o644))

	files, err := walker.Walk(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "App.java")
}

func TestResolvePackageDirContainment(t *testing.T) {
	dir := t.TempDir()
	path, err := walker.ResolvePackageDir(dir, walker.SourceDirMain, "com.example.app")
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("src", "main", "java", "com", "example", "app"))
}
