package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core-sub005/internal/command"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Scenario 1: rename the public class.
func TestRenamePublicClass(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Original.java", "public class Original {}\n")

	env := command.RenameType(command.RenameTypeInput{
		Cwd:      dir,
		FilePath: path,
		NewName:  "Renamed",
		Line:     1,
		Column:   14, // the "Original" identifier in "public class Original {}"
	})

	require.True(t, env.Succeed)
	out, ok := env.Data.(command.RenameTypeOutput)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Renamed.java"), out.FilePath)

	_, statErr := os.Stat(filepath.Join(dir, "Original.java"))
	assert.True(t, os.IsNotExist(statErr))

	body, err := os.ReadFile(out.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "public class Renamed {}")
}

// Scenario 2: create-file refuses to overwrite.
func TestCreateFileRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, filepath.Join("src", "main", "java", "com", "x", "U.java"), "package com.x;\n\npublic class U {}\n")

	env := command.CreateFile(command.CreateFileInput{
		Cwd:           dir,
		PackageName:   "com.x",
		FileName:      "U",
		TemplateKind:  "class",
		SourceDirKind: "main",
	})

	require.False(t, env.Succeed)
	assert.Contains(t, env.ErrorReason, "already exists")
	assert.Contains(t, env.ErrorReason, existing)

	body, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "package com.x;\n\npublic class U {}\n", string(body))
}

// Scenario 3: repository for a local id.
func TestCreateRepositoryForLocalId(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "User.java", "package com.x;\n\n@Entity\npublic class User {\n    @Id\n    private Long id;\n}\n")
	path := filepath.Join(dir, "User.java")

	env := command.CreateRepository(command.CreateRepositoryInput{Cwd: dir, FilePath: path})

	require.True(t, env.Succeed)
	out, ok := env.Data.(command.CreateRepositoryOutput)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "UserRepository.java"), out.FilePath)

	body, err := os.ReadFile(out.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "UserRepository")
	assert.Contains(t, string(body), "CrudRepository<User, Long>")
}

// Scenario 4: repository requires supertype.
func TestCreateRepositoryRequiresSupertype(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Order.java", "package com.x;\n\n@Entity\npublic class Order extends Auditable {\n    private String item;\n}\n")
	path := filepath.Join(dir, "Order.java")

	env := command.CreateRepository(command.CreateRepositoryInput{Cwd: dir, FilePath: path})

	require.False(t, env.Succeed)
	assert.Contains(t, env.ErrorReason, "Auditable")
	payload, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, payload["requiresSymbolSource"])
	assert.Equal(t, "Auditable", payload["symbol"])
}

// Scenario 6: get-main-class success.
func TestGetMainClassSuccess(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Helper.java", "package com.x;\n\nclass Helper {}\n")
	writeFile(t, dir, "App.java", "package com.x;\n\npublic class App {\n    public static void main(String[] args) {}\n}\n")

	env := command.GetMainClass(command.GetMainClassInput{Cwd: dir})

	require.True(t, env.Succeed)
	out, ok := env.Data.(command.GetMainClassOutput)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "App.java"), out.FilePath)
	assert.Equal(t, "App", out.SimpleName)
	assert.Equal(t, "com.x", out.PackageName)
}
