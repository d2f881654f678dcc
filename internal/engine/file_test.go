package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	javalang "github.com/syntaxpresso/core-sub005/internal/lang/java"
)

func javaLang() engine.Language {
	return javalang.Grammar()
}

func TestRoundTrip(t *testing.T) {
	src := "public class Original {}\n"
	f, err := engine.NewFromSource(javaLang(), []byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(f.Source()))
}

func TestTextOfNodeMatchesSourceSlice(t *testing.T) {
	src := "public class Original {}\n"
	f, err := engine.NewFromSource(javaLang(), []byte(src))
	require.NoError(t, err)

	root := f.Root()
	assert.Equal(t, src[root.StartByte():root.EndByte()], f.TextOfNode(root))
}

func TestIncrementalConsistencyAfterReplaceRange(t *testing.T) {
	src := "public class Original {}\n"
	f, err := engine.NewFromSource(javaLang(), []byte(src))
	require.NoError(t, err)

	idx := len("public class ")
	require.NoError(t, f.ReplaceRange(idx, idx+len("Original"), []byte("Renamed")))

	want := "public class Renamed {}\n"
	assert.Equal(t, want, string(f.Source()))
	root := f.Root()
	assert.Equal(t, len(want), int(root.EndByte()))
}

func TestNodeAtOutsideTreeFails(t *testing.T) {
	src := "public class Original {}\n"
	f, err := engine.NewFromSource(javaLang(), []byte(src))
	require.NoError(t, err)

	_, err = f.NodeAt(100, 1)
	require.Error(t, err)
}

func TestContainmentRejectsEscape(t *testing.T) {
	dir := t.TempDir()
	_, err := engine.Containment(filepath.Join(dir, "..", "escaped.java"), dir)
	require.Error(t, err)
}

func TestContainmentAcceptsDescendant(t *testing.T) {
	dir := t.TempDir()
	canon, err := engine.Containment(filepath.Join(dir, "sub", "Foo.java"), dir)
	require.NoError(t, err)
	assert.Contains(t, canon, dir)
}

func TestSaveAsWritesAtomicallyAndRename(t *testing.T) {
	dir := t.TempDir()
	src := "public class Original {}\n"
	f, err := engine.NewFromSource(javaLang(), []byte(src))
	require.NoError(t, err)

	path := filepath.Join(dir, "Original.java")
	require.NoError(t, f.SaveAs(path, dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))

	f.Rename("Renamed")
	require.NoError(t, f.Save(dir))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	data, err = os.ReadFile(filepath.Join(dir, "Renamed.java"))
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}
