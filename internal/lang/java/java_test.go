package java_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	"github.com/syntaxpresso/core-sub005/internal/lang/java"
)

func parse(t *testing.T, src string) *engine.File {
	t.Helper()
	f, err := engine.NewFromSource(java.Grammar(), []byte(src))
	require.NoError(t, err)
	return f
}

func TestPackageDeclaration(t *testing.T) {
	f := parse(t, "package com.example.app;\n\npublic class Foo {}\n")
	name, node, err := java.PackageDeclaration(f)
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "com.example.app", name)

	scope, last := java.PackageParts(name)
	assert.Equal(t, "com.example", scope)
	assert.Equal(t, "app", last)
}

func TestAddImportIsAlphabeticalAndIdempotent(t *testing.T) {
	f := parse(t, "package com.example.app;\n\nimport com.example.app.Bar;\nimport com.example.app.Zoo;\n\npublic class Foo {}\n")

	require.NoError(t, java.AddImport(f, "com.example.app.Mid"))
	imports, err := java.Imports(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"com.example.app.Bar", "com.example.app.Mid", "com.example.app.Zoo"}, imports)

	before := string(f.Source())
	require.NoError(t, java.AddImport(f, "com.example.app.Mid"))
	assert.Equal(t, before, string(f.Source()), "adding an already-present import must leave the source unchanged")
}

func TestFirstPublicClassAndRename(t *testing.T) {
	f := parse(t, "public class Original {\n    public void use() {\n        Original o = new Original();\n    }\n}\n")
	decl, err := java.FirstPublicClass(f)
	require.NoError(t, err)
	require.NotNil(t, decl)
	assert.Equal(t, "Original", f.TextOfNode(java.ClassName(decl)))

	require.NoError(t, java.RenameClass(f, decl, "Renamed"))

	decl2, err := java.FindClassByName(f, "Renamed")
	require.NoError(t, err)
	require.NotNil(t, decl2)

	old, err := java.FindClassByName(f, "Original")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestIdentifierClassifier(t *testing.T) {
	f := parse(t, "public class Foo {\n    private int count;\n    public void run(int step) {\n        int total = step;\n    }\n}\n")
	decl, err := java.FirstPublicClass(f)
	require.NoError(t, err)

	nameNode := java.ClassName(decl)
	assert.Equal(t, java.RoleClassName, java.ClassifyIdentifier(nameNode))

	fields := java.ClassFields(f, decl)
	require.Len(t, fields, 1)
	fieldName := java.FieldName(fields[0])
	assert.Equal(t, java.RoleFieldName, java.ClassifyIdentifier(fieldName))
}

func TestFormatFieldDeclarationAndNaturalName(t *testing.T) {
	decl := java.FormatFieldDeclaration(java.FieldSpec{
		Modifiers:   []string{"private"},
		Type:        "String",
		Name:        "email",
		Annotations: []string{"@Column(name = \"email\")"},
	})
	assert.Equal(t, "@Column(name = \"email\")\nprivate String email;", decl)
	assert.Equal(t, "user", java.NaturalVariableName("User"))
}

func TestFormatAnnotationShapes(t *testing.T) {
	assert.Equal(t, "@Id", java.FormatAnnotation("Id", nil))
	assert.Equal(t, `@Table("users")`, java.FormatAnnotation("Table", []java.Argument{{Value: `"users"`}}))
	assert.Equal(t, `@Column(name = "email", nullable = false)`, java.FormatAnnotation("Column", []java.Argument{
		{Name: "name", Value: `"email"`},
		{Name: "nullable", Value: "false"},
	}))
}

func TestRecommendedIdTypesExcludesCurrent(t *testing.T) {
	alts := java.RecommendedIdTypes("Long")
	var names []string
	for _, a := range alts {
		names = append(names, a.SimpleName())
	}
	assert.NotContains(t, names, "Long")
	assert.Contains(t, names, "UUID")
}

func TestIsMappedClass(t *testing.T) {
	f := parse(t, "@Entity\npublic class User {\n    @Id\n    private Long id;\n}\n")
	decl, err := java.FindClassByName(f, "User")
	require.NoError(t, err)
	assert.True(t, java.IsMappedClass(f, decl))

	idField, err := java.FindIdField(t.TempDir(), f, decl)
	require.NoError(t, err)
	require.NotNil(t, idField)
	assert.Equal(t, "Long", java.FieldTypeName(f, idField.Decl))
}
