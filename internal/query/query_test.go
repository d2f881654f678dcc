package query_test

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core-sub005/internal/engine"
	javalang "github.com/syntaxpresso/core-sub005/internal/lang/java"
	"github.com/syntaxpresso/core-sub005/internal/query"
)

const threeMethodsSource = `
public class Foo {
    public void getFoo() {}
    public void getBar() {}
    public void setBaz() {}
}
`

func TestMatchPredicateFiltersByPrefix(t *testing.T) {
	lang := javalang.Grammar().SitterLanguage()
	q, err := query.Compile(lang, `(method_declaration name: (identifier) @name (#match? @name "^get"))`)
	require.NoError(t, err)

	root := parseJava(t, threeMethodsSource)
	res := q.Run(root, []byte(threeMethodsSource), nil)

	var names []string
	for _, n := range res.NodesFrom("name") {
		names = append(names, string([]byte(threeMethodsSource)[n.StartByte():n.EndByte()]))
	}
	assert.Equal(t, []string{"getFoo", "getBar"}, names)
}

func TestEqPredicateComparesCaptureText(t *testing.T) {
	lang := javalang.Grammar().SitterLanguage()
	q, err := query.Compile(lang, `(method_declaration name: (identifier) @name (#eq? @name "setBaz"))`)
	require.NoError(t, err)

	root := parseJava(t, threeMethodsSource)
	res := q.Run(root, []byte(threeMethodsSource), nil)
	names := res.NodesFrom("name")
	require.Len(t, names, 1)
}

func TestAnyOfPredicate(t *testing.T) {
	lang := javalang.Grammar().SitterLanguage()
	q, err := query.Compile(lang, `(method_declaration name: (identifier) @name (#any-of? @name "getFoo" "setBaz"))`)
	require.NoError(t, err)

	root := parseJava(t, threeMethodsSource)
	res := q.Run(root, []byte(threeMethodsSource), nil)
	assert.Len(t, res.NodesFrom("name"), 2)
}

func parseJava(t *testing.T, src string) *sitter.Node {
	t.Helper()
	f, err := engine.NewFromSource(javalang.Grammar(), []byte(src))
	require.NoError(t, err)
	return f.Root()
}
