package astutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/require"

	"github.com/paramlint/paramlint/internal/parser"
)

// parse parses a JavaScript snippet and returns the file with its tree held
// open until the test finishes.
func parse(t *testing.T, src string) *parser.File {
	t.Helper()
	p := parser.New()
	file, err := p.ParseContent(context.Background(), "test.js", []byte(src))
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file
}

// functionNodes collects every function-like node in source order.
func functionNodes(file *parser.File) []*sitter.Node {
	var nodes []*sitter.Node
	Walk(file.Root(), func(n *sitter.Node) {
		if KindOf(n).IsFunctionLike() {
			nodes = append(nodes, n)
		}
	})
	return nodes
}

// firstFunction returns the first function-like node of a snippet.
func firstFunction(t *testing.T, file *parser.File) *sitter.Node {
	t.Helper()
	nodes := functionNodes(file)
	require.NotEmpty(t, nodes, "no function-like node in snippet")
	return nodes[0]
}

// firstOfKind returns the first node of the given kind in source order.
func firstOfKind(t *testing.T, file *parser.File, kind NodeKind) *sitter.Node {
	t.Helper()
	var found *sitter.Node
	Walk(file.Root(), func(n *sitter.Node) {
		if found == nil && KindOf(n) == kind {
			found = n
		}
	})
	require.NotNil(t, found, "no %s node in snippet", kind)
	return found
}

// exprOf returns the initializer expression of `var x = ...;`.
func exprOf(t *testing.T, file *parser.File) *sitter.Node {
	t.Helper()
	var decl *sitter.Node
	Walk(file.Root(), func(n *sitter.Node) {
		if decl == nil && n.Type() == "variable_declarator" {
			decl = n
		}
	})
	require.NotNil(t, decl, "no variable declarator in snippet")
	value := decl.ChildByFieldName("value")
	require.NotNil(t, value, "declarator has no initializer")
	return value
}
