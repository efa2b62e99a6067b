package ast_test

import (
	"testing"

	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/ast/asttest"
	"github.com/stretchr/testify/require"
)

func decls(m *ast.Module) []ast.Decl {
	return m.Files[0].Decls
}

func TestString(t *testing.T) {
	d := decls(asttest.Sample())
	tests := []struct {
		node ast.Node
		want string
	}{
		{d[0], "class Box<T : Any> : Container<T> where T : Comparable<T> {\n    val size: Int = 1\n}"},
		{d[1], "fun <A, B> pair(a: A, b: B): Pair<A, B> where A : Any = Pair(a, b)"},
		{d[2], "val <T> List<T>.second: T = get(1)"},
		{d[3], "typealias Boxes<E> = List<Box<E>>"},
		{d[4], "fun main(): Int {\n    val x = <bad expression>\n    return (1 + 2)\n}"},
		{&ast.ReturnExpr{Label: "f"}, "return@f"},
		{&ast.TypeRef{Name: "String", Nullable: true}, "String?"},
		{&ast.TypeParameter{Ident: "T", Variance: "out", Reified: true}, "reified out T"},
		{&ast.Class{Ident: "Empty", Keyword: "object"}, "object Empty {}"},
		{&ast.BlockExpr{}, "{ }"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.node.String())
	}
}

func TestFileString(t *testing.T) {
	f := &ast.File{Package: "p", Decls: []ast.Decl{
		&ast.TypeAlias{Ident: "A", Type: &ast.TypeRef{Name: "Int"}},
	}}
	require.Equal(t, "package p\n\ntypealias A = Int\n", f.String())
}

func TestBadExpr(t *testing.T) {
	from := ast.Position{Line: 1, Column: 5}
	to := ast.Position{Line: 1, Column: 15}
	bad := &ast.BadExpr{Span: ast.Span{From: from, To: to}}
	require.Equal(t, from, bad.Pos())
	require.Equal(t, to, bad.End())
	require.Equal(t, "1:5", bad.Pos().String())
	require.Equal(t, "-", ast.Position{}.String())
	require.Equal(t, ast.KindBadExpr, bad.Kind())
}

func TestKinds(t *testing.T) {
	seen := map[ast.Kind]bool{}
	for n := range ast.Preorder(asttest.Sample()) {
		seen[n.Kind()] = true
	}
	for _, k := range ast.Kinds() {
		require.True(t, seen[k], "fixture is missing %s", k)
	}
	require.Equal(t, "TypeParameterList", ast.KindTypeParameterList.String())
	require.Equal(t, "Invalid", ast.KindCount.String())
}
