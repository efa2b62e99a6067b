// Package asttest provides syntax tree fixtures for tests.
package asttest

import "github.com/deepnoodle-ai/irmeta/ast"

func typ(name string, args ...*ast.TypeRef) *ast.TypeRef {
	return &ast.TypeRef{Name: name, Args: args}
}

func params(names ...string) *ast.TypeParameterList {
	l := &ast.TypeParameterList{}
	for _, n := range names {
		l.Params = append(l.Params, &ast.TypeParameter{Ident: n})
	}
	return l
}

// Sample returns a module with one node of every kind. Each call returns a
// fresh tree.
func Sample() *ast.Module {
	box := &ast.Class{
		Ident: "Box",
		TypeParams: &ast.TypeParameterList{Params: []*ast.TypeParameter{
			{Ident: "T", Bound: typ("Any")},
		}},
		Supers: []*ast.TypeRef{typ("Container", typ("T"))},
		Constraints: &ast.TypeConstraintList{Constraints: []*ast.TypeConstraint{
			{Subject: "T", Bound: typ("Comparable", typ("T"))},
		}},
		Body: []ast.Decl{
			&ast.Property{Ident: "size", Type: typ("Int"), Initializer: &ast.Constant{Literal: "1"}},
		},
	}

	pair := &ast.Function{
		Ident:      "pair",
		TypeParams: params("A", "B"),
		Params: []*ast.Parameter{
			{Ident: "a", Type: typ("A")},
			{Ident: "b", Type: typ("B")},
		},
		Result: typ("Pair", typ("A"), typ("B")),
		Constraints: &ast.TypeConstraintList{Constraints: []*ast.TypeConstraint{
			{Subject: "A", Bound: typ("Any")},
		}},
		Body: &ast.CallExpr{
			Callee: &ast.NameRef{Name: "Pair"},
			Args:   []ast.Expr{&ast.NameRef{Name: "a"}, &ast.NameRef{Name: "b"}},
		},
	}

	second := &ast.Property{
		Ident:      "second",
		TypeParams: params("T"),
		Receiver:   typ("List", typ("T")),
		Type:       typ("T"),
		Initializer: &ast.CallExpr{
			Callee: &ast.NameRef{Name: "get"},
			Args:   []ast.Expr{&ast.Constant{Literal: "1"}},
		},
	}

	alias := &ast.TypeAlias{
		Ident:      "Boxes",
		TypeParams: params("E"),
		Type:       typ("List", typ("Box", typ("E"))),
	}

	main := &ast.Function{
		Ident:  "main",
		Result: typ("Int"),
		Body: &ast.BlockExpr{Statements: []ast.Statement{
			&ast.Property{Ident: "x", Initializer: &ast.BadExpr{}},
			&ast.ReturnExpr{Value: &ast.BinaryExpr{
				Left:  &ast.Constant{Literal: "1"},
				Op:    "+",
				Right: &ast.Constant{Literal: "2"},
			}},
		}},
	}

	return &ast.Module{
		Name: "sample",
		Files: []*ast.File{{
			Path:    "demo/sample.kt",
			Package: "demo",
			Decls:   []ast.Decl{box, pair, second, alias, main},
		}},
	}
}
