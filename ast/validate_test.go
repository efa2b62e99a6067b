package ast_test

import (
	"errors"
	"testing"

	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/ast/asttest"
	"github.com/stretchr/testify/require"
)

func TestValidateSample(t *testing.T) {
	require.NoError(t, ast.Validate(asttest.Sample(), ast.TypeParameterValidator))

	err := ast.Validate(asttest.Sample(), ast.TypeParameterValidator, ast.NoBadExprValidator)
	require.EqualError(t, err, "malformed expression")

	var verr *ast.ValidationError
	require.True(t, errors.As(err, &verr))
	require.IsType(t, &ast.BadExpr{}, verr.Node)
}

func TestTypeParameterValidator(t *testing.T) {
	fn := &ast.Function{
		Ident: "f",
		TypeParams: &ast.TypeParameterList{Params: []*ast.TypeParameter{
			{Ident: "T"},
			{Ident: "T", Span: ast.Span{From: ast.Position{Line: 1, Column: 10}}},
		}},
		Constraints: &ast.TypeConstraintList{Constraints: []*ast.TypeConstraint{
			{Subject: "U", Bound: &ast.TypeRef{Name: "Any"}},
		}},
	}
	root := &ast.Module{Files: []*ast.File{{Decls: []ast.Decl{fn}}}}

	err := ast.Validate(root, ast.TypeParameterValidator)
	var verrs *ast.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Errors, 2)
	require.Equal(t, "f: duplicate type parameter T at 1:10", verrs.Errors[0].Error())
	require.Equal(t, "f: U is not a type parameter", verrs.Errors[1].Error())
	require.Equal(t, "2 validation errors:\n  - f: duplicate type parameter T at 1:10\n  - f: U is not a type parameter\n", err.Error())
}

func TestValidatorFunc(t *testing.T) {
	count := 0
	v := ast.ValidatorFunc(func(root ast.Node) []ast.ValidationError {
		for range ast.Preorder(root) {
			count++
		}
		return nil
	})
	require.NoError(t, ast.Validate(asttest.Sample(), v))
	require.Positive(t, count)
}

func TestTypeParameterValidatorChecksLocalDeclarations(t *testing.T) {
	local := &ast.Property{
		Ident:       "local",
		TypeParams:  &ast.TypeParameterList{Params: []*ast.TypeParameter{{Ident: "T"}}},
		Constraints: &ast.TypeConstraintList{Constraints: []*ast.TypeConstraint{{Subject: "X"}}},
	}
	fn := &ast.Function{Ident: "outer", Body: &ast.BlockExpr{Statements: []ast.Statement{local}}}
	root := &ast.Module{Files: []*ast.File{{Decls: []ast.Decl{fn}}}}

	err := ast.Validate(root, ast.TypeParameterValidator)
	require.EqualError(t, err, "local: X is not a type parameter")
}
