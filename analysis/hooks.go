package analysis

import (
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Module is offered the root after everything below it has been rewritten.
func Module(f func(*Context, *ast.Module) rewrite.Result[*ast.Module]) *Unit {
	return register("Module", f)
}

func File(f func(*Context, *ast.File) rewrite.Result[*ast.File]) *Unit {
	return register("File", f)
}

// Declaration is offered every declaration, parameters and type parameters
// included. A replacement landing in a concretely typed slot such as
// Function.Params must have the slot's type.
func Declaration(f func(*Context, ast.Decl) rewrite.Result[ast.Decl]) *Unit {
	return register("Declaration", f)
}

// TypeParameterListOwner is offered every Class, Function, Property and
// TypeAlias.
func TypeParameterListOwner(f func(*Context, ast.TypeParameterListOwner) rewrite.Result[ast.Decl]) *Unit {
	return register("TypeParameterListOwner", f)
}

func Class(f func(*Context, *ast.Class) rewrite.Result[ast.Decl]) *Unit {
	return register("Class", f)
}

func Function(f func(*Context, *ast.Function) rewrite.Result[ast.Decl]) *Unit {
	return register("Function", f)
}

func Property(f func(*Context, *ast.Property) rewrite.Result[ast.Decl]) *Unit {
	return register("Property", f)
}

func TypeAlias(f func(*Context, *ast.TypeAlias) rewrite.Result[ast.Decl]) *Unit {
	return register("TypeAlias", f)
}

func Parameter(f func(*Context, *ast.Parameter) rewrite.Result[*ast.Parameter]) *Unit {
	return register("Parameter", f)
}

func TypeParameterList(f func(*Context, *ast.TypeParameterList) rewrite.Result[*ast.TypeParameterList]) *Unit {
	return register("TypeParameterList", f)
}

func TypeParameter(f func(*Context, *ast.TypeParameter) rewrite.Result[*ast.TypeParameter]) *Unit {
	return register("TypeParameter", f)
}

func TypeConstraintList(f func(*Context, *ast.TypeConstraintList) rewrite.Result[*ast.TypeConstraintList]) *Unit {
	return register("TypeConstraintList", f)
}

func TypeConstraint(f func(*Context, *ast.TypeConstraint) rewrite.Result[*ast.TypeConstraint]) *Unit {
	return register("TypeConstraint", f)
}

func TypeRef(f func(*Context, *ast.TypeRef) rewrite.Result[*ast.TypeRef]) *Unit {
	return register("TypeRef", f)
}

// Expression is offered every expression.
func Expression(f func(*Context, ast.Expr) rewrite.Result[ast.Expr]) *Unit {
	return register("Expression", f)
}

func NameRef(f func(*Context, *ast.NameRef) rewrite.Result[ast.Expr]) *Unit {
	return register("NameRef", f)
}

func Constant(f func(*Context, *ast.Constant) rewrite.Result[ast.Expr]) *Unit {
	return register("Constant", f)
}

func CallExpr(f func(*Context, *ast.CallExpr) rewrite.Result[ast.Expr]) *Unit {
	return register("CallExpr", f)
}

func BinaryExpr(f func(*Context, *ast.BinaryExpr) rewrite.Result[ast.Expr]) *Unit {
	return register("BinaryExpr", f)
}

func BlockExpr(f func(*Context, *ast.BlockExpr) rewrite.Result[ast.Expr]) *Unit {
	return register("BlockExpr", f)
}

func ReturnExpr(f func(*Context, *ast.ReturnExpr) rewrite.Result[ast.Expr]) *Unit {
	return register("ReturnExpr", f)
}

func BadExpr(f func(*Context, *ast.BadExpr) rewrite.Result[ast.Expr]) *Unit {
	return register("BadExpr", f)
}
