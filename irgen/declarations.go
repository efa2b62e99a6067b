package irgen

import (
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// ModuleFragment is offered the module itself, after everything below it has
// been rewritten.
func ModuleFragment(f func(*Context, *ir.ModuleFragment) rewrite.Result[*ir.ModuleFragment]) *Unit {
	return register("ModuleFragment", f)
}

func File(f func(*Context, *ir.File) rewrite.Result[*ir.File]) *Unit {
	return register("File", f)
}

// Declaration is offered every declaration. A replacement that lands in a
// concretely typed slot, such as Class.TypeParameters, must have the slot's type.
func Declaration(f func(*Context, ir.Declaration) rewrite.Result[ir.Declaration]) *Unit {
	return register("Declaration", f)
}

func Class(f func(*Context, *ir.Class) rewrite.Result[*ir.Class]) *Unit {
	return register("Class", f)
}

// Function is offered every SimpleFunction and Constructor.
func Function(f func(*Context, ir.Function) rewrite.Result[ir.Declaration]) *Unit {
	return register("Function", f)
}

func SimpleFunction(f func(*Context, *ir.SimpleFunction) rewrite.Result[*ir.SimpleFunction]) *Unit {
	return register("SimpleFunction", f)
}

func Constructor(f func(*Context, *ir.Constructor) rewrite.Result[ir.Declaration]) *Unit {
	return register("Constructor", f)
}

func Property(f func(*Context, *ir.Property) rewrite.Result[ir.Declaration]) *Unit {
	return register("Property", f)
}

func Field(f func(*Context, *ir.Field) rewrite.Result[*ir.Field]) *Unit {
	return register("Field", f)
}

func LocalDelegatedProperty(f func(*Context, *ir.LocalDelegatedProperty) rewrite.Result[ir.Declaration]) *Unit {
	return register("LocalDelegatedProperty", f)
}

func EnumEntry(f func(*Context, *ir.EnumEntry) rewrite.Result[ir.Declaration]) *Unit {
	return register("EnumEntry", f)
}

func AnonymousInitializer(f func(*Context, *ir.AnonymousInitializer) rewrite.Result[ir.Declaration]) *Unit {
	return register("AnonymousInitializer", f)
}

func Variable(f func(*Context, *ir.Variable) rewrite.Result[*ir.Variable]) *Unit {
	return register("Variable", f)
}

func TypeParameter(f func(*Context, *ir.TypeParameter) rewrite.Result[*ir.TypeParameter]) *Unit {
	return register("TypeParameter", f)
}

func ValueParameter(f func(*Context, *ir.ValueParameter) rewrite.Result[*ir.ValueParameter]) *Unit {
	return register("ValueParameter", f)
}

func TypeAlias(f func(*Context, *ir.TypeAlias) rewrite.Result[ir.Declaration]) *Unit {
	return register("TypeAlias", f)
}

func ErrorDeclaration(f func(*Context, *ir.ErrorDeclaration) rewrite.Result[ir.Declaration]) *Unit {
	return register("ErrorDeclaration", f)
}

// Body is offered every function, initializer and field body.
func Body(f func(*Context, ir.Body) rewrite.Result[ir.Body]) *Unit {
	return register("Body", f)
}

func ExpressionBody(f func(*Context, *ir.ExpressionBody) rewrite.Result[*ir.ExpressionBody]) *Unit {
	return register("ExpressionBody", f)
}

func BlockBody(f func(*Context, *ir.BlockBody) rewrite.Result[*ir.BlockBody]) *Unit {
	return register("BlockBody", f)
}

func SyntheticBody(f func(*Context, *ir.SyntheticBody) rewrite.Result[ir.Body]) *Unit {
	return register("SyntheticBody", f)
}
