package irgen

import (
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Expression is offered every expression, including loops, jumps and calls.
func Expression(f func(*Context, ir.Expression) rewrite.Result[ir.Expression]) *Unit {
	return register("Expression", f)
}

func SuspendableExpression(f func(*Context, *ir.SuspendableExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("SuspendableExpression", f)
}

func SuspensionPoint(f func(*Context, *ir.SuspensionPoint) rewrite.Result[ir.Expression]) *Unit {
	return register("SuspensionPoint", f)
}

func Const(f func(*Context, *ir.Const) rewrite.Result[ir.Expression]) *Unit {
	return register("Const", f)
}

func Vararg(f func(*Context, *ir.Vararg) rewrite.Result[ir.Expression]) *Unit {
	return register("Vararg", f)
}

func SpreadElement(f func(*Context, *ir.SpreadElement) rewrite.Result[*ir.SpreadElement]) *Unit {
	return register("SpreadElement", f)
}

// ContainerExpression is offered every Block and Composite.
func ContainerExpression(f func(*Context, ir.ContainerExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("ContainerExpression", f)
}

func Block(f func(*Context, *ir.Block) rewrite.Result[ir.Expression]) *Unit {
	return register("Block", f)
}

func Composite(f func(*Context, *ir.Composite) rewrite.Result[ir.Expression]) *Unit {
	return register("Composite", f)
}

func StringConcatenation(f func(*Context, *ir.StringConcatenation) rewrite.Result[ir.Expression]) *Unit {
	return register("StringConcatenation", f)
}

// DeclarationReference is offered every expression that refers to a
// declaration: value and field access, calls, callable and class references.
func DeclarationReference(f func(*Context, ir.DeclarationReference) rewrite.Result[ir.Expression]) *Unit {
	return register("DeclarationReference", f)
}

func SingletonReference(f func(*Context, ir.SingletonReference) rewrite.Result[ir.Expression]) *Unit {
	return register("SingletonReference", f)
}

func GetObjectValue(f func(*Context, *ir.GetObjectValue) rewrite.Result[ir.Expression]) *Unit {
	return register("GetObjectValue", f)
}

func GetEnumValue(f func(*Context, *ir.GetEnumValue) rewrite.Result[ir.Expression]) *Unit {
	return register("GetEnumValue", f)
}

func ValueAccess(f func(*Context, ir.ValueAccess) rewrite.Result[ir.Expression]) *Unit {
	return register("ValueAccess", f)
}

func GetValue(f func(*Context, *ir.GetValue) rewrite.Result[ir.Expression]) *Unit {
	return register("GetValue", f)
}

func SetValue(f func(*Context, *ir.SetValue) rewrite.Result[ir.Expression]) *Unit {
	return register("SetValue", f)
}

func FieldAccess(f func(*Context, ir.FieldAccess) rewrite.Result[ir.Expression]) *Unit {
	return register("FieldAccess", f)
}

func GetField(f func(*Context, *ir.GetField) rewrite.Result[ir.Expression]) *Unit {
	return register("GetField", f)
}

func SetField(f func(*Context, *ir.SetField) rewrite.Result[ir.Expression]) *Unit {
	return register("SetField", f)
}

func MemberAccess(f func(*Context, ir.MemberAccess) rewrite.Result[ir.Expression]) *Unit {
	return register("MemberAccess", f)
}

// FunctionAccess is offered every call, including constructor calls.
func FunctionAccess(f func(*Context, ir.FunctionAccess) rewrite.Result[ir.Expression]) *Unit {
	return register("FunctionAccess", f)
}

func Call(f func(*Context, *ir.Call) rewrite.Result[ir.Expression]) *Unit {
	return register("Call", f)
}

func ConstructorCall(f func(*Context, *ir.ConstructorCall) rewrite.Result[ir.Expression]) *Unit {
	return register("ConstructorCall", f)
}

func DelegatingConstructorCall(f func(*Context, *ir.DelegatingConstructorCall) rewrite.Result[ir.Expression]) *Unit {
	return register("DelegatingConstructorCall", f)
}

func EnumConstructorCall(f func(*Context, *ir.EnumConstructorCall) rewrite.Result[ir.Expression]) *Unit {
	return register("EnumConstructorCall", f)
}

func GetClass(f func(*Context, *ir.GetClass) rewrite.Result[ir.Expression]) *Unit {
	return register("GetClass", f)
}

func CallableReference(f func(*Context, ir.CallableReference) rewrite.Result[ir.Expression]) *Unit {
	return register("CallableReference", f)
}

func FunctionReference(f func(*Context, *ir.FunctionReference) rewrite.Result[ir.Expression]) *Unit {
	return register("FunctionReference", f)
}

func PropertyReference(f func(*Context, *ir.PropertyReference) rewrite.Result[ir.Expression]) *Unit {
	return register("PropertyReference", f)
}

func LocalDelegatedPropertyReference(f func(*Context, *ir.LocalDelegatedPropertyReference) rewrite.Result[ir.Expression]) *Unit {
	return register("LocalDelegatedPropertyReference", f)
}

func ClassReference(f func(*Context, *ir.ClassReference) rewrite.Result[ir.Expression]) *Unit {
	return register("ClassReference", f)
}

func InstanceInitializerCall(f func(*Context, *ir.InstanceInitializerCall) rewrite.Result[ir.Expression]) *Unit {
	return register("InstanceInitializerCall", f)
}

func TypeOperatorCall(f func(*Context, *ir.TypeOperatorCall) rewrite.Result[ir.Expression]) *Unit {
	return register("TypeOperatorCall", f)
}

func When(f func(*Context, *ir.When) rewrite.Result[ir.Expression]) *Unit {
	return register("When", f)
}

// Branch is offered every CondBranch and ElseBranch.
func Branch(f func(*Context, ir.Branch) rewrite.Result[ir.Branch]) *Unit {
	return register("Branch", f)
}

func CondBranch(f func(*Context, *ir.CondBranch) rewrite.Result[ir.Branch]) *Unit {
	return register("CondBranch", f)
}

func ElseBranch(f func(*Context, *ir.ElseBranch) rewrite.Result[*ir.ElseBranch]) *Unit {
	return register("ElseBranch", f)
}

func Loop(f func(*Context, ir.Loop) rewrite.Result[ir.Expression]) *Unit {
	return register("Loop", f)
}

func WhileLoop(f func(*Context, *ir.WhileLoop) rewrite.Result[ir.Expression]) *Unit {
	return register("WhileLoop", f)
}

func DoWhileLoop(f func(*Context, *ir.DoWhileLoop) rewrite.Result[ir.Expression]) *Unit {
	return register("DoWhileLoop", f)
}

func Try(f func(*Context, *ir.Try) rewrite.Result[ir.Expression]) *Unit {
	return register("Try", f)
}

func Catch(f func(*Context, *ir.Catch) rewrite.Result[*ir.Catch]) *Unit {
	return register("Catch", f)
}

func BreakContinue(f func(*Context, ir.BreakContinue) rewrite.Result[ir.Expression]) *Unit {
	return register("BreakContinue", f)
}

func Break(f func(*Context, *ir.Break) rewrite.Result[ir.Expression]) *Unit {
	return register("Break", f)
}

func Continue(f func(*Context, *ir.Continue) rewrite.Result[ir.Expression]) *Unit {
	return register("Continue", f)
}

func Return(f func(*Context, *ir.Return) rewrite.Result[ir.Expression]) *Unit {
	return register("Return", f)
}

func Throw(f func(*Context, *ir.Throw) rewrite.Result[ir.Expression]) *Unit {
	return register("Throw", f)
}

func DynamicExpression(f func(*Context, ir.DynamicExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("DynamicExpression", f)
}

func DynamicOperatorExpression(f func(*Context, *ir.DynamicOperatorExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("DynamicOperatorExpression", f)
}

func DynamicMemberExpression(f func(*Context, *ir.DynamicMemberExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("DynamicMemberExpression", f)
}

// Erroneous is offered every ErrorExpression and ErrorCallExpression.
func Erroneous(f func(*Context, ir.Erroneous) rewrite.Result[ir.Expression]) *Unit {
	return register("Erroneous", f)
}

func ErrorExpression(f func(*Context, *ir.ErrorExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("ErrorExpression", f)
}

func ErrorCallExpression(f func(*Context, *ir.ErrorCallExpression) rewrite.Result[ir.Expression]) *Unit {
	return register("ErrorCallExpression", f)
}
