package ir

import (
	"fmt"
	"reflect"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Schema is the rewrite schema of the IR universe.
var Schema rewrite.Schema[Element, *ModuleFragment] = schema{}

type schema struct{}

func (schema) Universe() rewrite.Universe { return rewrite.IR }

func (schema) TransformChildren(n Element, visit func(Element) Element) Element {
	return TransformChildren(n, visit)
}

func (schema) Lift(root *ModuleFragment) Element { return root }

// TransformChildren returns n with each non-nil direct child c replaced by
// visit(c), preserving order and arity. Children are visited in declaration
// order. n is never modified: if any child changes, a shallow copy of n is
// returned; otherwise n itself is returned, so untouched subtrees are shared
// between the input and the output.
//
// A replacement that does not fit its slot panics with *errz.SlotError. Node
// types outside the closed set panic as well.
func TransformChildren(n Element, visit func(Element) Element) Element {
	r := &rebuild{visit: visit, parent: n}
	switch n := n.(type) {
	case *TypeParameter, *ErrorDeclaration, *SyntheticBody, *Const,
		*GetObjectValue, *GetEnumValue, *GetValue, *ClassReference,
		*InstanceInitializerCall, *Break, *Continue, *ErrorExpression:
		// Leaves.
		return n
	case *ModuleFragment:
		x := *n
		x.Files = many(r, "Files", n.Files)
		return r.result(n, &x)
	case *File:
		x := *n
		x.Declarations = many(r, "Declarations", n.Declarations)
		return r.result(n, &x)
	case *Class:
		x := *n
		x.TypeParameters = many(r, "TypeParameters", n.TypeParameters)
		x.Declarations = many(r, "Declarations", n.Declarations)
		return r.result(n, &x)
	case *SimpleFunction:
		x := *n
		x.TypeParameters = many(r, "TypeParameters", n.TypeParameters)
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ValueParameters = many(r, "ValueParameters", n.ValueParameters)
		x.Body = one(r, "Body", n.Body)
		return r.result(n, &x)
	case *Constructor:
		x := *n
		x.TypeParameters = many(r, "TypeParameters", n.TypeParameters)
		x.ValueParameters = many(r, "ValueParameters", n.ValueParameters)
		x.Body = one(r, "Body", n.Body)
		return r.result(n, &x)
	case *Property:
		x := *n
		x.BackingField = one(r, "BackingField", n.BackingField)
		x.Getter = one(r, "Getter", n.Getter)
		x.Setter = one(r, "Setter", n.Setter)
		return r.result(n, &x)
	case *Field:
		x := *n
		x.Initializer = one(r, "Initializer", n.Initializer)
		return r.result(n, &x)
	case *LocalDelegatedProperty:
		x := *n
		x.Delegate = one(r, "Delegate", n.Delegate)
		x.Getter = one(r, "Getter", n.Getter)
		x.Setter = one(r, "Setter", n.Setter)
		return r.result(n, &x)
	case *EnumEntry:
		x := *n
		x.Initializer = one(r, "Initializer", n.Initializer)
		x.Class = one(r, "Class", n.Class)
		return r.result(n, &x)
	case *AnonymousInitializer:
		x := *n
		x.Body = one(r, "Body", n.Body)
		return r.result(n, &x)
	case *Variable:
		x := *n
		x.Initializer = one(r, "Initializer", n.Initializer)
		return r.result(n, &x)
	case *ValueParameter:
		x := *n
		x.Default = one(r, "Default", n.Default)
		return r.result(n, &x)
	case *TypeAlias:
		x := *n
		x.TypeParameters = many(r, "TypeParameters", n.TypeParameters)
		return r.result(n, &x)
	case *ExpressionBody:
		x := *n
		x.Expression = one(r, "Expression", n.Expression)
		return r.result(n, &x)
	case *BlockBody:
		x := *n
		x.Statements = many(r, "Statements", n.Statements)
		return r.result(n, &x)
	case *Vararg:
		x := *n
		x.Elements = many(r, "Elements", n.Elements)
		return r.result(n, &x)
	case *SpreadElement:
		x := *n
		x.Expression = one(r, "Expression", n.Expression)
		return r.result(n, &x)
	case *Block:
		x := *n
		x.Statements = many(r, "Statements", n.Statements)
		return r.result(n, &x)
	case *Composite:
		x := *n
		x.Statements = many(r, "Statements", n.Statements)
		return r.result(n, &x)
	case *StringConcatenation:
		x := *n
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *SetValue:
		x := *n
		x.Value = one(r, "Value", n.Value)
		return r.result(n, &x)
	case *GetField:
		x := *n
		x.Receiver = one(r, "Receiver", n.Receiver)
		return r.result(n, &x)
	case *SetField:
		x := *n
		x.Receiver = one(r, "Receiver", n.Receiver)
		x.Value = one(r, "Value", n.Value)
		return r.result(n, &x)
	case *Call:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *ConstructorCall:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *DelegatingConstructorCall:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *EnumConstructorCall:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *GetClass:
		x := *n
		x.Argument = one(r, "Argument", n.Argument)
		return r.result(n, &x)
	case *FunctionReference:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *PropertyReference:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *LocalDelegatedPropertyReference:
		x := *n
		x.DispatchReceiver = one(r, "DispatchReceiver", n.DispatchReceiver)
		x.ExtensionReceiver = one(r, "ExtensionReceiver", n.ExtensionReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *TypeOperatorCall:
		x := *n
		x.Argument = one(r, "Argument", n.Argument)
		return r.result(n, &x)
	case *When:
		x := *n
		x.Branches = many(r, "Branches", n.Branches)
		return r.result(n, &x)
	case *CondBranch:
		x := *n
		x.Condition = one(r, "Condition", n.Condition)
		x.Result = one(r, "Result", n.Result)
		return r.result(n, &x)
	case *ElseBranch:
		x := *n
		x.Result = one(r, "Result", n.Result)
		return r.result(n, &x)
	case *WhileLoop:
		x := *n
		x.Condition = one(r, "Condition", n.Condition)
		x.Body = one(r, "Body", n.Body)
		return r.result(n, &x)
	case *DoWhileLoop:
		x := *n
		x.Body = one(r, "Body", n.Body)
		x.Condition = one(r, "Condition", n.Condition)
		return r.result(n, &x)
	case *Try:
		x := *n
		x.Body = one(r, "Body", n.Body)
		x.Catches = many(r, "Catches", n.Catches)
		x.Finally = one(r, "Finally", n.Finally)
		return r.result(n, &x)
	case *Catch:
		x := *n
		x.Parameter = one(r, "Parameter", n.Parameter)
		x.Result = one(r, "Result", n.Result)
		return r.result(n, &x)
	case *Return:
		x := *n
		x.Value = one(r, "Value", n.Value)
		return r.result(n, &x)
	case *Throw:
		x := *n
		x.Value = one(r, "Value", n.Value)
		return r.result(n, &x)
	case *SuspendableExpression:
		x := *n
		x.SuspensionPointID = one(r, "SuspensionPointID", n.SuspensionPointID)
		x.Result = one(r, "Result", n.Result)
		return r.result(n, &x)
	case *SuspensionPoint:
		x := *n
		x.SuspensionPointIDParameter = one(r, "SuspensionPointIDParameter", n.SuspensionPointIDParameter)
		x.Result = one(r, "Result", n.Result)
		x.ResumeResult = one(r, "ResumeResult", n.ResumeResult)
		return r.result(n, &x)
	case *DynamicOperatorExpression:
		x := *n
		x.Receiver = one(r, "Receiver", n.Receiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	case *DynamicMemberExpression:
		x := *n
		x.Receiver = one(r, "Receiver", n.Receiver)
		return r.result(n, &x)
	case *ErrorCallExpression:
		x := *n
		x.ExplicitReceiver = one(r, "ExplicitReceiver", n.ExplicitReceiver)
		x.Arguments = many(r, "Arguments", n.Arguments)
		return r.result(n, &x)
	default:
		panic(fmt.Sprintf("ir: unexpected node type %T", n))
	}
}

type rebuild struct {
	visit   func(Element) Element
	parent  Element
	changed bool
}

func (r *rebuild) result(orig, rebuilt Element) Element {
	if !r.changed {
		return orig
	}
	return rebuilt
}

func isZero[T Element](c T) bool {
	return isNilElement(c)
}

// isNilElement reports whether e is nil or a nil node pointer. Hooks typed
// on a concrete kind remove a node by returning a nil pointer of that type.
func isNilElement(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// fit converts a replacement into the slot type T.
func fit[T Element](r *rebuild, slot string, out Element) T {
	var zero T
	if isNilElement(out) {
		return zero
	}
	t, ok := out.(T)
	if !ok {
		panic(&errz.SlotError{
			Parent: r.parent.Kind().String(),
			Slot:   slot,
			Want:   reflect.TypeFor[T]().String(),
			Got:    fmt.Sprintf("%T", out),
		})
	}
	return t
}

// one rewrites an optional single-child slot.
func one[T Element](r *rebuild, slot string, c T) T {
	if isZero(c) {
		return c
	}
	out := r.visit(c)
	if out == Element(c) {
		return c
	}
	r.changed = true
	return fit[T](r, slot, out)
}

// many rewrites a list slot, allocating a new slice only when an element
// changes.
func many[T Element](r *rebuild, slot string, items []T) []T {
	var out []T
	for i, item := range items {
		next := item
		if !isZero(item) {
			if v := r.visit(item); v != Element(item) {
				next = fit[T](r, slot, v)
				if out == nil {
					out = make([]T, len(items))
					copy(out, items[:i])
				}
			}
		}
		if out != nil {
			out[i] = next
		}
	}
	if out == nil {
		return items
	}
	r.changed = true
	return out
}
