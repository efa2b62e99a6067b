package ast

import (
	"fmt"
	"reflect"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Schema is the rewrite schema of the syntax tree universe.
var Schema rewrite.Schema[Node, *Module] = schema{}

type schema struct{}

func (schema) Universe() rewrite.Universe { return rewrite.SyntaxTree }

func (schema) TransformChildren(n Node, visit func(Node) Node) Node {
	return TransformChildren(n, visit)
}

func (schema) Lift(root *Module) Node { return root }

// TransformChildren returns n with each non-nil direct child c replaced by
// visit(c), in source order. n is never modified; if nothing changes n itself
// is returned. A replacement that does not fit its slot panics with
// *errz.SlotError, as does a node type outside the closed set.
func TransformChildren(n Node, visit func(Node) Node) Node {
	r := &rebuild{visit: visit, parent: n}
	switch n := n.(type) {
	case *TypeRef:
		x := *n
		x.Args = many(r, "Args", n.Args)
		return r.result(n, &x)
	case *NameRef, *Constant, *BadExpr:
		return n
	case *Module:
		x := *n
		x.Files = many(r, "Files", n.Files)
		return r.result(n, &x)
	case *File:
		x := *n
		x.Decls = many(r, "Decls", n.Decls)
		return r.result(n, &x)
	case *Class:
		x := *n
		x.TypeParams = one(r, "TypeParams", n.TypeParams)
		x.Supers = many(r, "Supers", n.Supers)
		x.Constraints = one(r, "Constraints", n.Constraints)
		x.Body = many(r, "Body", n.Body)
		return r.result(n, &x)
	case *Function:
		x := *n
		x.TypeParams = one(r, "TypeParams", n.TypeParams)
		x.Receiver = one(r, "Receiver", n.Receiver)
		x.Params = many(r, "Params", n.Params)
		x.Result = one(r, "Result", n.Result)
		x.Constraints = one(r, "Constraints", n.Constraints)
		x.Body = one(r, "Body", n.Body)
		return r.result(n, &x)
	case *Property:
		x := *n
		x.TypeParams = one(r, "TypeParams", n.TypeParams)
		x.Receiver = one(r, "Receiver", n.Receiver)
		x.Type = one(r, "Type", n.Type)
		x.Constraints = one(r, "Constraints", n.Constraints)
		x.Initializer = one(r, "Initializer", n.Initializer)
		return r.result(n, &x)
	case *TypeAlias:
		x := *n
		x.TypeParams = one(r, "TypeParams", n.TypeParams)
		x.Type = one(r, "Type", n.Type)
		return r.result(n, &x)
	case *Parameter:
		x := *n
		x.Type = one(r, "Type", n.Type)
		x.Default = one(r, "Default", n.Default)
		return r.result(n, &x)
	case *TypeParameterList:
		x := *n
		x.Params = many(r, "Params", n.Params)
		return r.result(n, &x)
	case *TypeParameter:
		x := *n
		x.Bound = one(r, "Bound", n.Bound)
		return r.result(n, &x)
	case *TypeConstraintList:
		x := *n
		x.Constraints = many(r, "Constraints", n.Constraints)
		return r.result(n, &x)
	case *TypeConstraint:
		x := *n
		x.Bound = one(r, "Bound", n.Bound)
		return r.result(n, &x)
	case *CallExpr:
		x := *n
		x.Callee = one(r, "Callee", n.Callee)
		x.TypeArgs = many(r, "TypeArgs", n.TypeArgs)
		x.Args = many(r, "Args", n.Args)
		return r.result(n, &x)
	case *BinaryExpr:
		x := *n
		x.Left = one(r, "Left", n.Left)
		x.Right = one(r, "Right", n.Right)
		return r.result(n, &x)
	case *BlockExpr:
		x := *n
		x.Statements = many(r, "Statements", n.Statements)
		return r.result(n, &x)
	case *ReturnExpr:
		x := *n
		x.Value = one(r, "Value", n.Value)
		return r.result(n, &x)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

type rebuild struct {
	visit   func(Node) Node
	parent  Node
	changed bool
}

func (r *rebuild) result(orig, rebuilt Node) Node {
	if !r.changed {
		return orig
	}
	return rebuilt
}

func isNil[T Node](c T) bool {
	return isNilNode(c)
}

// isNilNode reports whether n is nil or a nil node pointer.
func isNilNode(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func fit[T Node](r *rebuild, slot string, out Node) T {
	var zero T
	if isNilNode(out) {
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

func one[T Node](r *rebuild, slot string, c T) T {
	if isNil(c) {
		return c
	}
	out := r.visit(c)
	if out == Node(c) {
		return c
	}
	r.changed = true
	return fit[T](r, slot, out)
}

func many[T Node](r *rebuild, slot string, items []T) []T {
	var out []T
	for i, item := range items {
		next := item
		if !isNil(item) {
			if v := r.visit(item); v != Node(item) {
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
