package ir_test

import (
	"testing"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/stretchr/testify/require"
)

func identity(e ir.Element) ir.Element { return e }

func TestEveryKindIsHandled(t *testing.T) {
	seen := map[ir.Kind]bool{}
	for e := range ir.Preorder(irtest.Everything()) {
		seen[e.Kind()] = true
	}
	for _, k := range ir.Kinds() {
		require.True(t, seen[k], "fixture is missing %s", k)

		node := ir.New(k)
		require.NotNil(t, node, k.String())
		require.Equal(t, k, node.Kind())
		require.NotPanics(t, func() { ir.TransformChildren(node, identity) }, k.String())
	}
}

func TestTransformChildrenSharesUnchangedNodes(t *testing.T) {
	root := irtest.Everything()
	out := ir.TransformChildren(root, func(e ir.Element) ir.Element {
		return ir.TransformChildren(e, identity)
	})
	require.Same(t, root, out)
}

func TestTransformChildrenCopiesOnWrite(t *testing.T) {
	one := ir.IntConst(1)
	two := ir.IntConst(2)
	call := &ir.Call{Symbol: "f", DispatchReceiver: &ir.GetValue{Symbol: "x"}, Arguments: []ir.Expression{one, two}}

	out := ir.TransformChildren(call, func(e ir.Element) ir.Element {
		if e == two {
			return ir.IntConst(3)
		}
		return e
	})

	rebuilt, ok := out.(*ir.Call)
	require.True(t, ok)
	require.NotSame(t, call, rebuilt)
	require.Same(t, call.DispatchReceiver, rebuilt.DispatchReceiver)
	require.Same(t, one, rebuilt.Arguments[0])
	require.Equal(t, int64(3), rebuilt.Arguments[1].(*ir.Const).Value)

	// The input is untouched.
	require.Same(t, two, call.Arguments[1])
}

func TestTransformChildrenOrder(t *testing.T) {
	loop := &ir.DoWhileLoop{
		Body:      &ir.GetValue{Symbol: "body"},
		Condition: &ir.GetValue{Symbol: "cond"},
	}
	var order []string
	for _, c := range ir.Children(loop) {
		order = append(order, c.(*ir.GetValue).Symbol)
	}
	require.Equal(t, []string{"body", "cond"}, order)

	while := &ir.WhileLoop{
		Condition: &ir.GetValue{Symbol: "cond"},
		Body:      &ir.GetValue{Symbol: "body"},
	}
	order = nil
	for _, c := range ir.Children(while) {
		order = append(order, c.(*ir.GetValue).Symbol)
	}
	require.Equal(t, []string{"cond", "body"}, order)
}

func TestTransformChildrenSkipsNilSlots(t *testing.T) {
	call := &ir.Call{Symbol: "f", Arguments: []ir.Expression{nil, ir.IntConst(1)}}
	require.Len(t, ir.Children(call), 1)

	out := ir.TransformChildren(call, func(e ir.Element) ir.Element { return ir.IntConst(9) })
	args := out.(*ir.Call).Arguments
	require.Len(t, args, 2)
	require.Nil(t, args[0])
	require.Equal(t, int64(9), args[1].(*ir.Const).Value)
}

func TestTransformChildrenSlotMismatch(t *testing.T) {
	class := &ir.Class{Name: "C", TypeParameters: []*ir.TypeParameter{{Name: "T"}}}
	defer func() {
		r := recover()
		err, ok := r.(*errz.SlotError)
		require.True(t, ok, "unexpected panic value %v", r)
		require.Equal(t, "Class", err.Parent)
		require.Equal(t, "TypeParameters", err.Slot)
		require.Equal(t, "*ir.TypeParameter", err.Want)
		require.Equal(t, "*ir.ErrorDeclaration", err.Got)
	}()
	ir.TransformChildren(class, func(e ir.Element) ir.Element {
		return &ir.ErrorDeclaration{}
	})
	t.Fatal("expected a panic")
}

func TestTransformChildrenNil(t *testing.T) {
	require.Panics(t, func() { ir.TransformChildren(nil, identity) })
}
