package ast

import "iter"

// Children returns the non-nil direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	TransformChildren(n, func(c Node) Node {
		out = append(out, c)
		return c
	})
	return out
}

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		Walk(v, c)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the syntax tree
// rooted at root in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, c := range Children(n) {
				if !visit(c) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Owners returns an iterator over every TypeParameterListOwner in the tree.
func Owners(root Node) iter.Seq[TypeParameterListOwner] {
	return func(yield func(TypeParameterListOwner) bool) {
		for n := range Preorder(root) {
			if o, ok := n.(TypeParameterListOwner); ok && !yield(o) {
				return
			}
		}
	}
}
