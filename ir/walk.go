package ir

import "iter"

// Children returns the non-nil direct children of n in declaration order,
// the same order in which a rewrite visits them.
func Children(n Element) []Element {
	var out []Element
	TransformChildren(n, func(c Element) Element {
		out = append(out, c)
		return c
	})
	return out
}

// Visitor defines the interface for IR traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Element) (w Visitor)
}

// Walk traverses an IR tree in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Element) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, c := range Children(node) {
		Walk(v, c)
	}
}

// Inspect traverses an IR tree in depth-first order. It calls f(node) for
// each node; if f returns true, Inspect invokes f recursively for each of
// the non-nil children of node.
func Inspect(node Element, f func(Element) bool) {
	Walk(inspector(f), node)
}

type inspector func(Element) bool

func (f inspector) Visit(node Element) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the tree rooted at
// root in depth-first preorder.
func Preorder(root Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		var visit func(Element) bool
		visit = func(n Element) bool {
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

// Count returns the number of nodes of kind k in the tree rooted at root.
func Count(root Element, k Kind) int {
	n := 0
	for e := range Preorder(root) {
		if e.Kind() == k {
			n++
		}
	}
	return n
}
