// Package rewrite implements the bottom-up tree rewriting protocol shared by
// the syntax tree and IR universes.
//
// A Schema knows how to rebuild a node of its universe with rewritten
// children. A Binding pairs a node kind with a plugin callback. Rewrite walks
// a tree in strict post-order: every child is rewritten before its parent is
// offered to the callback, and the callback sees the parent with its
// children already replaced. A callback returning Keep leaves the node as
// rebuilt; a callback returning Replace substitutes its value, which is not
// rewritten again.
package rewrite

// Schema describes one universe of nodes.
type Schema[E, R any] interface {
	// Universe returns the universe the schema belongs to.
	Universe() Universe

	// TransformChildren returns n with every non-nil direct child c replaced
	// by visit(c), in declaration order. If no child changes, n itself is
	// returned. It must never modify n.
	TransformChildren(n E, visit func(E) E) E

	// Lift converts a root into a node of the universe.
	Lift(root R) E
}

// Outcome records what a Binding did with a node.
type Outcome int

const (
	// Skipped means the node is not of the bound kind.
	Skipped Outcome = iota
	// Declined means the callback ran and returned Keep.
	Declined
	// Replaced means the callback ran and returned a replacement.
	Replaced
)

// Binding applies a callback to a node if the node is of the bound kind. It
// returns the node to use in place of n and what happened.
type Binding[E, R any] func(ctx *Context[R], n E) (E, Outcome)

// Bind builds a Binding for callback f, bound to every node that is an N.
// N may be a concrete node type or an interface covering several kinds. The
// substitute type S is converted back into the universe's node type by up.
func Bind[E, R, N, S any](f func(*Context[R], N) Result[S], up func(S) E) Binding[E, R] {
	return func(ctx *Context[R], n E) (E, Outcome) {
		target, ok := any(n).(N)
		if !ok {
			return n, Skipped
		}
		s, ok := f(ctx, target).Get()
		if !ok {
			return n, Declined
		}
		return up(s), Replaced
	}
}

// Stats summarizes one traversal.
type Stats struct {
	Visited  int // nodes visited
	Matched  int // callback invocations
	Replaced int // invocations that returned a replacement
}

// Rewrite rewrites the tree rooted at root bottom-up with a single binding.
func Rewrite[E, R any](schema Schema[E, R], ctx *Context[R], root E, bind Binding[E, R]) E {
	out, _ := rewriteStats(schema, ctx, root, bind)
	return out
}

func rewriteStats[E, R any](schema Schema[E, R], ctx *Context[R], root E, bind Binding[E, R]) (E, Stats) {
	var stats Stats
	var visit func(E) E
	visit = func(n E) E {
		stats.Visited++
		n = schema.TransformChildren(n, visit)
		out, outcome := bind(ctx, n)
		switch outcome {
		case Declined:
			stats.Matched++
		case Replaced:
			stats.Matched++
			stats.Replaced++
		}
		return out
	}
	return visit(root), stats
}
