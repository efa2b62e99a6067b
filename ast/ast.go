// Package ast defines the syntax tree seen by plugins during analysis.
//
// The tree is a closed set of node types. Declarations and expressions are
// both statements, so either may appear in a block. Nodes are treated as
// immutable once built: rewriting produces new nodes and shares unchanged
// subtrees with the input.
package ast

import "fmt"

// Position is a location in a source file. Line and Column are 1-based; the
// zero Position is unknown.
type Position struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

func (p Position) String() string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the source range of a node. Embed it to implement Pos and End.
type Span struct {
	From Position // first character of the node
	To   Position // first character after the node
}

func (s Span) Pos() Position { return s.From }
func (s Span) End() Position { return s.To }

// Node represents a portion of the syntax tree.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() Position

	// End returns the position of the first character immediately after the node.
	End() Position

	// Kind returns the concrete kind of the node.
	Kind() Kind

	// String returns source-like text for the node. It is similar to the
	// original source code, but not necessarily identical.
	String() string
}

// Statement is a node that may appear in a block.
type Statement interface {
	Node
	stmtNode()
}

// Decl represents a declaration.
type Decl interface {
	Statement
	declNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Statement
	exprNode()
}

// NamedDeclaration is a declaration with a name.
type NamedDeclaration interface {
	Decl
	Name() string
}

type decl struct{}

func (decl) stmtNode() {}
func (decl) declNode() {}

type expr struct{}

func (expr) stmtNode() {}
func (expr) exprNode() {}

// BadExpr represents an expression containing syntax errors.
// It is used by the parser to continue parsing after an error,
// allowing subsequent errors to be detected without giving up.
type BadExpr struct {
	expr
	Span
}

func (x *BadExpr) String() string { return "<bad expression>" }
