package ast

import (
	"bytes"
	"strings"
)

// NameRef is a reference to a name, e.g. "x".
type NameRef struct {
	expr
	Span
	Name string
}

func (x *NameRef) String() string { return x.Name }

// Constant is a literal. Literal holds the source text, e.g. `1`, `"a"` or
// `true`.
type Constant struct {
	expr
	Span
	Literal string
}

func (x *Constant) String() string { return x.Literal }

// CallExpr is "Callee<TypeArgs>(Args)".
type CallExpr struct {
	expr
	Span
	Callee   Expr
	TypeArgs []*TypeRef
	Args     []Expr
}

func (x *CallExpr) String() string {
	var out bytes.Buffer
	if x.Callee != nil {
		out.WriteString(x.Callee.String())
	}
	if len(x.TypeArgs) > 0 {
		out.WriteString("<" + joinTypeRefs(x.TypeArgs) + ">")
	}
	args := make([]string, 0, len(x.Args))
	for _, a := range x.Args {
		if a != nil {
			args = append(args, a.String())
		}
	}
	out.WriteString("(" + strings.Join(args, ", ") + ")")
	return out.String()
}

// BinaryExpr is "Left Op Right".
type BinaryExpr struct {
	expr
	Span
	Left  Expr
	Op    string
	Right Expr
}

func (x *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if x.Left != nil {
		out.WriteString(x.Left.String())
	}
	out.WriteString(" " + x.Op + " ")
	if x.Right != nil {
		out.WriteString(x.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

// BlockExpr is a braced sequence of statements.
type BlockExpr struct {
	expr
	Span
	Statements []Statement
}

func (x *BlockExpr) String() string {
	if len(x.Statements) == 0 {
		return "{ }"
	}
	var out bytes.Buffer
	out.WriteString("{")
	for _, s := range x.Statements {
		if s != nil {
			out.WriteString("\n    " + strings.ReplaceAll(s.String(), "\n", "\n    "))
		}
	}
	out.WriteString("\n}")
	return out.String()
}

// ReturnExpr is "return@Label Value".
type ReturnExpr struct {
	expr
	Span
	Label string
	Value Expr
}

func (x *ReturnExpr) String() string {
	var out bytes.Buffer
	out.WriteString("return")
	if x.Label != "" {
		out.WriteString("@" + x.Label)
	}
	if x.Value != nil {
		out.WriteString(" " + x.Value.String())
	}
	return out.String()
}
