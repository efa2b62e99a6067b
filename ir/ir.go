// Package ir defines the intermediate representation tree that codegen-phase
// plugins rewrite.
//
// The set of node types is closed: every node embeds exactly one unexported
// category marker, and the category interfaces below can only be satisfied
// by types of this package. Trees are built by the host (or by tests) and
// are treated as immutable once handed to a rewrite.
package ir

import (
	"strings"
)

// Range is the source span covered by a node, as byte offsets.
type Range struct {
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`
}

// Span returns the node's source span.
func (r Range) Span() Range { return r }

// Type is an IR type reference. Types are values, not nodes, and are never
// visited by a rewrite.
type Type struct {
	Name      string `json:"name,omitempty"`
	Arguments []Type `json:"arguments,omitempty"`
	Nullable  bool   `json:"nullable,omitempty"`
}

// String renders the type as "Name<Args>?".
func (t Type) String() string {
	if t.Name == "" {
		return "<unknown>"
	}
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Arguments) > 0 {
		b.WriteString("<")
		for i, a := range t.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(">")
	}
	if t.Nullable {
		b.WriteString("?")
	}
	return b.String()
}

// Named returns a non-generic, non-null type.
func Named(name string) Type { return Type{Name: name} }

// Element is any IR node.
type Element interface {
	// Kind returns the concrete kind of the node.
	Kind() Kind
	// Span returns the source range of the node.
	Span() Range
	elementNode()
}

// Statement is a node that may appear in a block: a declaration or an
// expression.
type Statement interface {
	Element
	statementNode()
}

// Declaration is a named program entity.
type Declaration interface {
	Statement
	declarationNode()
}

// Function is a SimpleFunction or a Constructor.
type Function interface {
	Declaration
	functionNode()
}

// Body is the body of a function, initializer or field.
type Body interface {
	Element
	bodyNode()
}

// Branch is a branch of a When: a CondBranch or an ElseBranch.
type Branch interface {
	Element
	branchNode()
}

// VarargElement is an element of a Vararg: an Expression or a SpreadElement.
type VarargElement interface {
	Element
	varargElementNode()
}

// Expression is a node producing a value. Loops, jumps and try are
// expressions too.
type Expression interface {
	Statement
	VarargElement
	expressionNode()
}

// ContainerExpression is a Block or a Composite.
type ContainerExpression interface {
	Expression
	containerNode()
}

// DeclarationReference is an expression referring to a declaration.
type DeclarationReference interface {
	Expression
	// Referenced returns the symbol of the referenced declaration.
	Referenced() string
	declarationReferenceNode()
}

// SingletonReference reads an object or enum entry instance.
type SingletonReference interface {
	DeclarationReference
	singletonNode()
}

// ValueAccess reads or writes a local value.
type ValueAccess interface {
	DeclarationReference
	valueAccessNode()
}

// FieldAccess reads or writes a field.
type FieldAccess interface {
	DeclarationReference
	fieldAccessNode()
}

// MemberAccess is a call or a callable reference.
type MemberAccess interface {
	DeclarationReference
	// ValueArguments returns the argument list; entries may be nil for
	// parameters that use their default value.
	ValueArguments() []Expression
	memberAccessNode()
}

// FunctionAccess is any kind of call.
type FunctionAccess interface {
	MemberAccess
	functionAccessNode()
}

// CallableReference is a reference to a function or property.
type CallableReference interface {
	MemberAccess
	callableReferenceNode()
}

// Loop is a WhileLoop or a DoWhileLoop.
type Loop interface {
	Expression
	loopNode()
}

// BreakContinue is a Break or a Continue.
type BreakContinue interface {
	Expression
	breakContinueNode()
}

// DynamicExpression is an operation on a dynamically typed value.
type DynamicExpression interface {
	Expression
	dynamicNode()
}

// Erroneous is an expression produced by error recovery.
type Erroneous interface {
	Expression
	erroneousNode()
}

// Category markers. Each node type embeds exactly one.

type markElement struct{}

func (markElement) elementNode() {}

type markStatement struct{ markElement }

func (markStatement) statementNode() {}

type markDeclaration struct{ markStatement }

func (markDeclaration) declarationNode() {}

type markFunction struct{ markDeclaration }

func (markFunction) functionNode() {}

type markBody struct{ markElement }

func (markBody) bodyNode() {}

type markBranch struct{ markElement }

func (markBranch) branchNode() {}

type markSpread struct{ markElement }

func (markSpread) varargElementNode() {}

type markExpression struct{ markStatement }

func (markExpression) varargElementNode() {}
func (markExpression) expressionNode()    {}

type markContainer struct{ markExpression }

func (markContainer) containerNode() {}

type markDeclarationReference struct{ markExpression }

func (markDeclarationReference) declarationReferenceNode() {}

type markSingleton struct{ markDeclarationReference }

func (markSingleton) singletonNode() {}

type markValueAccess struct{ markDeclarationReference }

func (markValueAccess) valueAccessNode() {}

type markFieldAccess struct{ markDeclarationReference }

func (markFieldAccess) fieldAccessNode() {}

type markMemberAccess struct{ markDeclarationReference }

func (markMemberAccess) memberAccessNode() {}

type markFunctionAccess struct{ markMemberAccess }

func (markFunctionAccess) functionAccessNode() {}

type markCallableReference struct{ markMemberAccess }

func (markCallableReference) callableReferenceNode() {}

type markLoop struct{ markExpression }

func (markLoop) loopNode() {}

type markBreakContinue struct{ markExpression }

func (markBreakContinue) breakContinueNode() {}

type markDynamic struct{ markExpression }

func (markDynamic) dynamicNode() {}

type markErroneous struct{ markExpression }

func (markErroneous) erroneousNode() {}
