package ir

// ConstKind is the kind of literal held by a Const.
type ConstKind int

const (
	ConstNull ConstKind = iota
	ConstBoolean
	ConstChar
	ConstInt
	ConstLong
	ConstString
	ConstFloat
	ConstDouble
)

func (k ConstKind) String() string {
	switch k {
	case ConstBoolean:
		return "Boolean"
	case ConstChar:
		return "Char"
	case ConstInt:
		return "Int"
	case ConstLong:
		return "Long"
	case ConstString:
		return "String"
	case ConstFloat:
		return "Float"
	case ConstDouble:
		return "Double"
	default:
		return "Null"
	}
}

// Const is a literal. Value holds a bool, rune, int64, string or float64
// depending on ConstKind, or nil for ConstNull.
type Const struct {
	markExpression
	Range
	Type      Type
	ConstKind ConstKind
	Value     any
}

// Vararg packs arguments for a vararg parameter.
type Vararg struct {
	markExpression
	Range
	Type        Type
	ElementType Type
	Elements    []VarargElement
}

// SpreadElement is "*array" inside a Vararg.
type SpreadElement struct {
	markSpread
	Range
	Expression Expression
}

// Block is a sequence of statements evaluating to its last expression.
type Block struct {
	markContainer
	Range
	Type       Type
	Origin     string
	Statements []Statement
}

// Composite is a sequence of statements that does not introduce a scope.
type Composite struct {
	markContainer
	Range
	Type       Type
	Origin     string
	Statements []Statement
}

type StringConcatenation struct {
	markExpression
	Range
	Type      Type
	Arguments []Expression
}

// GetObjectValue reads the instance of an object declaration.
type GetObjectValue struct {
	markSingleton
	Range
	Type   Type
	Symbol string
}

// GetEnumValue reads an enum entry.
type GetEnumValue struct {
	markSingleton
	Range
	Type   Type
	Symbol string
}

// GetValue reads a variable or parameter.
type GetValue struct {
	markValueAccess
	Range
	Type   Type
	Symbol string
}

// SetValue assigns a variable.
type SetValue struct {
	markValueAccess
	Range
	Type   Type
	Symbol string
	Value  Expression
}

type GetField struct {
	markFieldAccess
	Range
	Type     Type
	Symbol   string
	Receiver Expression // nil for static fields
}

type SetField struct {
	markFieldAccess
	Range
	Type     Type
	Symbol   string
	Receiver Expression
	Value    Expression
}

// Call invokes a function.
type Call struct {
	markFunctionAccess
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
}

type ConstructorCall struct {
	markFunctionAccess
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
}

// DelegatingConstructorCall is "this(...)" or "super(...)" in a constructor.
type DelegatingConstructorCall struct {
	markFunctionAccess
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
}

type EnumConstructorCall struct {
	markFunctionAccess
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
}

// GetClass is "x::class".
type GetClass struct {
	markExpression
	Range
	Type     Type
	Argument Expression
}

// FunctionReference is "::f" or "x::f".
type FunctionReference struct {
	markCallableReference
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
	ReflectionTarget  string
}

type PropertyReference struct {
	markCallableReference
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
	Field             string
	Getter            string
	Setter            string
}

type LocalDelegatedPropertyReference struct {
	markCallableReference
	Range
	Type              Type
	Symbol            string
	DispatchReceiver  Expression
	ExtensionReceiver Expression
	TypeArguments     []Type
	Arguments         []Expression
	Delegate          string
	Getter            string
	Setter            string
}

// ClassReference is "C::class".
type ClassReference struct {
	markDeclarationReference
	Range
	Type      Type
	Symbol    string
	ClassType Type
}

// InstanceInitializerCall runs the instance initializers of Class.
type InstanceInitializerCall struct {
	markExpression
	Range
	Type  Type
	Class string
}

// TypeOperator is the operation performed by a TypeOperatorCall.
type TypeOperator int

const (
	OpCast TypeOperator = iota
	OpImplicitCast
	OpSafeCast
	OpInstanceOf
	OpNotInstanceOf
	OpImplicitCoercionToUnit
)

func (o TypeOperator) String() string {
	switch o {
	case OpImplicitCast:
		return "IMPLICIT_CAST"
	case OpSafeCast:
		return "SAFE_CAST"
	case OpInstanceOf:
		return "INSTANCEOF"
	case OpNotInstanceOf:
		return "NOT_INSTANCEOF"
	case OpImplicitCoercionToUnit:
		return "IMPLICIT_COERCION_TO_UNIT"
	default:
		return "CAST"
	}
}

// Implicit reports whether the operator was inserted by the compiler.
func (o TypeOperator) Implicit() bool {
	return o == OpImplicitCast || o == OpImplicitCoercionToUnit
}

type TypeOperatorCall struct {
	markExpression
	Range
	Type        Type
	Operator    TypeOperator
	Argument    Expression
	TypeOperand Type
}

// When is a multi-way conditional. "if" lowers to a When with Origin "IF".
type When struct {
	markExpression
	Range
	Type     Type
	Origin   string
	Branches []Branch
}

// CondBranch is "condition -> result".
type CondBranch struct {
	markBranch
	Range
	Condition Expression
	Result    Expression
}

// ElseBranch is the final unconditional branch of a When.
type ElseBranch struct {
	markBranch
	Range
	Result Expression
}

type WhileLoop struct {
	markLoop
	Range
	Type      Type
	Label     string
	Condition Expression
	Body      Expression
}

type DoWhileLoop struct {
	markLoop
	Range
	Type      Type
	Label     string
	Condition Expression
	Body      Expression
}

type Try struct {
	markExpression
	Range
	Type    Type
	Body    Expression
	Catches []*Catch
	Finally Expression
}

// Catch is one catch clause of a Try.
type Catch struct {
	markElement
	Range
	Parameter *Variable
	Result    Expression
}

// Break leaves the loop with the given label, or the innermost loop.
type Break struct {
	markBreakContinue
	Range
	Type  Type
	Label string
}

type Continue struct {
	markBreakContinue
	Range
	Type  Type
	Label string
}

// Return returns Value from the function named by Target.
type Return struct {
	markExpression
	Range
	Type   Type
	Target string
	Value  Expression
}

type Throw struct {
	markExpression
	Range
	Type  Type
	Value Expression
}

type SuspendableExpression struct {
	markExpression
	Range
	Type              Type
	SuspensionPointID Expression
	Result            Expression
}

type SuspensionPoint struct {
	markExpression
	Range
	Type                       Type
	SuspensionPointIDParameter *Variable
	Result                     Expression
	ResumeResult               Expression
}

type DynamicOperatorExpression struct {
	markDynamic
	Range
	Type      Type
	Operator  string
	Receiver  Expression
	Arguments []Expression
}

type DynamicMemberExpression struct {
	markDynamic
	Range
	Type       Type
	MemberName string
	Receiver   Expression
}

// ErrorExpression stands in for an expression that failed to resolve.
type ErrorExpression struct {
	markErroneous
	Range
	Type        Type
	Description string
}

type ErrorCallExpression struct {
	markErroneous
	Range
	Type             Type
	Description      string
	ExplicitReceiver Expression
	Arguments        []Expression
}

func (x *GetObjectValue) Referenced() string                  { return x.Symbol }
func (x *GetEnumValue) Referenced() string                    { return x.Symbol }
func (x *GetValue) Referenced() string                        { return x.Symbol }
func (x *SetValue) Referenced() string                        { return x.Symbol }
func (x *GetField) Referenced() string                        { return x.Symbol }
func (x *SetField) Referenced() string                        { return x.Symbol }
func (x *Call) Referenced() string                            { return x.Symbol }
func (x *ConstructorCall) Referenced() string                 { return x.Symbol }
func (x *DelegatingConstructorCall) Referenced() string       { return x.Symbol }
func (x *EnumConstructorCall) Referenced() string             { return x.Symbol }
func (x *FunctionReference) Referenced() string               { return x.Symbol }
func (x *PropertyReference) Referenced() string               { return x.Symbol }
func (x *LocalDelegatedPropertyReference) Referenced() string { return x.Symbol }
func (x *ClassReference) Referenced() string                  { return x.Symbol }

func (x *Call) ValueArguments() []Expression                            { return x.Arguments }
func (x *ConstructorCall) ValueArguments() []Expression                 { return x.Arguments }
func (x *DelegatingConstructorCall) ValueArguments() []Expression       { return x.Arguments }
func (x *EnumConstructorCall) ValueArguments() []Expression             { return x.Arguments }
func (x *FunctionReference) ValueArguments() []Expression               { return x.Arguments }
func (x *PropertyReference) ValueArguments() []Expression               { return x.Arguments }
func (x *LocalDelegatedPropertyReference) ValueArguments() []Expression { return x.Arguments }
