package ir

// ModuleFragment is the root of an IR tree: the files of one module.
type ModuleFragment struct {
	markElement
	Range
	Name  string
	Files []*File
}

// File holds the top-level declarations of one source file.
type File struct {
	markElement
	Range
	Path         string
	Package      string
	Declarations []Declaration
}

// ClassKind distinguishes the flavors of Class.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindObject
	ClassKindEnum
	ClassKindAnnotation
)

func (k ClassKind) String() string {
	switch k {
	case ClassKindInterface:
		return "interface"
	case ClassKindObject:
		return "object"
	case ClassKindEnum:
		return "enum class"
	case ClassKindAnnotation:
		return "annotation class"
	default:
		return "class"
	}
}

// Class declares a class, interface, object, enum or annotation.
type Class struct {
	markDeclaration
	Range
	Name           string
	ClassKind      ClassKind
	TypeParameters []*TypeParameter
	SuperTypes     []Type
	Declarations   []Declaration
}

// SimpleFunction is a named function, accessor or lambda body.
type SimpleFunction struct {
	markFunction
	Range
	Name             string
	Suspend          bool
	TypeParameters   []*TypeParameter
	DispatchReceiver *ValueParameter
	ValueParameters  []*ValueParameter
	ReturnType       Type
	Body             Body
}

// Constructor declares a constructor of Class.
type Constructor struct {
	markFunction
	Range
	Class           string
	Primary         bool
	TypeParameters  []*TypeParameter
	ValueParameters []*ValueParameter
	Body            Body
}

// Property groups a backing field and its accessors.
type Property struct {
	markDeclaration
	Range
	Name         string
	Mutable      bool
	BackingField *Field
	Getter       *SimpleFunction
	Setter       *SimpleFunction
}

// Field is a storage slot of a class or file.
type Field struct {
	markDeclaration
	Range
	Name        string
	Type        Type
	Static      bool
	Initializer *ExpressionBody
}

// LocalDelegatedProperty is a local "val x by delegate".
type LocalDelegatedProperty struct {
	markDeclaration
	Range
	Name     string
	Type     Type
	Mutable  bool
	Delegate *Variable
	Getter   *SimpleFunction
	Setter   *SimpleFunction
}

// EnumEntry is one entry of an enum class.
type EnumEntry struct {
	markDeclaration
	Range
	Name        string
	Initializer *ExpressionBody
	Class       *Class // body of an entry with members; nil otherwise
}

type AnonymousInitializer struct {
	markDeclaration
	Range
	Static bool
	Body   *BlockBody
}

// Variable is a local variable. Catch parameters are variables too.
type Variable struct {
	markDeclaration
	Range
	Name        string
	Type        Type
	Mutable     bool
	Initializer Expression
}

type TypeParameter struct {
	markDeclaration
	Range
	Name       string
	Index      int
	Variance   string // "", "in" or "out"
	Reified    bool
	SuperTypes []Type
}

type ValueParameter struct {
	markDeclaration
	Range
	Name    string
	Index   int
	Type    Type
	Vararg  bool
	Default *ExpressionBody
}

type TypeAlias struct {
	markDeclaration
	Range
	Name           string
	TypeParameters []*TypeParameter
	Expanded       Type
}

// ErrorDeclaration stands in for a declaration that failed to resolve.
type ErrorDeclaration struct {
	markDeclaration
	Range
}

// ExpressionBody is a body consisting of a single expression.
type ExpressionBody struct {
	markBody
	Range
	Expression Expression
}

type BlockBody struct {
	markBody
	Range
	Statements []Statement
}

// SyntheticBody is a body generated by the host, e.g. enum "values()".
type SyntheticBody struct {
	markBody
	Range
	SyntheticKind string
}
