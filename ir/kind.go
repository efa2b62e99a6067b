package ir

// Kind identifies the concrete type of a node.
type Kind int

const (
	KindInvalid Kind = iota
	KindModuleFragment
	KindFile
	KindClass
	KindSimpleFunction
	KindConstructor
	KindProperty
	KindField
	KindLocalDelegatedProperty
	KindEnumEntry
	KindAnonymousInitializer
	KindVariable
	KindTypeParameter
	KindValueParameter
	KindTypeAlias
	KindErrorDeclaration
	KindExpressionBody
	KindBlockBody
	KindSyntheticBody
	KindConst
	KindVararg
	KindSpreadElement
	KindBlock
	KindComposite
	KindStringConcatenation
	KindGetObjectValue
	KindGetEnumValue
	KindGetValue
	KindSetValue
	KindGetField
	KindSetField
	KindCall
	KindConstructorCall
	KindDelegatingConstructorCall
	KindEnumConstructorCall
	KindGetClass
	KindFunctionReference
	KindPropertyReference
	KindLocalDelegatedPropertyReference
	KindClassReference
	KindInstanceInitializerCall
	KindTypeOperatorCall
	KindWhen
	KindCondBranch
	KindElseBranch
	KindWhileLoop
	KindDoWhileLoop
	KindTry
	KindCatch
	KindBreak
	KindContinue
	KindReturn
	KindThrow
	KindSuspendableExpression
	KindSuspensionPoint
	KindDynamicOperatorExpression
	KindDynamicMemberExpression
	KindErrorExpression
	KindErrorCallExpression

	// KindCount is the number of valid kinds, plus one for KindInvalid.
	KindCount
)

var kindNames = [...]string{
	KindInvalid:                         "Invalid",
	KindModuleFragment:                  "ModuleFragment",
	KindFile:                            "File",
	KindClass:                           "Class",
	KindSimpleFunction:                  "SimpleFunction",
	KindConstructor:                     "Constructor",
	KindProperty:                        "Property",
	KindField:                           "Field",
	KindLocalDelegatedProperty:          "LocalDelegatedProperty",
	KindEnumEntry:                       "EnumEntry",
	KindAnonymousInitializer:            "AnonymousInitializer",
	KindVariable:                        "Variable",
	KindTypeParameter:                   "TypeParameter",
	KindValueParameter:                  "ValueParameter",
	KindTypeAlias:                       "TypeAlias",
	KindErrorDeclaration:                "ErrorDeclaration",
	KindExpressionBody:                  "ExpressionBody",
	KindBlockBody:                       "BlockBody",
	KindSyntheticBody:                   "SyntheticBody",
	KindConst:                           "Const",
	KindVararg:                          "Vararg",
	KindSpreadElement:                   "SpreadElement",
	KindBlock:                           "Block",
	KindComposite:                       "Composite",
	KindStringConcatenation:             "StringConcatenation",
	KindGetObjectValue:                  "GetObjectValue",
	KindGetEnumValue:                    "GetEnumValue",
	KindGetValue:                        "GetValue",
	KindSetValue:                        "SetValue",
	KindGetField:                        "GetField",
	KindSetField:                        "SetField",
	KindCall:                            "Call",
	KindConstructorCall:                 "ConstructorCall",
	KindDelegatingConstructorCall:       "DelegatingConstructorCall",
	KindEnumConstructorCall:             "EnumConstructorCall",
	KindGetClass:                        "GetClass",
	KindFunctionReference:               "FunctionReference",
	KindPropertyReference:               "PropertyReference",
	KindLocalDelegatedPropertyReference: "LocalDelegatedPropertyReference",
	KindClassReference:                  "ClassReference",
	KindInstanceInitializerCall:         "InstanceInitializerCall",
	KindTypeOperatorCall:                "TypeOperatorCall",
	KindWhen:                            "When",
	KindCondBranch:                      "CondBranch",
	KindElseBranch:                      "ElseBranch",
	KindWhileLoop:                       "WhileLoop",
	KindDoWhileLoop:                     "DoWhileLoop",
	KindTry:                             "Try",
	KindCatch:                           "Catch",
	KindBreak:                           "Break",
	KindContinue:                        "Continue",
	KindReturn:                          "Return",
	KindThrow:                           "Throw",
	KindSuspendableExpression:           "SuspendableExpression",
	KindSuspensionPoint:                 "SuspensionPoint",
	KindDynamicOperatorExpression:       "DynamicOperatorExpression",
	KindDynamicMemberExpression:         "DynamicMemberExpression",
	KindErrorExpression:                 "ErrorExpression",
	KindErrorCallExpression:             "ErrorCallExpression",
}

// String returns the Go type name of the kind, e.g. "WhileLoop".
func (k Kind) String() string {
	if k <= KindInvalid || k >= KindCount {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Tag returns the upper snake case tag used by dumps, e.g. "WHILE_LOOP".
func (k Kind) Tag() string {
	if k <= KindInvalid || k >= KindCount {
		return "INVALID"
	}
	return kindTags[k]
}

var kindTags = [...]string{
	KindModuleFragment:                  "MODULE_FRAGMENT",
	KindFile:                            "FILE",
	KindClass:                           "CLASS",
	KindSimpleFunction:                  "SIMPLE_FUNCTION",
	KindConstructor:                     "CONSTRUCTOR",
	KindProperty:                        "PROPERTY",
	KindField:                           "FIELD",
	KindLocalDelegatedProperty:          "LOCAL_DELEGATED_PROPERTY",
	KindEnumEntry:                       "ENUM_ENTRY",
	KindAnonymousInitializer:            "ANONYMOUS_INITIALIZER",
	KindVariable:                        "VARIABLE",
	KindTypeParameter:                   "TYPE_PARAMETER",
	KindValueParameter:                  "VALUE_PARAMETER",
	KindTypeAlias:                       "TYPE_ALIAS",
	KindErrorDeclaration:                "ERROR_DECLARATION",
	KindExpressionBody:                  "EXPRESSION_BODY",
	KindBlockBody:                       "BLOCK_BODY",
	KindSyntheticBody:                   "SYNTHETIC_BODY",
	KindConst:                           "CONST",
	KindVararg:                          "VARARG",
	KindSpreadElement:                   "SPREAD_ELEMENT",
	KindBlock:                           "BLOCK",
	KindComposite:                       "COMPOSITE",
	KindStringConcatenation:             "STRING_CONCATENATION",
	KindGetObjectValue:                  "GET_OBJECT_VALUE",
	KindGetEnumValue:                    "GET_ENUM_VALUE",
	KindGetValue:                        "GET_VALUE",
	KindSetValue:                        "SET_VALUE",
	KindGetField:                        "GET_FIELD",
	KindSetField:                        "SET_FIELD",
	KindCall:                            "CALL",
	KindConstructorCall:                 "CONSTRUCTOR_CALL",
	KindDelegatingConstructorCall:       "DELEGATING_CONSTRUCTOR_CALL",
	KindEnumConstructorCall:             "ENUM_CONSTRUCTOR_CALL",
	KindGetClass:                        "GET_CLASS",
	KindFunctionReference:               "FUNCTION_REFERENCE",
	KindPropertyReference:               "PROPERTY_REFERENCE",
	KindLocalDelegatedPropertyReference: "LOCAL_DELEGATED_PROPERTY_REFERENCE",
	KindClassReference:                  "CLASS_REFERENCE",
	KindInstanceInitializerCall:         "INSTANCE_INITIALIZER_CALL",
	KindTypeOperatorCall:                "TYPE_OPERATOR_CALL",
	KindWhen:                            "WHEN",
	KindCondBranch:                      "COND_BRANCH",
	KindElseBranch:                      "ELSE_BRANCH",
	KindWhileLoop:                       "WHILE_LOOP",
	KindDoWhileLoop:                     "DO_WHILE_LOOP",
	KindTry:                             "TRY",
	KindCatch:                           "CATCH",
	KindBreak:                           "BREAK",
	KindContinue:                        "CONTINUE",
	KindReturn:                          "RETURN",
	KindThrow:                           "THROW",
	KindSuspendableExpression:           "SUSPENDABLE_EXPRESSION",
	KindSuspensionPoint:                 "SUSPENSION_POINT",
	KindDynamicOperatorExpression:       "DYNAMIC_OPERATOR_EXPRESSION",
	KindDynamicMemberExpression:         "DYNAMIC_MEMBER_EXPRESSION",
	KindErrorExpression:                 "ERROR_EXPRESSION",
	KindErrorCallExpression:             "ERROR_CALL_EXPRESSION",
}

// KindOf returns the kind with the given name, as returned by String.
func KindOf(name string) (Kind, bool) {
	for k := KindInvalid + 1; k < KindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(KindCount)-1)
	for k := KindInvalid + 1; k < KindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (*ModuleFragment) Kind() Kind                  { return KindModuleFragment }
func (*File) Kind() Kind                            { return KindFile }
func (*Class) Kind() Kind                           { return KindClass }
func (*SimpleFunction) Kind() Kind                  { return KindSimpleFunction }
func (*Constructor) Kind() Kind                     { return KindConstructor }
func (*Property) Kind() Kind                        { return KindProperty }
func (*Field) Kind() Kind                           { return KindField }
func (*LocalDelegatedProperty) Kind() Kind          { return KindLocalDelegatedProperty }
func (*EnumEntry) Kind() Kind                       { return KindEnumEntry }
func (*AnonymousInitializer) Kind() Kind            { return KindAnonymousInitializer }
func (*Variable) Kind() Kind                        { return KindVariable }
func (*TypeParameter) Kind() Kind                   { return KindTypeParameter }
func (*ValueParameter) Kind() Kind                  { return KindValueParameter }
func (*TypeAlias) Kind() Kind                       { return KindTypeAlias }
func (*ErrorDeclaration) Kind() Kind                { return KindErrorDeclaration }
func (*ExpressionBody) Kind() Kind                  { return KindExpressionBody }
func (*BlockBody) Kind() Kind                       { return KindBlockBody }
func (*SyntheticBody) Kind() Kind                   { return KindSyntheticBody }
func (*Const) Kind() Kind                           { return KindConst }
func (*Vararg) Kind() Kind                          { return KindVararg }
func (*SpreadElement) Kind() Kind                   { return KindSpreadElement }
func (*Block) Kind() Kind                           { return KindBlock }
func (*Composite) Kind() Kind                       { return KindComposite }
func (*StringConcatenation) Kind() Kind             { return KindStringConcatenation }
func (*GetObjectValue) Kind() Kind                  { return KindGetObjectValue }
func (*GetEnumValue) Kind() Kind                    { return KindGetEnumValue }
func (*GetValue) Kind() Kind                        { return KindGetValue }
func (*SetValue) Kind() Kind                        { return KindSetValue }
func (*GetField) Kind() Kind                        { return KindGetField }
func (*SetField) Kind() Kind                        { return KindSetField }
func (*Call) Kind() Kind                            { return KindCall }
func (*ConstructorCall) Kind() Kind                 { return KindConstructorCall }
func (*DelegatingConstructorCall) Kind() Kind       { return KindDelegatingConstructorCall }
func (*EnumConstructorCall) Kind() Kind             { return KindEnumConstructorCall }
func (*GetClass) Kind() Kind                        { return KindGetClass }
func (*FunctionReference) Kind() Kind               { return KindFunctionReference }
func (*PropertyReference) Kind() Kind               { return KindPropertyReference }
func (*LocalDelegatedPropertyReference) Kind() Kind { return KindLocalDelegatedPropertyReference }
func (*ClassReference) Kind() Kind                  { return KindClassReference }
func (*InstanceInitializerCall) Kind() Kind         { return KindInstanceInitializerCall }
func (*TypeOperatorCall) Kind() Kind                { return KindTypeOperatorCall }
func (*When) Kind() Kind                            { return KindWhen }
func (*CondBranch) Kind() Kind                      { return KindCondBranch }
func (*ElseBranch) Kind() Kind                      { return KindElseBranch }
func (*WhileLoop) Kind() Kind                       { return KindWhileLoop }
func (*DoWhileLoop) Kind() Kind                     { return KindDoWhileLoop }
func (*Try) Kind() Kind                             { return KindTry }
func (*Catch) Kind() Kind                           { return KindCatch }
func (*Break) Kind() Kind                           { return KindBreak }
func (*Continue) Kind() Kind                        { return KindContinue }
func (*Return) Kind() Kind                          { return KindReturn }
func (*Throw) Kind() Kind                           { return KindThrow }
func (*SuspendableExpression) Kind() Kind           { return KindSuspendableExpression }
func (*SuspensionPoint) Kind() Kind                 { return KindSuspensionPoint }
func (*DynamicOperatorExpression) Kind() Kind       { return KindDynamicOperatorExpression }
func (*DynamicMemberExpression) Kind() Kind         { return KindDynamicMemberExpression }
func (*ErrorExpression) Kind() Kind                 { return KindErrorExpression }
func (*ErrorCallExpression) Kind() Kind             { return KindErrorCallExpression }
