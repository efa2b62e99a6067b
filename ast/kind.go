package ast

// Kind identifies the concrete type of a node.
type Kind int

const (
	KindInvalid Kind = iota
	KindModule
	KindFile
	KindClass
	KindFunction
	KindProperty
	KindTypeAlias
	KindParameter
	KindTypeParameterList
	KindTypeParameter
	KindTypeConstraintList
	KindTypeConstraint
	KindTypeRef
	KindNameRef
	KindConstant
	KindCallExpr
	KindBinaryExpr
	KindBlockExpr
	KindReturnExpr
	KindBadExpr
	KindCount
)

var kindNames = [...]string{
	KindInvalid:            "Invalid",
	KindModule:             "Module",
	KindFile:               "File",
	KindClass:              "Class",
	KindFunction:           "Function",
	KindProperty:           "Property",
	KindTypeAlias:          "TypeAlias",
	KindParameter:          "Parameter",
	KindTypeParameterList:  "TypeParameterList",
	KindTypeParameter:      "TypeParameter",
	KindTypeConstraintList: "TypeConstraintList",
	KindTypeConstraint:     "TypeConstraint",
	KindTypeRef:            "TypeRef",
	KindNameRef:            "NameRef",
	KindConstant:           "Constant",
	KindCallExpr:           "CallExpr",
	KindBinaryExpr:         "BinaryExpr",
	KindBlockExpr:          "BlockExpr",
	KindReturnExpr:         "ReturnExpr",
	KindBadExpr:            "BadExpr",
}

func (k Kind) String() string {
	if k <= KindInvalid || k >= KindCount {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(KindCount)-1)
	for k := KindInvalid + 1; k < KindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (*Module) Kind() Kind             { return KindModule }
func (*File) Kind() Kind               { return KindFile }
func (*Class) Kind() Kind              { return KindClass }
func (*Function) Kind() Kind           { return KindFunction }
func (*Property) Kind() Kind           { return KindProperty }
func (*TypeAlias) Kind() Kind          { return KindTypeAlias }
func (*Parameter) Kind() Kind          { return KindParameter }
func (*TypeParameterList) Kind() Kind  { return KindTypeParameterList }
func (*TypeParameter) Kind() Kind      { return KindTypeParameter }
func (*TypeConstraintList) Kind() Kind { return KindTypeConstraintList }
func (*TypeConstraint) Kind() Kind     { return KindTypeConstraint }
func (*TypeRef) Kind() Kind            { return KindTypeRef }
func (*NameRef) Kind() Kind            { return KindNameRef }
func (*Constant) Kind() Kind           { return KindConstant }
func (*CallExpr) Kind() Kind           { return KindCallExpr }
func (*BinaryExpr) Kind() Kind         { return KindBinaryExpr }
func (*BlockExpr) Kind() Kind          { return KindBlockExpr }
func (*ReturnExpr) Kind() Kind         { return KindReturnExpr }
func (*BadExpr) Kind() Kind            { return KindBadExpr }
