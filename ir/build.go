package ir

// Well-known builtin types.
var (
	TypeUnit    = Named("Unit")
	TypeNothing = Named("Nothing")
	TypeBoolean = Named("Boolean")
	TypeInt     = Named("Int")
	TypeLong    = Named("Long")
	TypeString  = Named("String")
	TypeDouble  = Named("Double")
	TypeAny     = Named("Any")
)

// IntConst returns an Int literal.
func IntConst(v int64) *Const {
	return &Const{Type: TypeInt, ConstKind: ConstInt, Value: v}
}

// StringConst returns a String literal.
func StringConst(v string) *Const {
	return &Const{Type: TypeString, ConstKind: ConstString, Value: v}
}

// BoolConst returns a Boolean literal.
func BoolConst(v bool) *Const {
	return &Const{Type: TypeBoolean, ConstKind: ConstBoolean, Value: v}
}

func NullConst() *Const {
	return &Const{Type: Type{Name: "Nothing", Nullable: true}, ConstKind: ConstNull}
}

// NewIf returns the When form of "if (cond) then else otherwise". otherwise
// may be nil.
func NewIf(typ Type, cond, then, otherwise Expression) *When {
	w := &When{
		Type:     typ,
		Origin:   "IF",
		Branches: []Branch{&CondBranch{Condition: cond, Result: then}},
	}
	if otherwise != nil {
		w.Branches = append(w.Branches, &ElseBranch{Result: otherwise})
	}
	return w
}

// NewModule wraps declarations into a module with a single file.
func NewModule(name, path string, decls ...Declaration) *ModuleFragment {
	return &ModuleFragment{
		Name:  name,
		Files: []*File{{Path: path, Declarations: decls}},
	}
}

// NewFunction returns a function whose block body holds stmts.
func NewFunction(name string, returnType Type, stmts ...Statement) *SimpleFunction {
	return &SimpleFunction{
		Name:       name,
		ReturnType: returnType,
		Body:       &BlockBody{Statements: stmts},
	}
}
