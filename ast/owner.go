package ast

// TypeParameterListOwner is a named declaration that may declare type
// parameters and a where clause. It is implemented by Class, Function,
// Property and TypeAlias.
type TypeParameterListOwner interface {
	NamedDeclaration

	// TypeParameterList returns the "<...>" list, or nil if there is none.
	TypeParameterList() *TypeParameterList

	// TypeConstraintList returns the where clause, or nil if there is none.
	TypeConstraintList() *TypeConstraintList

	// TypeConstraints returns the constraints of the where clause.
	TypeConstraints() []*TypeConstraint

	// TypeParameters returns the declared type parameters.
	TypeParameters() []*TypeParameter
}

var (
	_ TypeParameterListOwner = (*Class)(nil)
	_ TypeParameterListOwner = (*Function)(nil)
	_ TypeParameterListOwner = (*Property)(nil)
	_ TypeParameterListOwner = (*TypeAlias)(nil)
)

func (c *Class) TypeParameterList() *TypeParameterList      { return c.TypeParams }
func (c *Class) TypeConstraintList() *TypeConstraintList    { return c.Constraints }
func (c *Class) TypeConstraints() []*TypeConstraint         { return c.Constraints.list() }
func (c *Class) TypeParameters() []*TypeParameter           { return c.TypeParams.list() }
func (f *Function) TypeParameterList() *TypeParameterList   { return f.TypeParams }
func (f *Function) TypeConstraintList() *TypeConstraintList { return f.Constraints }
func (f *Function) TypeConstraints() []*TypeConstraint      { return f.Constraints.list() }
func (f *Function) TypeParameters() []*TypeParameter        { return f.TypeParams.list() }
func (p *Property) TypeParameterList() *TypeParameterList   { return p.TypeParams }
func (p *Property) TypeConstraintList() *TypeConstraintList { return p.Constraints }
func (p *Property) TypeConstraints() []*TypeConstraint      { return p.Constraints.list() }
func (p *Property) TypeParameters() []*TypeParameter        { return p.TypeParams.list() }

func (a *TypeAlias) TypeParameterList() *TypeParameterList { return a.TypeParams }

// TypeConstraintList always returns nil: a type alias has no where clause.
func (a *TypeAlias) TypeConstraintList() *TypeConstraintList { return nil }
func (a *TypeAlias) TypeConstraints() []*TypeConstraint      { return nil }
func (a *TypeAlias) TypeParameters() []*TypeParameter        { return a.TypeParams.list() }

func (l *TypeParameterList) list() []*TypeParameter {
	if l == nil {
		return nil
	}
	return l.Params
}

func (l *TypeConstraintList) list() []*TypeConstraint {
	if l == nil {
		return nil
	}
	return l.Constraints
}

// TypeParametersOf returns the type parameters declared by n, or nil if n
// does not own a type parameter list.
func TypeParametersOf(n Node) []*TypeParameter {
	switch n := n.(type) {
	case *Class:
		return n.TypeParameters()
	case *Function:
		return n.TypeParameters()
	case *Property:
		return n.TypeParameters()
	case *TypeAlias:
		return n.TypeParameters()
	default:
		return nil
	}
}

// ConstraintsFor returns the bounds that apply to the type parameter named
// name in owner: its declared bound followed by the where-clause bounds for
// the same name, in source order.
func ConstraintsFor(owner TypeParameterListOwner, name string) []*TypeRef {
	var out []*TypeRef
	for _, p := range owner.TypeParameters() {
		if p != nil && p.Ident == name && p.Bound != nil {
			out = append(out, p.Bound)
		}
	}
	for _, c := range owner.TypeConstraints() {
		if c != nil && c.Subject == name && c.Bound != nil {
			out = append(out, c.Bound)
		}
	}
	return out
}
