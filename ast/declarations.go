package ast

import (
	"bytes"
	"strings"
)

// Module is the root of the tree: every file of one compilation.
type Module struct {
	Span
	Name  string
	Files []*File
}

func (m *Module) String() string {
	parts := make([]string, 0, len(m.Files))
	for _, f := range m.Files {
		if f != nil {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "\n")
}

// File is one source file.
type File struct {
	Span
	Path    string
	Package string
	Decls   []Decl
}

func (f *File) String() string {
	var out bytes.Buffer
	if f.Package != "" {
		out.WriteString("package " + f.Package + "\n\n")
	}
	for _, d := range f.Decls {
		if d != nil {
			out.WriteString(d.String())
			out.WriteString("\n")
		}
	}
	return out.String()
}

// Class declares a class, interface or object.
type Class struct {
	decl
	Span
	Ident       string
	Keyword     string // "class", "interface", "object"; empty means "class"
	TypeParams  *TypeParameterList
	Supers      []*TypeRef
	Constraints *TypeConstraintList
	Body        []Decl
}

func (c *Class) Name() string { return c.Ident }

func (c *Class) String() string {
	var out bytes.Buffer
	keyword := c.Keyword
	if keyword == "" {
		keyword = "class"
	}
	out.WriteString(keyword + " " + c.Ident)
	writeNode(&out, c.TypeParams)
	if len(c.Supers) > 0 {
		out.WriteString(" : ")
		out.WriteString(joinTypeRefs(c.Supers))
	}
	if c.Constraints != nil {
		out.WriteString(" " + c.Constraints.String())
	}
	out.WriteString(" {")
	for _, d := range c.Body {
		if d != nil {
			out.WriteString("\n    " + strings.ReplaceAll(d.String(), "\n", "\n    "))
		}
	}
	if len(c.Body) > 0 {
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// Function declares a named function.
type Function struct {
	decl
	Span
	Ident       string
	TypeParams  *TypeParameterList
	Receiver    *TypeRef
	Params      []*Parameter
	Result      *TypeRef
	Constraints *TypeConstraintList
	Body        Expr // a BlockExpr, an expression body, or nil
}

func (f *Function) Name() string { return f.Ident }

func (f *Function) String() string {
	var out bytes.Buffer
	out.WriteString("fun ")
	if f.TypeParams != nil {
		out.WriteString(f.TypeParams.String() + " ")
	}
	if f.Receiver != nil {
		out.WriteString(f.Receiver.String() + ".")
	}
	out.WriteString(f.Ident + "(")
	for i, p := range f.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		writeNode(&out, p)
	}
	out.WriteString(")")
	if f.Result != nil {
		out.WriteString(": " + f.Result.String())
	}
	if f.Constraints != nil {
		out.WriteString(" " + f.Constraints.String())
	}
	switch body := f.Body.(type) {
	case nil:
	case *BlockExpr:
		out.WriteString(" " + body.String())
	default:
		out.WriteString(" = " + body.String())
	}
	return out.String()
}

// Property declares a val or var.
type Property struct {
	decl
	Span
	Ident       string
	Mutable     bool
	TypeParams  *TypeParameterList
	Receiver    *TypeRef
	Type        *TypeRef
	Constraints *TypeConstraintList
	Initializer Expr
}

func (p *Property) Name() string { return p.Ident }

func (p *Property) String() string {
	var out bytes.Buffer
	if p.Mutable {
		out.WriteString("var ")
	} else {
		out.WriteString("val ")
	}
	if p.TypeParams != nil {
		out.WriteString(p.TypeParams.String() + " ")
	}
	if p.Receiver != nil {
		out.WriteString(p.Receiver.String() + ".")
	}
	out.WriteString(p.Ident)
	if p.Type != nil {
		out.WriteString(": " + p.Type.String())
	}
	if p.Constraints != nil {
		out.WriteString(" " + p.Constraints.String())
	}
	if p.Initializer != nil {
		out.WriteString(" = " + p.Initializer.String())
	}
	return out.String()
}

// TypeAlias declares "typealias Name<T> = Type".
type TypeAlias struct {
	decl
	Span
	Ident      string
	TypeParams *TypeParameterList
	Type       *TypeRef
}

func (a *TypeAlias) Name() string { return a.Ident }

func (a *TypeAlias) String() string {
	var out bytes.Buffer
	out.WriteString("typealias " + a.Ident)
	writeNode(&out, a.TypeParams)
	out.WriteString(" = ")
	writeNode(&out, a.Type)
	return out.String()
}

// Parameter is a value parameter of a function.
type Parameter struct {
	decl
	Span
	Ident   string
	Type    *TypeRef
	Default Expr
}

func (p *Parameter) Name() string { return p.Ident }

func (p *Parameter) String() string {
	var out bytes.Buffer
	out.WriteString(p.Ident)
	if p.Type != nil {
		out.WriteString(": " + p.Type.String())
	}
	if p.Default != nil {
		out.WriteString(" = " + p.Default.String())
	}
	return out.String()
}

// TypeParameterList is the "<...>" list of a declaration.
type TypeParameterList struct {
	Span
	Params []*TypeParameter
}

func (l *TypeParameterList) String() string {
	parts := make([]string, 0, len(l.Params))
	for _, p := range l.Params {
		if p != nil {
			parts = append(parts, p.String())
		}
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// TypeParameter is one entry of a TypeParameterList.
type TypeParameter struct {
	decl
	Span
	Ident    string
	Variance string // "", "in" or "out"
	Reified  bool
	Bound    *TypeRef
}

func (p *TypeParameter) Name() string { return p.Ident }

func (p *TypeParameter) String() string {
	var out bytes.Buffer
	if p.Reified {
		out.WriteString("reified ")
	}
	if p.Variance != "" {
		out.WriteString(p.Variance + " ")
	}
	out.WriteString(p.Ident)
	if p.Bound != nil {
		out.WriteString(" : " + p.Bound.String())
	}
	return out.String()
}

// TypeConstraintList is a "where" clause.
type TypeConstraintList struct {
	Span
	Constraints []*TypeConstraint
}

func (l *TypeConstraintList) String() string {
	parts := make([]string, 0, len(l.Constraints))
	for _, c := range l.Constraints {
		if c != nil {
			parts = append(parts, c.String())
		}
	}
	return "where " + strings.Join(parts, ", ")
}

// TypeConstraint is "Subject : Bound" inside a where clause.
type TypeConstraint struct {
	Span
	Subject string
	Bound   *TypeRef
}

func (c *TypeConstraint) String() string {
	if c.Bound == nil {
		return c.Subject
	}
	return c.Subject + " : " + c.Bound.String()
}

// TypeRef is a reference to a type, e.g. "List<T>?".
type TypeRef struct {
	Span
	Name     string
	Args     []*TypeRef
	Nullable bool
}

func (t *TypeRef) String() string {
	var out bytes.Buffer
	out.WriteString(t.Name)
	if len(t.Args) > 0 {
		out.WriteString("<" + joinTypeRefs(t.Args) + ">")
	}
	if t.Nullable {
		out.WriteString("?")
	}
	return out.String()
}

func joinTypeRefs(refs []*TypeRef) string {
	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		if r != nil {
			parts = append(parts, r.String())
		}
	}
	return strings.Join(parts, ", ")
}

// writeNode writes n.String() unless n is a nil pointer.
func writeNode[T interface {
	*E
	String() string
}, E any](out *bytes.Buffer, n T) {
	if n != nil {
		out.WriteString(n.String())
	}
}
