package dump

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/irmeta/ir"
)

// Options controls Readable output. The zero value prints the most compact
// form.
type Options struct {
	// PrintRegionsPerFile wraps each file in "// region" and "// endregion"
	// comments.
	PrintRegionsPerFile bool
	// VerboseErrorTypes prints the type of erroneous expressions and
	// declarations next to their description.
	VerboseErrorTypes bool
	// PrintTypeParametersInAssociatedObjects prints the type parameter list
	// of classes nested in other classes, including enum entry bodies.
	PrintTypeParametersInAssociatedObjects bool
	// ShowImplicitCasts prints compiler-inserted casts and coercions as
	// comments; otherwise only their argument is printed.
	ShowImplicitCasts bool
	// PrintSyntheticNames prints compiler-generated names such as "<this>"
	// or "<get-x>" verbatim; otherwise they are shortened to "this" and "get".
	PrintSyntheticNames bool
}

const indentUnit = "    "

// Readable renders e as source-like text.
func Readable(e ir.Element, opts Options) string {
	p := &printer{opts: opts}
	p.statement(e)
	out := p.out.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

type printer struct {
	out    strings.Builder
	opts   Options
	depth  int
	nested int // classes currently open
}

func (p *printer) write(format string, args ...any) {
	if len(args) == 0 {
		p.out.WriteString(format)
		return
	}
	fmt.Fprintf(&p.out, format, args...)
}

// newline ends the current line and indents the next.
func (p *printer) newline() {
	p.out.WriteByte('\n')
	p.out.WriteString(strings.Repeat(indentUnit, p.depth))
}

// block prints "{", the statements one per line, and "}".
func (p *printer) block(stmts []ir.Statement) {
	if len(stmts) == 0 {
		p.write("{ }")
		return
	}
	p.write("{")
	p.depth++
	for _, s := range stmts {
		if s == nil {
			continue
		}
		p.newline()
		p.statement(s)
	}
	p.depth--
	p.newline()
	p.write("}")
}

func (p *printer) name(s string) string {
	if p.opts.PrintSyntheticNames || !strings.HasPrefix(s, "<") {
		return s
	}
	switch {
	case s == "<this>":
		return "this"
	case strings.HasPrefix(s, "<get-"):
		return "get"
	case strings.HasPrefix(s, "<set-"):
		return "set"
	case s == "<init>" || strings.HasSuffix(s, ".<init>"):
		return strings.TrimSuffix(strings.TrimSuffix(s, "<init>"), ".") + "init"
	default:
		return strings.Trim(s, "<>")
	}
}

func (p *printer) statement(e ir.Element) {
	switch n := e.(type) {
	case nil:
		p.write("<nil>")
	case *ir.ModuleFragment:
		p.write("// MODULE: %s", n.Name)
		for _, f := range n.Files {
			if f == nil {
				continue
			}
			p.newline()
			p.statement(f)
		}
	case *ir.File:
		p.file(n)
	case *ir.Class:
		p.class(n)
	case *ir.SimpleFunction:
		p.function(n)
	case *ir.Constructor:
		if n.Primary {
			p.write("primary ")
		}
		p.write("constructor")
		p.typeParameters(n.TypeParameters)
		p.valueParameters(n.ValueParameters)
		p.body(n.Body)
	case *ir.Property:
		p.property(n)
	case *ir.Field:
		if n.Static {
			p.write("static ")
		}
		p.write("field %s: %s", p.name(n.Name), n.Type)
		if n.Initializer != nil {
			p.write(" ")
			p.statement(n.Initializer)
		}
	case *ir.LocalDelegatedProperty:
		p.write("%s %s: %s by ", valOrVar(n.Mutable), p.name(n.Name), n.Type)
		if n.Delegate != nil && n.Delegate.Initializer != nil {
			p.expression(n.Delegate.Initializer)
		} else {
			p.write("<nil>")
		}
		p.accessors(n.Getter, n.Setter)
	case *ir.EnumEntry:
		p.write(n.Name)
		if n.Initializer != nil {
			p.write(" ")
			p.statement(n.Initializer)
		}
		if n.Class != nil {
			p.write(" ")
			p.classBody(n.Class)
		}
	case *ir.AnonymousInitializer:
		if n.Static {
			p.write("static ")
		}
		p.write("init ")
		p.statement(n.Body)
	case *ir.Variable:
		p.write("%s %s: %s", valOrVar(n.Mutable), p.name(n.Name), n.Type)
		if n.Initializer != nil {
			p.write(" = ")
			p.expression(n.Initializer)
		}
	case *ir.TypeParameter:
		p.typeParameter(n)
	case *ir.ValueParameter:
		p.valueParameter(n)
	case *ir.TypeAlias:
		p.write("typealias %s", n.Name)
		p.typeParameters(n.TypeParameters)
		p.write(" = %s", n.Expanded)
	case *ir.ErrorDeclaration:
		p.write("/* ERROR DECLARATION */")
	case *ir.ExpressionBody:
		p.write("= ")
		p.expression(n.Expression)
	case *ir.BlockBody:
		p.block(n.Statements)
	case *ir.SyntheticBody:
		p.write("/* synthetic %s */", n.SyntheticKind)
	case *ir.Catch:
		p.catch(n)
	case *ir.CondBranch, *ir.ElseBranch:
		p.branch(n.(ir.Branch))
	case *ir.SpreadElement:
		p.write("*")
		p.expression(n.Expression)
	case ir.Expression:
		p.expression(n)
	default:
		panic(fmt.Sprintf("dump: unexpected node type %T", e))
	}
}

func valOrVar(mutable bool) string {
	if mutable {
		return "var"
	}
	return "val"
}

func (p *printer) file(f *ir.File) {
	if p.opts.PrintRegionsPerFile {
		p.write("// region file: %s", f.Path)
	} else {
		p.write("// FILE: %s", f.Path)
	}
	if f.Package != "" {
		p.newline()
		p.write("package %s", f.Package)
	}
	for _, d := range f.Declarations {
		if d == nil {
			continue
		}
		p.newline()
		p.newline()
		p.statement(d)
	}
	if p.opts.PrintRegionsPerFile {
		p.newline()
		p.write("// endregion")
	}
	p.newline()
}

func (p *printer) class(c *ir.Class) {
	p.write("%s %s", c.ClassKind, c.Name)
	if p.nested == 0 || p.opts.PrintTypeParametersInAssociatedObjects {
		p.typeParameters(c.TypeParameters)
	}
	if len(c.SuperTypes) > 0 {
		p.write(" : %s", joinTypes(c.SuperTypes))
	}
	p.write(" ")
	p.classBody(c)
}

func (p *printer) classBody(c *ir.Class) {
	p.nested++
	defer func() { p.nested-- }()
	if len(c.Declarations) == 0 {
		p.write("{ }")
		return
	}
	p.write("{")
	p.depth++
	for _, d := range c.Declarations {
		if d == nil {
			continue
		}
		p.newline()
		p.statement(d)
	}
	p.depth--
	p.newline()
	p.write("}")
}

func joinTypes(types []ir.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func (p *printer) function(f *ir.SimpleFunction) {
	if f.Suspend {
		p.write("suspend ")
	}
	p.write("fun ")
	p.typeParameters(f.TypeParameters)
	if len(f.TypeParameters) > 0 {
		p.write(" ")
	}
	if f.DispatchReceiver != nil {
		p.write("%s.", f.DispatchReceiver.Type)
	}
	p.write(p.name(f.Name))
	p.valueParameters(f.ValueParameters)
	p.write(": %s", f.ReturnType)
	p.body(f.Body)
}

func (p *printer) body(b ir.Body) {
	if b == nil {
		return
	}
	p.write(" ")
	p.statement(b)
}

func (p *printer) property(prop *ir.Property) {
	typ := ir.Type{}
	switch {
	case prop.BackingField != nil:
		typ = prop.BackingField.Type
	case prop.Getter != nil:
		typ = prop.Getter.ReturnType
	}
	p.write("%s %s: %s", valOrVar(prop.Mutable), p.name(prop.Name), typ)
	if prop.BackingField != nil && prop.BackingField.Initializer != nil {
		p.write(" ")
		p.statement(prop.BackingField.Initializer)
	}
	p.accessors(prop.Getter, prop.Setter)
}

func (p *printer) accessors(getter, setter *ir.SimpleFunction) {
	p.depth++
	for _, acc := range []*ir.SimpleFunction{getter, setter} {
		if acc == nil {
			continue
		}
		p.newline()
		p.write(p.name(acc.Name))
		p.valueParameters(acc.ValueParameters)
		p.body(acc.Body)
	}
	p.depth--
}

func (p *printer) typeParameters(params []*ir.TypeParameter) {
	if len(params) == 0 {
		return
	}
	p.write("<")
	for i, tp := range params {
		if i > 0 {
			p.write(", ")
		}
		p.typeParameter(tp)
	}
	p.write(">")
}

func (p *printer) typeParameter(tp *ir.TypeParameter) {
	if tp == nil {
		p.write("<nil>")
		return
	}
	if tp.Reified {
		p.write("reified ")
	}
	if tp.Variance != "" {
		p.write("%s ", tp.Variance)
	}
	p.write(tp.Name)
	if len(tp.SuperTypes) > 0 {
		p.write(" : %s", joinTypes(tp.SuperTypes))
	}
}

func (p *printer) valueParameters(params []*ir.ValueParameter) {
	p.write("(")
	for i, vp := range params {
		if i > 0 {
			p.write(", ")
		}
		p.valueParameter(vp)
	}
	p.write(")")
}

func (p *printer) valueParameter(vp *ir.ValueParameter) {
	if vp == nil {
		p.write("<nil>")
		return
	}
	if vp.Vararg {
		p.write("vararg ")
	}
	p.write("%s: %s", p.name(vp.Name), vp.Type)
	if vp.Default != nil {
		p.write(" ")
		p.statement(vp.Default)
	}
}

func (p *printer) expressions(args []ir.Expression) {
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		if a == nil {
			p.write("<default>")
			continue
		}
		p.expression(a)
	}
}

func (p *printer) call(symbol string, dispatch, extension ir.Expression, typeArgs []ir.Type, args []ir.Expression) {
	for _, recv := range []ir.Expression{dispatch, extension} {
		if recv != nil {
			p.expression(recv)
			p.write(".")
		}
	}
	p.write(p.name(symbol))
	if len(typeArgs) > 0 {
		p.write("<%s>", joinTypes(typeArgs))
	}
	p.write("(")
	p.expressions(args)
	p.write(")")
}

func (p *printer) reference(symbol string, dispatch, extension ir.Expression) {
	for _, recv := range []ir.Expression{dispatch, extension} {
		if recv != nil {
			p.expression(recv)
		}
	}
	p.write("::%s", p.name(symbol))
}

func (p *printer) expression(e ir.Expression) {
	switch n := e.(type) {
	case nil:
		p.write("<nil>")
	case *ir.Const:
		p.write(constLiteral(n))
	case *ir.Vararg:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.statement(el)
		}
		p.write("]")
	case *ir.Block:
		p.block(n.Statements)
	case *ir.Composite:
		p.write("/* composite */ ")
		p.block(n.Statements)
	case *ir.StringConcatenation:
		p.write("\"")
		for _, a := range n.Arguments {
			if c, ok := a.(*ir.Const); ok && c.ConstKind == ir.ConstString {
				s := fmt.Sprintf("%q", c.Value)
				p.write(s[1 : len(s)-1])
				continue
			}
			p.write("${")
			p.expression(a)
			p.write("}")
		}
		p.write("\"")
	case *ir.GetObjectValue:
		p.write(p.name(n.Symbol))
	case *ir.GetEnumValue:
		p.write(p.name(n.Symbol))
	case *ir.GetValue:
		p.write(p.name(n.Symbol))
	case *ir.SetValue:
		p.write("%s = ", p.name(n.Symbol))
		p.expression(n.Value)
	case *ir.GetField:
		p.field(n.Receiver, n.Symbol)
	case *ir.SetField:
		p.field(n.Receiver, n.Symbol)
		p.write(" = ")
		p.expression(n.Value)
	case *ir.Call:
		p.call(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver, n.TypeArguments, n.Arguments)
	case *ir.ConstructorCall:
		p.call(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver, n.TypeArguments, n.Arguments)
	case *ir.DelegatingConstructorCall:
		p.write("/* delegating */ ")
		p.call(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver, n.TypeArguments, n.Arguments)
	case *ir.EnumConstructorCall:
		p.write("/* enum */ ")
		p.call(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver, n.TypeArguments, n.Arguments)
	case *ir.GetClass:
		p.expression(n.Argument)
		p.write("::class")
	case *ir.FunctionReference:
		p.reference(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver)
	case *ir.PropertyReference:
		p.reference(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver)
	case *ir.LocalDelegatedPropertyReference:
		p.reference(n.Symbol, n.DispatchReceiver, n.ExtensionReceiver)
	case *ir.ClassReference:
		p.write("%s::class", n.ClassType)
	case *ir.InstanceInitializerCall:
		p.write("/* init %s */", n.Class)
	case *ir.TypeOperatorCall:
		p.typeOperator(n)
	case *ir.When:
		p.when(n)
	case *ir.WhileLoop:
		p.label(n.Label)
		p.write("while (")
		p.expression(n.Condition)
		p.write(") ")
		p.expression(n.Body)
	case *ir.DoWhileLoop:
		p.label(n.Label)
		p.write("do ")
		p.expression(n.Body)
		p.write(" while (")
		p.expression(n.Condition)
		p.write(")")
	case *ir.Try:
		p.write("try ")
		p.expression(n.Body)
		for _, c := range n.Catches {
			if c != nil {
				p.write(" ")
				p.catch(c)
			}
		}
		if n.Finally != nil {
			p.write(" finally ")
			p.expression(n.Finally)
		}
	case *ir.Break:
		p.jump("break", n.Label)
	case *ir.Continue:
		p.jump("continue", n.Label)
	case *ir.Return:
		p.jump("return", n.Target)
		if n.Value != nil {
			p.write(" ")
			p.expression(n.Value)
		}
	case *ir.Throw:
		p.write("throw ")
		p.expression(n.Value)
	case *ir.SuspendableExpression:
		p.write("suspendable(")
		p.expression(n.SuspensionPointID)
		p.write(") ")
		p.expression(n.Result)
	case *ir.SuspensionPoint:
		p.write("suspensionPoint(")
		if n.SuspensionPointIDParameter != nil {
			p.write(p.name(n.SuspensionPointIDParameter.Name))
		}
		p.write(") ")
		p.expression(n.Result)
		p.write(" resume ")
		p.expression(n.ResumeResult)
	case *ir.DynamicOperatorExpression:
		p.expression(n.Receiver)
		p.write(" %s ", n.Operator)
		p.expressions(n.Arguments)
	case *ir.DynamicMemberExpression:
		p.expression(n.Receiver)
		p.write(".%s", n.MemberName)
	case *ir.ErrorExpression:
		p.errorExpression(n.Description, n.Type)
	case *ir.ErrorCallExpression:
		if n.ExplicitReceiver != nil {
			p.expression(n.ExplicitReceiver)
			p.write(".")
		}
		p.errorExpression(n.Description, n.Type)
		p.write("(")
		p.expressions(n.Arguments)
		p.write(")")
	default:
		panic(fmt.Sprintf("dump: unexpected expression type %T", e))
	}
}

func (p *printer) field(receiver ir.Expression, symbol string) {
	if receiver != nil {
		p.expression(receiver)
		p.write(".")
	}
	p.write("#%s", symbol)
}

func (p *printer) label(label string) {
	if label != "" {
		p.write("%s@ ", label)
	}
}

func (p *printer) jump(keyword, label string) {
	p.write(keyword)
	if label != "" {
		p.write("@%s", p.name(label))
	}
}

func (p *printer) errorExpression(description string, typ ir.Type) {
	p.write("error(%q)", description)
	if p.opts.VerboseErrorTypes {
		p.write(" /* %s */", typ)
	}
}

func (p *printer) typeOperator(n *ir.TypeOperatorCall) {
	if n.Operator.Implicit() {
		if !p.opts.ShowImplicitCasts {
			p.expression(n.Argument)
			return
		}
		p.expression(n.Argument)
		p.write(" /*as %s */", n.TypeOperand)
		return
	}
	p.expression(n.Argument)
	switch n.Operator {
	case ir.OpSafeCast:
		p.write(" as? ")
	case ir.OpInstanceOf:
		p.write(" is ")
	case ir.OpNotInstanceOf:
		p.write(" !is ")
	default:
		p.write(" as ")
	}
	p.write(n.TypeOperand.String())
}

func (p *printer) when(w *ir.When) {
	if cond, otherwise, ok := ifForm(w); ok {
		p.write("if (")
		p.expression(cond.Condition)
		p.write(") ")
		p.expression(cond.Result)
		if otherwise != nil {
			p.write(" else ")
			p.expression(otherwise.Result)
		}
		return
	}
	p.write("when {")
	p.depth++
	for _, b := range w.Branches {
		if b == nil {
			continue
		}
		p.newline()
		p.branch(b)
	}
	p.depth--
	p.newline()
	p.write("}")
}

// ifForm reports whether w can print as an if-else.
func ifForm(w *ir.When) (*ir.CondBranch, *ir.ElseBranch, bool) {
	if w.Origin != "IF" || len(w.Branches) == 0 || len(w.Branches) > 2 {
		return nil, nil, false
	}
	cond, ok := w.Branches[0].(*ir.CondBranch)
	if !ok {
		return nil, nil, false
	}
	if len(w.Branches) == 1 {
		return cond, nil, true
	}
	otherwise, ok := w.Branches[1].(*ir.ElseBranch)
	return cond, otherwise, ok
}

func (p *printer) branch(b ir.Branch) {
	switch b := b.(type) {
	case *ir.CondBranch:
		p.expression(b.Condition)
		p.write(" -> ")
		p.expression(b.Result)
	case *ir.ElseBranch:
		p.write("else -> ")
		p.expression(b.Result)
	}
}

func (p *printer) catch(c *ir.Catch) {
	p.write("catch (")
	if c.Parameter != nil {
		p.write("%s: %s", p.name(c.Parameter.Name), c.Parameter.Type)
	}
	p.write(") ")
	p.expression(c.Result)
}
