package prettyprinter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/funvibe/traitmix/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3,
	"!=": 3,
	"<":  4,
	">":  4,
	"<=": 4,
	">=": 4,
	"+":  5,
	"-":  5,
	"*":  6,
	"/":  6,
	"%":  6,
}

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{indent: 0}
}

func (p *CodePrinter) String() string { return p.buf.String() }

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
}

func (p *CodePrinter) VisitProgram(n *ast.Program) {
	for i, stmt := range n.Statements {
		if i > 0 {
			p.write("\n")
		}
		stmt.Accept(p)
		p.write("\n")
	}
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		p.write("<???>")
		return
	}
	p.write(n.Value)
}

func (p *CodePrinter) VisitIntegerLiteral(n *ast.IntegerLiteral) {
	p.write(strconv.FormatInt(n.Value, 10))
}

func (p *CodePrinter) VisitFloatLiteral(n *ast.FloatLiteral) {
	s := strconv.FormatFloat(n.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	p.write(s)
}

func (p *CodePrinter) VisitStringLiteral(n *ast.StringLiteral) {
	p.write(strconv.Quote(n.Value))
}

func (p *CodePrinter) VisitBooleanLiteral(n *ast.BooleanLiteral) {
	if n.Value {
		p.write("true")
	} else {
		p.write("false")
	}
}

func (p *CodePrinter) VisitNilLiteral(n *ast.NilLiteral) {
	p.write("nil")
}

func (p *CodePrinter) VisitListLiteral(n *ast.ListLiteral) {
	p.write("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.write(", ")
		}
		el.Accept(p)
	}
	p.write("]")
}

func (p *CodePrinter) VisitPrefixExpression(n *ast.PrefixExpression) {
	p.write(n.Operator)
	if _, ok := n.Right.(*ast.InfixExpression); ok {
		p.write("(")
		n.Right.Accept(p)
		p.write(")")
		return
	}
	n.Right.Accept(p)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	prec := getPrecedence(n.Operator)
	p.printOperand(n.Left, prec, false)
	p.write(" " + n.Operator + " ")
	p.printOperand(n.Right, prec, true)
}

// printOperand parenthesizes a nested infix operand when its operator binds
// looser than the parent (or equally, on the right side).
func (p *CodePrinter) printOperand(e ast.Expression, parentPrec int, isRight bool) {
	if inner, ok := e.(*ast.InfixExpression); ok {
		innerPrec := getPrecedence(inner.Operator)
		if innerPrec < parentPrec || (innerPrec == parentPrec && isRight) {
			p.write("(")
			e.Accept(p)
			p.write(")")
			return
		}
	}
	e.Accept(p)
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	if n.Function != nil {
		n.Function.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		arg.Accept(p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Expression != nil {
		n.Expression.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitConstantDeclaration(n *ast.ConstantDeclaration) {
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	if n.TypeAnnotation != nil {
		p.write(" : ")
		n.TypeAnnotation.Accept(p)
	}
	p.write(" :- ")
	if n.Value != nil {
		n.Value.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("{\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		if stmt != nil {
			stmt.Accept(p)
		} else {
			p.write("<???>")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitNamedType(n *ast.NamedType) {
	if n == nil || n.Name == nil {
		p.write("<???>")
		return
	}
	p.write(n.Name.Value)
	if len(n.Args) > 0 {
		p.write("<")
		for i, arg := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			arg.Accept(p)
		}
		p.write(">")
	}
}

func (p *CodePrinter) VisitImplBlock(n *ast.ImplBlock) {
	if n == nil {
		p.write("nil")
		return
	}
	switch n.Mode {
	case ast.ImplDefault:
		p.write("default ")
	case ast.ImplWith:
		p.write("with ")
	}
	p.write("impl ")
	if n.Trait != nil {
		p.write(n.Trait.Value)
	} else {
		p.write("<???>")
	}
	p.write(" for ")
	if n.Target != nil {
		p.write(n.Target.Value)
	} else {
		p.write("<???>")
	}
	p.write(" {\n")
	p.indent++
	for _, member := range n.Members {
		p.writeIndent()
		if member != nil {
			member.Accept(p)
		} else {
			p.write("<???>")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitFunctionMember(n *ast.FunctionMember) {
	p.write("fun ")
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	p.write("(")
	for i, param := range n.Parameters {
		if i > 0 {
			p.write(", ")
		}
		if param == nil || param.Name == nil {
			p.write("<???>")
			continue
		}
		p.write(param.Name.Value)
		if param.Type != nil {
			p.write(": ")
			param.Type.Accept(p)
		}
	}
	p.write(")")
	if n.ReturnType != nil {
		p.write(" ")
		n.ReturnType.Accept(p)
	}
	p.write(" ")
	n.Body.Accept(p)
}

func (p *CodePrinter) VisitConstantMember(n *ast.ConstantMember) {
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	if n.TypeAnnotation != nil {
		p.write(" : ")
		n.TypeAnnotation.Accept(p)
	}
	p.write(" :- ")
	if n.Value != nil {
		n.Value.Accept(p)
	} else {
		p.write("<???>")
	}
}

func (p *CodePrinter) VisitTypeMember(n *ast.TypeMember) {
	p.write("type ")
	if n.Name != nil {
		p.write(n.Name.Value)
	} else {
		p.write("<???>")
	}
	p.write(" = ")
	if n.Value != nil {
		n.Value.Accept(p)
	} else {
		p.write("<???>")
	}
}

// PrintMember serializes a single member definition to source text, as stored
// by the persistent registry cache.
func PrintMember(m ast.Member) string {
	p := NewCodePrinter()
	m.Accept(p)
	return p.String()
}
