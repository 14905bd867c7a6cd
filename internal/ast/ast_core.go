package ast

import (
	"github.com/funvibe/traitmix/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary
// token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Type is a Node that represents a type expression.
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// Identifier represents an identifier, e.g., a trait or value name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)     { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) Accept(v Visitor)     { v.VisitFloatLiteral(fl) }
func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token {
	if fl == nil {
		return token.Token{}
	}
	return fl.Token
}

// StringLiteral represents a string, e.g. "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)     { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Accept(v Visitor)     { v.VisitBooleanLiteral(b) }
func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// NilLiteral represents the nil literal.
type NilLiteral struct {
	Token token.Token
}

func (n *NilLiteral) Accept(v Visitor)     { v.VisitNilLiteral(n) }
func (n *NilLiteral) expressionNode()      {}
func (n *NilLiteral) TokenLiteral() string { return n.Token.Lexeme }
func (n *NilLiteral) GetToken() token.Token {
	if n == nil {
		return token.Token{}
	}
	return n.Token
}

// ListLiteral represents a list, e.g. [1, 2, 3]
type ListLiteral struct {
	Token    token.Token // The '[' token
	Elements []Expression
}

func (ll *ListLiteral) Accept(v Visitor)     { v.VisitListLiteral(ll) }
func (ll *ListLiteral) expressionNode()      {}
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Lexeme }
func (ll *ListLiteral) GetToken() token.Token {
	if ll == nil {
		return token.Token{}
	}
	return ll.Token
}

// PrefixExpression represents -x or !x.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)     { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// InfixExpression represents a binary expression, e.g. a + b.
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)     { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// CallExpression represents a call, e.g. Some(6000).
type CallExpression struct {
	Token     token.Token // The '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)     { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}

// ExpressionStatement wraps an expression in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)     { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// ConstantDeclaration represents a constant binding.
// kVal :- 123 or kVal : Int :- 123
type ConstantDeclaration struct {
	Token          token.Token // The identifier token
	Name           *Identifier
	TypeAnnotation Type // Optional
	Value          Expression
}

func (cd *ConstantDeclaration) Accept(v Visitor)     { v.VisitConstantDeclaration(cd) }
func (cd *ConstantDeclaration) statementNode()       {}
func (cd *ConstantDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ConstantDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

// BlockStatement is a braced sequence of statements, e.g. a function body.
type BlockStatement struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// NamedType represents a (possibly generic) named type, e.g. Option<Int>.
type NamedType struct {
	Token token.Token
	Name  *Identifier
	Args  []Type
}

func (nt *NamedType) Accept(v Visitor)     { v.VisitNamedType(nt) }
func (nt *NamedType) typeNode()            {}
func (nt *NamedType) TokenLiteral() string { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token {
	if nt == nil {
		return token.Token{}
	}
	return nt.Token
}
