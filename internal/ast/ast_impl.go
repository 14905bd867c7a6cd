package ast

import (
	"github.com/funvibe/traitmix/internal/token"
)

// ImplMode distinguishes the three impl constructs.
type ImplMode int

const (
	// ImplPlain is an unmarked `impl Trait for Type` block. It passes through
	// the transformer untouched.
	ImplPlain ImplMode = iota
	// ImplDefault is `default impl RealTrait for Alias`: registers a default
	// and emits nothing.
	ImplDefault
	// ImplWith is `with impl Alias for Type`: consumes a registered default.
	ImplWith
)

// ImplBlock binds a set of members to a (trait, type) pair.
// For ImplDefault the Target holds the alias being defined and Trait holds
// the real trait to remember. For ImplWith the Trait holds the alias as
// written at the call site until the transformer rewrites it.
type ImplBlock struct {
	Token   token.Token // The 'impl', 'default' or 'with' token
	Mode    ImplMode
	Trait   *Identifier
	Target  *Identifier
	Members []Member
}

func (ib *ImplBlock) Accept(v Visitor)     { v.VisitImplBlock(ib) }
func (ib *ImplBlock) statementNode()       {}
func (ib *ImplBlock) TokenLiteral() string { return ib.Token.Lexeme }
func (ib *ImplBlock) GetToken() token.Token {
	if ib == nil {
		return token.Token{}
	}
	return ib.Token
}

// Member is a single definition declared directly inside an impl block:
// a function, an associated constant, or an associated type.
type Member interface {
	Node
	memberNode()
	GetToken() token.Token
	// MemberName is the identifier that scopes uniqueness within one block.
	MemberName() string
	// CloneMember returns a deep copy safe to store and splice elsewhere.
	CloneMember() Member
}

// Parameter is a single function parameter, with optional type annotation.
type Parameter struct {
	Token token.Token
	Name  *Identifier
	Type  Type
}

// FunctionMember represents a function definition inside an impl block.
// fun name(a: Int, b) RetType { body }
type FunctionMember struct {
	Token      token.Token // The 'fun' token
	Name       *Identifier
	Parameters []*Parameter
	ReturnType Type // Can be nil
	Body       *BlockStatement
}

func (fm *FunctionMember) Accept(v Visitor)     { v.VisitFunctionMember(fm) }
func (fm *FunctionMember) memberNode()          {}
func (fm *FunctionMember) TokenLiteral() string { return fm.Token.Lexeme }
func (fm *FunctionMember) GetToken() token.Token {
	if fm == nil {
		return token.Token{}
	}
	return fm.Token
}
func (fm *FunctionMember) MemberName() string {
	if fm.Name == nil {
		return ""
	}
	return fm.Name.Value
}

// ConstantMember represents an associated constant inside an impl block.
// name :- expr or name : Type :- expr
type ConstantMember struct {
	Token          token.Token // The identifier token
	Name           *Identifier
	TypeAnnotation Type // Optional
	Value          Expression
}

func (cm *ConstantMember) Accept(v Visitor)     { v.VisitConstantMember(cm) }
func (cm *ConstantMember) memberNode()          {}
func (cm *ConstantMember) TokenLiteral() string { return cm.Token.Lexeme }
func (cm *ConstantMember) GetToken() token.Token {
	if cm == nil {
		return token.Token{}
	}
	return cm.Token
}
func (cm *ConstantMember) MemberName() string {
	if cm.Name == nil {
		return ""
	}
	return cm.Name.Value
}

// TypeMember represents an associated type inside an impl block.
// type Item = Option<Int>
type TypeMember struct {
	Token token.Token // The 'type' token
	Name  *Identifier
	Value Type
}

func (tm *TypeMember) Accept(v Visitor)     { v.VisitTypeMember(tm) }
func (tm *TypeMember) memberNode()          {}
func (tm *TypeMember) TokenLiteral() string { return tm.Token.Lexeme }
func (tm *TypeMember) GetToken() token.Token {
	if tm == nil {
		return token.Token{}
	}
	return tm.Token
}
func (tm *TypeMember) MemberName() string {
	if tm.Name == nil {
		return ""
	}
	return tm.Name.Value
}
