package parser

import (
	"fmt"

	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/token"
)

// Operator precedence levels.
const (
	_ int = iota
	LOWEST
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x
	CALL        // f(x)
)

var precedences = map[token.TokenType]int{
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT_LOWER, p.parseIdentifier)
	p.registerPrefix(token.IDENT_UPPER, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.LBRACKET, p.parseListLiteral)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LT, token.GT, token.LTE, token.GTE,
		token.AND, token.OR,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		fmt.Sprintf("expected next token to be %s", t),
		p.peekToken.Lexeme,
	))
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.curToken,
		fmt.Sprintf("unexpected token %s in expression", t),
		p.curToken.Lexeme,
	))
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// ParseProgram parses the whole translation unit.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else if len(p.ctx.Errors) > 0 {
			// Parse error: skip to the next statement boundary to avoid a
			// cascade of follow-up errors.
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.DEFAULT:
		return p.parseImplBlock(ast.ImplDefault)
	case token.WITH:
		return p.parseImplBlock(ast.ImplWith)
	case token.IMPL:
		return p.parseImplBlock(ast.ImplPlain)
	case token.IDENT_LOWER:
		if p.peekTokenIs(token.COLON_MINUS) || p.peekTokenIs(token.COLON) {
			return p.parseConstantDeclaration()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseConstantDeclaration() ast.Statement {
	cd := &ast.ConstantDeclaration{Token: p.curToken}
	cd.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume name
		p.nextToken() // consume ':'
		cd.TypeAnnotation = p.parseType()
		if cd.TypeAnnotation == nil {
			return nil
		}
	}

	if !p.expectPeek(token.COLON_MINUS) {
		return nil
	}
	p.nextToken() // move to value

	cd.Value = p.parseExpression(LOWEST)
	if cd.Value == nil {
		return nil
	}
	return cd
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}

// skipToStatementBoundary advances past the remainder of a broken statement.
// Braces are tracked so a malformed impl block is skipped as a whole.
func (p *Parser) skipToStatementBoundary() {
	depth := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth <= 0 {
				return
			}
		case token.NEWLINE:
			if depth == 0 {
				return
			}
		}
		p.nextToken()
	}
}
