package parser

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/token"
)

// parseImplBlock parses the three impl constructs:
//
//	impl Show for Point { ... }            (plain, passes through)
//	default impl Car for NewCar { ... }    (register: alias in type position)
//	with impl NewCar for UsedCar { ... }   (apply: alias in trait position)
//
// Trait and target must be simple uppercase identifiers. Qualified paths and
// generic arguments on the head are rejected with the fixed shape diagnostic.
func (p *Parser) parseImplBlock(mode ast.ImplMode) ast.Statement {
	stmt := &ast.ImplBlock{Token: p.curToken, Mode: mode}

	if mode != ast.ImplPlain {
		if !p.peekTokenIs(token.IMPL) {
			return p.shapeError()
		}
		p.nextToken()
	}

	// Trait position
	if !p.peekTokenIs(token.IDENT_UPPER) {
		return p.shapeError()
	}
	p.nextToken()
	stmt.Trait = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
	if p.peekTokenIs(token.DOT) || p.peekTokenIs(token.LT) {
		return p.shapeError()
	}

	if !p.peekTokenIs(token.FOR) {
		return p.shapeError()
	}
	p.nextToken()

	// Target position
	if !p.peekTokenIs(token.IDENT_UPPER) {
		return p.shapeError()
	}
	p.nextToken()
	stmt.Target = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
	if p.peekTokenIs(token.DOT) || p.peekTokenIs(token.LT) {
		return p.shapeError()
	}

	if !p.peekTokenIs(token.LBRACE) {
		return p.shapeError()
	}
	p.nextToken()

	// Parse members
	p.nextToken() // enter block

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		var member ast.Member
		switch p.curToken.Type {
		case token.FUN:
			member = p.parseFunctionMember()
		case token.TYPE:
			member = p.parseTypeMember()
		case token.IDENT_LOWER:
			member = p.parseConstantMember()
		default:
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP006, p.curToken,
				"expected a function, constant, or associated type member", p.curToken.Lexeme,
			))
			return nil
		}
		if member == nil {
			return nil
		}
		stmt.Members = append(stmt.Members, member)

		if p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		return p.shapeError()
	}

	return stmt
}

func (p *Parser) shapeError() ast.Statement {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrM001,
		p.curToken,
		diagnostics.MsgMalformedImpl,
	))
	return nil
}

// parseFunctionMember parses fun name(a: Int, b) RetType { body }.
// The return type is optional; parameters may omit annotations.
func (p *Parser) parseFunctionMember() ast.Member {
	fm := &ast.FunctionMember{Token: p.curToken}

	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	fm.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fm.Parameters = p.parseFunctionParameters()
	if fm.Parameters == nil {
		return nil
	}

	// Optional return type before the body brace
	if p.peekTokenIs(token.IDENT_UPPER) || p.peekTokenIs(token.IDENT_LOWER) {
		p.nextToken()
		fm.ReturnType = p.parseType()
		if fm.ReturnType == nil {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fm.Body = p.parseBlockStatement()
	if fm.Body == nil {
		return nil
	}

	return fm
}

// parseFunctionParameters parses (a: Int, b) with curToken at '('.
// Returns a non-nil (possibly empty) slice on success.
func (p *Parser) parseFunctionParameters() []*ast.Parameter {
	params := []*ast.Parameter{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	for {
		if !p.expectPeek(token.IDENT_LOWER) {
			return nil
		}
		param := &ast.Parameter{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
		}

		if p.peekTokenIs(token.COLON) {
			p.nextToken() // consume name
			p.nextToken() // consume ':'
			param.Type = p.parseType()
			if param.Type == nil {
				return nil
			}
		}
		params = append(params, param)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// parseConstantMember parses name :- expr or name : Type :- expr.
func (p *Parser) parseConstantMember() ast.Member {
	cm := &ast.ConstantMember{Token: p.curToken}
	cm.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume name
		p.nextToken() // consume ':'
		cm.TypeAnnotation = p.parseType()
		if cm.TypeAnnotation == nil {
			return nil
		}
	}

	if !p.expectPeek(token.COLON_MINUS) {
		return nil
	}
	p.nextToken() // move to value

	cm.Value = p.parseExpression(LOWEST)
	if cm.Value == nil {
		return nil
	}
	return cm
}

// parseTypeMember parses type Item = Option<Int>.
func (p *Parser) parseTypeMember() ast.Member {
	tm := &ast.TypeMember{Token: p.curToken}

	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	tm.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken() // move to type

	tm.Value = p.parseType()
	if tm.Value == nil {
		return nil
	}
	return tm
}

// parseBlockStatement parses a braced statement sequence with curToken at '{'.
// On return curToken is at the closing '}'.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken() // enter block

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken,
			"expected '}' to close block", p.curToken.Lexeme,
		))
		return nil
	}
	return block
}
