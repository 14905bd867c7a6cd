package parser

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		nextExp := infix(leftExp)
		if nextExp == nil {
			return nil
		}
		leftExp = nextExp
	}

	return leftExp
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	return &ast.IntegerLiteral{Token: p.curToken, Value: p.curToken.Literal.(int64)}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	return &ast.FloatLiteral{Token: p.curToken, Value: p.curToken.Literal.(float64)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Lexeme,
	}
	precedence := precedences[p.curToken.Type]
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken() // consume '('
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}

func (p *Parser) parseListLiteral() ast.Expression {
	ll := &ast.ListLiteral{Token: p.curToken}

	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return ll
	}

	p.nextToken()
	elem := p.parseExpression(LOWEST)
	if elem == nil {
		return nil
	}
	ll.Elements = append(ll.Elements, elem)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume current element
		p.nextToken() // consume ','
		elem = p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		ll.Elements = append(ll.Elements, elem)
	}

	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return ll
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: function}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return call
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	call.Arguments = append(call.Arguments, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume current argument
		p.nextToken() // consume ','
		arg = p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return call
}
