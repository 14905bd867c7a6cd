package parser

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/token"
)

// parseType parses a named type with optional generic arguments, e.g.
// Int, Option<Int>, Map<String, List<Int>>. curToken must be the type name.
func (p *Parser) parseType() ast.Type {
	if !p.curTokenIs(token.IDENT_UPPER) && !p.curTokenIs(token.IDENT_LOWER) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006, p.curToken,
			"expected type name", p.curToken.Lexeme,
		))
		return nil
	}

	nt := &ast.NamedType{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)},
	}

	if p.peekTokenIs(token.LT) {
		p.nextToken() // consume type name
		p.nextToken() // consume '<', move to first argument

		for {
			arg := p.parseType()
			if arg == nil {
				return nil
			}
			nt.Args = append(nt.Args, arg)

			if p.peekTokenIs(token.COMMA) {
				p.nextToken() // consume argument
				p.nextToken() // consume ','
				continue
			}
			break
		}

		if !p.expectPeek(token.GT) {
			return nil
		}
	}

	return nt
}
