package parser

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/lexer"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/token"
)

// ParseMemberSource re-individuates one serialized member definition, as
// stored by the persistent registry cache. The source must contain exactly
// one function, constant, or associated type member; anything else is the
// caller's unsupported-member case.
func ParseMemberSource(src string) (ast.Member, *diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(src)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		return nil, ctx.Errors[0]
	}

	p := New(ctx.TokenStream, ctx)
	p.skipNewlines()

	var member ast.Member
	switch p.curToken.Type {
	case token.FUN:
		member = p.parseFunctionMember()
	case token.TYPE:
		member = p.parseTypeMember()
	case token.IDENT_LOWER:
		member = p.parseConstantMember()
	default:
		return nil, diagnostics.NewError(
			diagnostics.ErrM003, p.curToken, diagnostics.MsgUnsupportedMember,
		)
	}

	if member == nil || len(ctx.Errors) > 0 {
		if len(ctx.Errors) > 0 {
			return nil, ctx.Errors[0]
		}
		return nil, diagnostics.NewError(
			diagnostics.ErrM003, p.curToken, diagnostics.MsgUnsupportedMember,
		)
	}

	// Nothing but trailing newlines may follow a single member.
	p.nextToken()
	p.skipNewlines()
	if !p.curTokenIs(token.EOF) {
		return nil, diagnostics.NewError(
			diagnostics.ErrM003, p.curToken, diagnostics.MsgUnsupportedMember,
		)
	}

	return member, nil
}
