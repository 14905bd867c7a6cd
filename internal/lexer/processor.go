package lexer

import (
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			msg := "illegal token"
			if s, ok := tok.Literal.(string); ok && s != tok.Lexeme {
				msg = s
			}
			err := diagnostics.NewError(diagnostics.ErrL001, tok, msg, tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
