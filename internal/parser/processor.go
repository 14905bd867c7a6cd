package parser

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP006, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	ctx.AstRoot = parser.ParseProgram()

	if prog, ok := ctx.AstRoot.(*ast.Program); ok {
		prog.File = ctx.FilePath
	}

	// Ensure all errors have file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
