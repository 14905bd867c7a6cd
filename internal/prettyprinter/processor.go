package prettyprinter

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/pipeline"
)

// PrintProcessor is the emit stage: it serializes the transformed program
// back to source text. A unit that collected errors emits nothing.
type PrintProcessor struct{}

func (pp *PrintProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}

	printer := NewCodePrinter()
	program.Accept(printer)
	ctx.Output = printer.String()
	return ctx
}
