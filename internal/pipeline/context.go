package pipeline

import (
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/registry"
	"github.com/funvibe/traitmix/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext is the shared state threaded through the stages for one
// translation unit. The Session outlives the context: the driver creates one
// session per compilation run and hands it to every unit's context in order.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream *token.Stream
	AstRoot     interface{} // *ast.Program after the parser stage
	Output      string      // expanded source after the print stage
	Session     *registry.Session
	Errors      []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{SourceCode: sourceCode}
}
