package transform

import (
	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/registry"
)

// Processor is the expansion stage. It walks the parsed program and rewrites
// impl blocks against the session registry:
//
//   - default impl Trait for Alias { ... } registers the members under the
//     alias and vanishes from the output.
//   - with impl Alias for Target { ... } looks the alias up, swaps in the
//     real trait name, and fills in every registered member the block does
//     not already define.
//   - plain impl blocks and all other statements pass through untouched.
type Processor struct{}

func (tp *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok || program == nil {
		return ctx
	}
	if ctx.Session == nil {
		ctx.Session = registry.NewSession()
	}

	out := make([]ast.Statement, 0, len(program.Statements))
	for _, stmt := range program.Statements {
		impl, ok := stmt.(*ast.ImplBlock)
		if !ok {
			out = append(out, stmt)
			continue
		}

		switch impl.Mode {
		case ast.ImplDefault:
			tp.register(ctx, impl)
			// Registration blocks produce no output.
		case ast.ImplWith:
			if expanded := tp.apply(ctx, impl); expanded != nil {
				out = append(out, expanded)
			}
		default:
			out = append(out, impl)
		}
	}
	program.Statements = out

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

// register stores the block's members under the alias written in the type
// position. Re-registering an alias overwrites the previous record.
func (tp *Processor) register(ctx *pipeline.PipelineContext, impl *ast.ImplBlock) {
	ctx.Session.Store(impl.Target.Value, &registry.DefaultRecord{
		TraitName: impl.Trait.Value,
		Members:   impl.Members,
	})
}

// apply expands a with-impl block into a plain impl of the registered trait.
// Members the user wrote win over registered ones; defaults that survive are
// appended after the originals in registration order. Function, constant, and
// associated type names share one namespace when deciding what is overridden.
func (tp *Processor) apply(ctx *pipeline.PipelineContext, impl *ast.ImplBlock) ast.Statement {
	rec, ok := ctx.Session.Lookup(impl.Trait.Value)
	if !ok {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrM002, impl.GetToken(), diagnostics.MsgNoDefault,
		))
		return nil
	}

	defined := make(map[string]bool, len(impl.Members))
	for _, m := range impl.Members {
		defined[m.MemberName()] = true
	}

	for _, m := range rec.Members {
		if !defined[m.MemberName()] {
			impl.Members = append(impl.Members, m)
		}
	}

	impl.Mode = ast.ImplPlain
	impl.Trait = &ast.Identifier{Token: impl.Trait.Token, Value: rec.TraitName}
	return impl
}
